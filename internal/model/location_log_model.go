package model

import "time"

type LocationLog struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	DiaryId   uint      `gorm:"not null;index"`
	Address   string    `gorm:"type:varchar(255)"`
	Lat       float64   `gorm:"type:double"`
	Lng       float64   `gorm:"type:double"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (LocationLog) TableName() string {
	return "LocationLog"
}
