package model

import "time"

type Photo struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	DiaryId     uint      `gorm:"not null;index"`
	Path        string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Photo) TableName() string {
	return "Photo"
}
