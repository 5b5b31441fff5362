package model

import "time"

type DiaryEntry struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	UserId    string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_user_date"`
	Date      time.Time `gorm:"type:date;uniqueIndex:idx_user_date"`
	Content   string    `gorm:"type:text"`
	Mood      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Photos    []Photo       `gorm:"foreignKey:DiaryId;constraint:OnDelete:CASCADE"`
	People    []Person      `gorm:"foreignKey:DiaryId;constraint:OnDelete:CASCADE"`
	Queries   []AIQueryLog  `gorm:"foreignKey:DiaryId;constraint:OnDelete:CASCADE"`
	Locations []LocationLog `gorm:"foreignKey:DiaryId;constraint:OnDelete:CASCADE"`
}

func (DiaryEntry) TableName() string {
	return "DiaryEntry"
}
