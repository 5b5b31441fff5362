package model

import "time"

// AIQueryLog stores one conversation turn. The table keeps the name the
// mobile client's schema migrations already use.
type AIQueryLog struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	DiaryId   uint      `gorm:"not null;index"`
	Content   string    `gorm:"type:text"`
	WrittenBy string    `gorm:"type:enum('user','ai')"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (AIQueryLog) TableName() string {
	return "AIQueryLog"
}
