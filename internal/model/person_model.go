package model

import "time"

type Person struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	DiaryId   uint      `gorm:"not null;index"`
	Name      string    `gorm:"type:varchar(100)"`
	Relation  string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Person) TableName() string {
	return "Person"
}
