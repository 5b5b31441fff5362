package entity

import "time"

type DiaryEntry struct {
	Id        uint
	UserId    string
	Date      time.Time
	Content   string
	Mood      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
