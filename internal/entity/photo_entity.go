package entity

import "time"

type Photo struct {
	Id          uint
	DiaryId     uint
	Path        string
	Description string
	CreatedAt   time.Time
}
