package entity

import "time"

type Person struct {
	Id        uint
	DiaryId   uint
	Name      string
	Relation  string
	CreatedAt time.Time
}
