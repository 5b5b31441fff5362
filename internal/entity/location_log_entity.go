package entity

import "time"

type LocationLog struct {
	Id        uint
	DiaryId   uint
	Address   string
	Lat       float64
	Lng       float64
	CreatedAt time.Time
}
