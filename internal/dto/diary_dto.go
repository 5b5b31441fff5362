package dto

import "time"

type CreateDiaryRequest struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

type CreateDiaryResponse struct {
	DiaryId uint `json:"diaryId"`
}

type ShowDiaryResponse struct {
	Id        uint              `json:"id"`
	Date      string            `json:"date"`
	Content   string            `json:"content"`
	Mood      string            `json:"mood"`
	Photos    []PhotoDTO        `json:"photos"`
	People    []PersonDTO       `json:"people"`
	Locations []LocationLogDTO  `json:"locations"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt *time.Time        `json:"updated_at,omitempty"`
}

type DiaryExistsResponse struct {
	Exists bool `json:"exists"`
}

type DiaryDayDTO struct {
	Day       int     `json:"day"`
	HasDiary  bool    `json:"has_diary"`
	Thumbnail *string `json:"thumbnail"`
	DiaryId   *uint   `json:"diary_id"`
}

type DiaryMonthResponse struct {
	DiaryDays []DiaryDayDTO `json:"diary_days"`
}

type UpdateDiaryContentRequest struct {
	Text string `json:"text" validate:"required"`
}
