package dto

import "time"

type LocationLogDTO struct {
	Id        uint      `json:"id"`
	Address   string    `json:"address"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateLocationLogRequest struct {
	Address string  `json:"address" validate:"required"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type CreateLocationLogResponse struct {
	LocationId uint `json:"location_id"`
}
