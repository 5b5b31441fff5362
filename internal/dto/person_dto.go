package dto

import "time"

type PersonDTO struct {
	Id        uint      `json:"id"`
	Name      string    `json:"name"`
	Relation  string    `json:"relation"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatePersonRequest struct {
	Name     string `json:"name" validate:"required"`
	Relation string `json:"relation"`
}

type CreatePersonResponse struct {
	PersonId uint `json:"person_id"`
}
