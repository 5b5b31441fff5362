package dto

import "time"

type PhotoDTO struct {
	Id          uint      `json:"id"`
	Path        string    `json:"path"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type UploadPhotoResponse struct {
	PhotoId          uint   `json:"photo_id"`
	PhotoSrc         string `json:"photo_src"`
	PhotoDescription string `json:"photo_description"`
}

// CaptionPhotoMessage is the payload of a caption job on the pub/sub bus.
type CaptionPhotoMessage struct {
	PhotoId uint `json:"photo_id"`
}
