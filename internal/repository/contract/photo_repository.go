package contract

import (
	"context"

	"my-diary-be/internal/entity"
	"my-diary-be/internal/repository/specification"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *entity.Photo) error
	UpdateDescription(ctx context.Context, id uint, description string) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Photo, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Photo, error)
}
