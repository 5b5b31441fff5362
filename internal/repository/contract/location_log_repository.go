package contract

import (
	"context"

	"my-diary-be/internal/entity"
	"my-diary-be/internal/repository/specification"
)

type LocationLogRepository interface {
	Create(ctx context.Context, locationLog *entity.LocationLog) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LocationLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LocationLog, error)
}
