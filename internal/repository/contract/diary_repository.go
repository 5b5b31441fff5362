package contract

import (
	"context"

	"my-diary-be/internal/entity"
	"my-diary-be/internal/repository/specification"
)

type DiaryRepository interface {
	Create(ctx context.Context, diary *entity.DiaryEntry) error
	Update(ctx context.Context, diary *entity.DiaryEntry) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DiaryEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DiaryEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
