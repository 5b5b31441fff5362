package contract

import (
	"context"

	"my-diary-be/internal/entity"
	"my-diary-be/internal/repository/specification"
)

type PersonRepository interface {
	Create(ctx context.Context, person *entity.Person) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Person, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Person, error)
}
