package unitofwork

import (
	"context"

	"my-diary-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DiaryRepository() contract.DiaryRepository
	PhotoRepository() contract.PhotoRepository
	PersonRepository() contract.PersonRepository
	LocationLogRepository() contract.LocationLogRepository
	ChatTurnRepository() contract.ChatTurnRepository
}
