package unitofwork

import (
	"context"
	"fmt"

	"my-diary-be/internal/repository/contract"
	"my-diary-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) DiaryRepository() contract.DiaryRepository {
	return implementation.NewDiaryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PhotoRepository() contract.PhotoRepository {
	return implementation.NewPhotoRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PersonRepository() contract.PersonRepository {
	return implementation.NewPersonRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LocationLogRepository() contract.LocationLogRepository {
	return implementation.NewLocationLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatTurnRepository() contract.ChatTurnRepository {
	return implementation.NewChatTurnRepository(u.getDB())
}
