package implementation

import (
	"context"
	"errors"

	"my-diary-be/internal/entity"
	"my-diary-be/internal/mapper"
	"my-diary-be/internal/model"
	"my-diary-be/internal/repository/contract"
	"my-diary-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DiaryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DiaryMapper
}

func NewDiaryRepository(db *gorm.DB) contract.DiaryRepository {
	return &DiaryRepositoryImpl{
		db:     db,
		mapper: mapper.NewDiaryMapper(),
	}
}

func (r *DiaryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DiaryRepositoryImpl) Create(ctx context.Context, diary *entity.DiaryEntry) error {
	m := r.mapper.ToModel(diary)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*diary = *r.mapper.ToEntity(m)
	return nil
}

func (r *DiaryRepositoryImpl) Update(ctx context.Context, diary *entity.DiaryEntry) error {
	m := r.mapper.ToModel(diary)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*diary = *r.mapper.ToEntity(m)
	return nil
}

func (r *DiaryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	// Children go with it via the FK cascade.
	return r.db.WithContext(ctx).Delete(&model.DiaryEntry{}, id).Error
}

func (r *DiaryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DiaryEntry, error) {
	var m model.DiaryEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DiaryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DiaryEntry, error) {
	var models []*model.DiaryEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DiaryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DiaryEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
