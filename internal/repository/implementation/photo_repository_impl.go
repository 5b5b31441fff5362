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

type PhotoRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PhotoMapper
}

func NewPhotoRepository(db *gorm.DB) contract.PhotoRepository {
	return &PhotoRepositoryImpl{
		db:     db,
		mapper: mapper.NewPhotoMapper(),
	}
}

func (r *PhotoRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PhotoRepositoryImpl) Create(ctx context.Context, photo *entity.Photo) error {
	m := r.mapper.ToModel(photo)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*photo = *r.mapper.ToEntity(m)
	return nil
}

func (r *PhotoRepositoryImpl) UpdateDescription(ctx context.Context, id uint, description string) error {
	return r.db.WithContext(ctx).
		Model(&model.Photo{}).
		Where("id = ?", id).
		Update("description", description).Error
}

func (r *PhotoRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Photo{}, id).Error
}

func (r *PhotoRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Photo, error) {
	var m model.Photo
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PhotoRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Photo, error) {
	var models []*model.Photo
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
