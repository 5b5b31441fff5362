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

type LocationLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LocationLogMapper
}

func NewLocationLogRepository(db *gorm.DB) contract.LocationLogRepository {
	return &LocationLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewLocationLogMapper(),
	}
}

func (r *LocationLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LocationLogRepositoryImpl) Create(ctx context.Context, locationLog *entity.LocationLog) error {
	m := r.mapper.ToModel(locationLog)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*locationLog = *r.mapper.ToEntity(m)
	return nil
}

func (r *LocationLogRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.LocationLog{}, id).Error
}

func (r *LocationLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LocationLog, error) {
	var m model.LocationLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LocationLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LocationLog, error) {
	var models []*model.LocationLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
