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

type PersonRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PersonMapper
}

func NewPersonRepository(db *gorm.DB) contract.PersonRepository {
	return &PersonRepositoryImpl{
		db:     db,
		mapper: mapper.NewPersonMapper(),
	}
}

func (r *PersonRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PersonRepositoryImpl) Create(ctx context.Context, person *entity.Person) error {
	m := r.mapper.ToModel(person)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*person = *r.mapper.ToEntity(m)
	return nil
}

func (r *PersonRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Person{}, id).Error
}

func (r *PersonRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Person, error) {
	var m model.Person
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PersonRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Person, error) {
	var models []*model.Person
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
