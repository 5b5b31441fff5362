package mapper

import (
	"my-diary-be/internal/entity"
	"my-diary-be/internal/model"
)

type PersonMapper struct{}

func NewPersonMapper() *PersonMapper {
	return &PersonMapper{}
}

func (m *PersonMapper) ToEntity(p *model.Person) *entity.Person {
	if p == nil {
		return nil
	}
	return &entity.Person{
		Id:        p.Id,
		DiaryId:   p.DiaryId,
		Name:      p.Name,
		Relation:  p.Relation,
		CreatedAt: p.CreatedAt,
	}
}

func (m *PersonMapper) ToModel(p *entity.Person) *model.Person {
	if p == nil {
		return nil
	}
	return &model.Person{
		Id:        p.Id,
		DiaryId:   p.DiaryId,
		Name:      p.Name,
		Relation:  p.Relation,
		CreatedAt: p.CreatedAt,
	}
}

func (m *PersonMapper) ToEntities(people []*model.Person) []*entity.Person {
	entities := make([]*entity.Person, len(people))
	for i, p := range people {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
