package mapper

import (
	"my-diary-be/internal/entity"
	"my-diary-be/internal/model"
)

type PhotoMapper struct{}

func NewPhotoMapper() *PhotoMapper {
	return &PhotoMapper{}
}

func (m *PhotoMapper) ToEntity(p *model.Photo) *entity.Photo {
	if p == nil {
		return nil
	}
	return &entity.Photo{
		Id:          p.Id,
		DiaryId:     p.DiaryId,
		Path:        p.Path,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *PhotoMapper) ToModel(p *entity.Photo) *model.Photo {
	if p == nil {
		return nil
	}
	return &model.Photo{
		Id:          p.Id,
		DiaryId:     p.DiaryId,
		Path:        p.Path,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *PhotoMapper) ToEntities(photos []*model.Photo) []*entity.Photo {
	entities := make([]*entity.Photo, len(photos))
	for i, p := range photos {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
