package mapper

import (
	"my-diary-be/internal/entity"
	"my-diary-be/internal/model"
)

type LocationLogMapper struct{}

func NewLocationLogMapper() *LocationLogMapper {
	return &LocationLogMapper{}
}

func (m *LocationLogMapper) ToEntity(l *model.LocationLog) *entity.LocationLog {
	if l == nil {
		return nil
	}
	return &entity.LocationLog{
		Id:        l.Id,
		DiaryId:   l.DiaryId,
		Address:   l.Address,
		Lat:       l.Lat,
		Lng:       l.Lng,
		CreatedAt: l.CreatedAt,
	}
}

func (m *LocationLogMapper) ToModel(l *entity.LocationLog) *model.LocationLog {
	if l == nil {
		return nil
	}
	return &model.LocationLog{
		Id:        l.Id,
		DiaryId:   l.DiaryId,
		Address:   l.Address,
		Lat:       l.Lat,
		Lng:       l.Lng,
		CreatedAt: l.CreatedAt,
	}
}

func (m *LocationLogMapper) ToEntities(logs []*model.LocationLog) []*entity.LocationLog {
	entities := make([]*entity.LocationLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
