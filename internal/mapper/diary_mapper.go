package mapper

import (
	"time"

	"my-diary-be/internal/entity"
	"my-diary-be/internal/model"
)

type DiaryMapper struct{}

func NewDiaryMapper() *DiaryMapper {
	return &DiaryMapper{}
}

func (m *DiaryMapper) ToEntity(d *model.DiaryEntry) *entity.DiaryEntry {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.DiaryEntry{
		Id:        d.Id,
		UserId:    d.UserId,
		Date:      d.Date,
		Content:   d.Content,
		Mood:      d.Mood,
		CreatedAt: d.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *DiaryMapper) ToModel(d *entity.DiaryEntry) *model.DiaryEntry {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.DiaryEntry{
		Id:        d.Id,
		UserId:    d.UserId,
		Date:      d.Date,
		Content:   d.Content,
		Mood:      d.Mood,
		CreatedAt: d.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *DiaryMapper) ToEntities(diaries []*model.DiaryEntry) []*entity.DiaryEntry {
	entities := make([]*entity.DiaryEntry, len(diaries))
	for i, d := range diaries {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
