package mapper

import (
	"my-diary-be/internal/entity"
	"my-diary-be/internal/model"
)

type ChatTurnMapper struct{}

func NewChatTurnMapper() *ChatTurnMapper {
	return &ChatTurnMapper{}
}

func (m *ChatTurnMapper) ToEntity(t *model.AIQueryLog) *entity.ChatTurn {
	if t == nil {
		return nil
	}
	return &entity.ChatTurn{
		Id:        t.Id,
		DiaryId:   t.DiaryId,
		Content:   t.Content,
		WrittenBy: t.WrittenBy,
		CreatedAt: t.CreatedAt,
	}
}

func (m *ChatTurnMapper) ToModel(t *entity.ChatTurn) *model.AIQueryLog {
	if t == nil {
		return nil
	}
	return &model.AIQueryLog{
		Id:        t.Id,
		DiaryId:   t.DiaryId,
		Content:   t.Content,
		WrittenBy: t.WrittenBy,
		CreatedAt: t.CreatedAt,
	}
}

func (m *ChatTurnMapper) ToEntities(turns []*model.AIQueryLog) []*entity.ChatTurn {
	entities := make([]*entity.ChatTurn, len(turns))
	for i, t := range turns {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
