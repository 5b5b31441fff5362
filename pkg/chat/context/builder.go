package context

import (
	"context"
	"strings"
	"time"

	"my-diary-be/internal/constant"
	"my-diary-be/internal/entity"
	"my-diary-be/internal/pkg/apperror"
	"my-diary-be/internal/repository/specification"
	"my-diary-be/internal/repository/unitofwork"
)

// ConversationContext is the snapshot a generation prompt is built from.
// It is rebuilt from persisted state on every turn, never cached.
type ConversationContext struct {
	DiaryId           uint
	DiaryDate         time.Time
	DiaryContent      string
	PhotoDescriptions []string
	History           []*entity.ChatTurn
	UserTurnCount     int
}

// Builder assembles diary metadata, photo captions and prior turns.
// Pure read composition; no side effects.
type Builder struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewBuilder(uowFactory unitofwork.RepositoryFactory) *Builder {
	return &Builder{uowFactory: uowFactory}
}

func (b *Builder) Build(ctx context.Context, diaryId uint) (*ConversationContext, error) {
	uow := b.uowFactory.NewUnitOfWork(ctx)

	diary, err := uow.DiaryRepository().FindOne(ctx, specification.ByID{ID: diaryId})
	if err != nil {
		return nil, apperror.NewPersistence("find diary", err)
	}
	if diary == nil {
		return nil, apperror.NewNotFound("diary", diaryId)
	}

	photos, err := uow.PhotoRepository().FindAll(ctx, specification.ByDiaryID{DiaryID: diaryId})
	if err != nil {
		return nil, apperror.NewPersistence("find photos", err)
	}

	descriptions := make([]string, 0, len(photos))
	for _, photo := range photos {
		desc := strings.TrimSpace(photo.Description)
		// The upload placeholder carries no scene information; skip it
		// the same way an empty caption is skipped.
		if desc == "" || desc == constant.PhotoDefaultDescription {
			continue
		}
		descriptions = append(descriptions, desc)
	}

	turns, err := uow.ChatTurnRepository().FindAll(ctx,
		specification.ByDiaryID{DiaryID: diaryId},
		specification.OrderByCreatedAsc{},
	)
	if err != nil {
		return nil, apperror.NewPersistence("find chat turns", err)
	}

	userTurnCount := 0
	for _, turn := range turns {
		if turn.WrittenBy == entity.ChatTurnRoleUser {
			userTurnCount++
		}
	}

	return &ConversationContext{
		DiaryId:           diary.Id,
		DiaryDate:         diary.Date,
		DiaryContent:      diary.Content,
		PhotoDescriptions: descriptions,
		History:           turns,
		UserTurnCount:     userTurnCount,
	}, nil
}
