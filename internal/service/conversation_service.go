package service

import (
	"context"
	"time"

	chatContext "my-diary-be/pkg/chat/context"
	"my-diary-be/pkg/chat/prompt"
	"my-diary-be/pkg/chat/reply"

	"my-diary-be/internal/constant"
	"my-diary-be/internal/dto"
	"my-diary-be/internal/entity"
	"my-diary-be/internal/pkg/apperror"
	"my-diary-be/internal/pkg/logger"
	"my-diary-be/internal/repository/memory"
	"my-diary-be/internal/repository/specification"
	"my-diary-be/internal/repository/unitofwork"
)

type IConversationService interface {
	// GetTranscript returns every turn of the diary's conversation, seeding
	// the two opening assistant turns on first contact.
	GetTranscript(ctx context.Context, userId string, diaryId uint) (*dto.GetTranscriptResponse, error)

	// SendMessage appends the user's turn, generates the assistant reply and
	// appends it, then returns the updated transcript.
	SendMessage(ctx context.Context, userId string, diaryId uint, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type conversationService struct {
	uowFactory     unitofwork.RepositoryFactory
	contextBuilder *chatContext.Builder
	promptCompiler *prompt.Compiler
	generator      *reply.Generator
	turnGuard      *memory.TurnGuard
	logger         logger.ILogger
}

func NewConversationService(
	uowFactory unitofwork.RepositoryFactory,
	contextBuilder *chatContext.Builder,
	promptCompiler *prompt.Compiler,
	generator *reply.Generator,
	turnGuard *memory.TurnGuard,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		uowFactory:     uowFactory,
		contextBuilder: contextBuilder,
		promptCompiler: promptCompiler,
		generator:      generator,
		turnGuard:      turnGuard,
		logger:         log,
	}
}

func (s *conversationService) GetTranscript(ctx context.Context, userId string, diaryId uint) (*dto.GetTranscriptResponse, error) {
	if err := s.verifyOwnership(ctx, userId, diaryId); err != nil {
		return nil, err
	}

	// Seeding under the same guard as SendMessage keeps concurrent first
	// contacts from planting the opening turns twice.
	if !s.turnGuard.Acquire(diaryId) {
		return nil, &apperror.ConversationBusyError{DiaryId: diaryId}
	}
	defer s.turnGuard.Release(diaryId)

	conv, err := s.contextBuilder.Build(ctx, diaryId)
	if err != nil {
		return nil, err
	}

	if len(conv.History) == 0 {
		return s.seed(ctx, conv)
	}

	res := dto.GetTranscriptResponse{
		Chats: toChatDTOs(conv.History),
	}
	if conv.UserTurnCount == 0 {
		res.Candidates = constant.SeedCandidates
	}
	return &res, nil
}

// seed plants the opening exchange: the fixed greeting plus a generated
// first question. Nothing is written until the question exists, so a
// generation failure leaves the conversation empty and retryable.
func (s *conversationService) seed(ctx context.Context, conv *chatContext.ConversationContext) (*dto.GetTranscriptResponse, error) {
	seedPrompt := s.promptCompiler.CompileSeedQuestion(conv)
	generated, err := s.generator.Generate(ctx, seedPrompt)
	if err != nil {
		return nil, err
	}

	// Both seed turns land atomically. A transcript with only the greeting
	// would never seed again, so a partial write must roll back.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.NewPersistence("begin seed", err)
	}
	defer uow.Rollback()

	greeting := entity.ChatTurn{
		DiaryId:   conv.DiaryId,
		Content:   constant.SeedGreeting,
		WrittenBy: entity.ChatTurnRoleAi,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatTurnRepository().Create(ctx, &greeting); err != nil {
		return nil, apperror.NewPersistence("create seed greeting", err)
	}

	question := entity.ChatTurn{
		DiaryId:   conv.DiaryId,
		Content:   generated.Reply,
		WrittenBy: entity.ChatTurnRoleAi,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatTurnRepository().Create(ctx, &question); err != nil {
		return nil, apperror.NewPersistence("create seed question", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.NewPersistence("commit seed", err)
	}

	s.logger.Info("ConversationService", "conversation seeded", map[string]interface{}{
		"diary_id": conv.DiaryId,
	})

	return &dto.GetTranscriptResponse{
		Chats:      toChatDTOs([]*entity.ChatTurn{&greeting, &question}),
		Candidates: constant.SeedCandidates,
	}, nil
}

func (s *conversationService) SendMessage(ctx context.Context, userId string, diaryId uint, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	if err := s.verifyOwnership(ctx, userId, diaryId); err != nil {
		return nil, err
	}

	if !s.turnGuard.Acquire(diaryId) {
		return nil, &apperror.ConversationBusyError{DiaryId: diaryId}
	}
	defer s.turnGuard.Release(diaryId)

	// Snapshot before the user turn is appended; the prompt must see the
	// history as it stood when the message arrived.
	conv, err := s.contextBuilder.Build(ctx, diaryId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	userTurn := entity.ChatTurn{
		DiaryId:   diaryId,
		Content:   req.Message,
		WrittenBy: entity.ChatTurnRoleUser,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatTurnRepository().Create(ctx, &userTurn); err != nil {
		return nil, apperror.NewPersistence("create user turn", err)
	}

	compiled := s.promptCompiler.Compile(conv, req.Message)
	generated, err := s.generator.Generate(ctx, compiled)
	if err != nil {
		// The user turn stays; the client can resend and the next prompt
		// will include it as history.
		s.logger.Warn("ConversationService", "reply generation failed", map[string]interface{}{
			"diary_id": diaryId,
			"error":    err.Error(),
		})
		return nil, err
	}

	// An edit proposal needs enough conversation to draw on. Before the
	// second user turn the assistant has nothing to rewrite, whatever the
	// model claims.
	if conv.UserTurnCount+1 < 2 {
		generated.EditIntent = false
		generated.EditedText = nil
	}

	aiTurn := entity.ChatTurn{
		DiaryId:   diaryId,
		Content:   generated.Reply,
		WrittenBy: entity.ChatTurnRoleAi,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatTurnRepository().Create(ctx, &aiTurn); err != nil {
		return nil, apperror.NewPersistence("create ai turn", err)
	}

	chats := toChatDTOs(conv.History)
	chats = append(chats,
		dto.ChatTurnDTO{By: userTurn.WrittenBy, Text: userTurn.Content},
		dto.ChatTurnDTO{By: aiTurn.WrittenBy, Text: aiTurn.Content},
	)

	return &dto.SendChatResponse{
		Chats:      chats,
		EditIntent: generated.EditIntent,
		EditedText: generated.EditedText,
	}, nil
}

func (s *conversationService) verifyOwnership(ctx context.Context, userId string, diaryId uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	diary, err := uow.DiaryRepository().FindOne(ctx,
		specification.ByID{ID: diaryId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return apperror.NewPersistence("find diary", err)
	}
	if diary == nil {
		return apperror.NewNotFound("diary", diaryId)
	}
	return nil
}

func toChatDTOs(turns []*entity.ChatTurn) []dto.ChatTurnDTO {
	chats := make([]dto.ChatTurnDTO, 0, len(turns))
	for _, turn := range turns {
		chats = append(chats, dto.ChatTurnDTO{By: turn.WrittenBy, Text: turn.Content})
	}
	return chats
}
