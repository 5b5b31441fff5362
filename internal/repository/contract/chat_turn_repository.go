package contract

import (
	"context"

	"my-diary-be/internal/entity"
	"my-diary-be/internal/repository/specification"
)

// ChatTurnRepository persists conversation turns. Turns are append-only:
// there is no update or single-turn delete in the conversation flow.
type ChatTurnRepository interface {
	Create(ctx context.Context, turn *entity.ChatTurn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatTurn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
