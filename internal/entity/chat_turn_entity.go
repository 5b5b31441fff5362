package entity

import "time"

const (
	ChatTurnRoleUser = "user"
	ChatTurnRoleAi   = "ai"
)

// ChatTurn is one message of a diary's conversation. Turns are immutable
// once written; the transcript is the creation-time ordering of its turns.
type ChatTurn struct {
	Id        uint
	DiaryId   uint
	Content   string
	WrittenBy string
	CreatedAt time.Time
}
