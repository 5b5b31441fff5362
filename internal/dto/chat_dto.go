package dto

type ChatTurnDTO struct {
	By   string `json:"by"`
	Text string `json:"text"`
}

// GetTranscriptResponse carries the full conversation. Candidates are only
// present right after first-contact seeding, as quick-reply suggestions.
type GetTranscriptResponse struct {
	Chats      []ChatTurnDTO `json:"chats"`
	Candidates []string      `json:"candidates,omitempty"`
}

type SendChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type SendChatResponse struct {
	Chats      []ChatTurnDTO `json:"chats"`
	EditIntent bool          `json:"edit_intent,omitempty"`
	EditedText *string       `json:"edited_text,omitempty"`
}
