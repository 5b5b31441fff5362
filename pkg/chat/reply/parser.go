package reply

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// GeneratedReply is the structured result of one generation call.
// Never persisted; EditedText is set only when EditIntent is true.
type GeneratedReply struct {
	Reply      string
	EditIntent bool
	EditedText *string
}

type replySchema struct {
	Reply      string  `json:"reply"`
	EditIntent bool    `json:"edit_intent"`
	EditedText *string `json:"edited_text"`
}

// Parse interprets the raw model output. Models like to wrap JSON in
// markdown fences, so those are stripped before unmarshalling. Any shape
// mismatch is an error; the caller wraps it as a generation failure.
func Parse(raw string) (*GeneratedReply, error) {
	responseBytes := []byte(raw)
	responseBytes = bytes.TrimSpace(responseBytes)
	responseBytes = bytes.TrimPrefix(responseBytes, []byte("```json"))
	responseBytes = bytes.TrimPrefix(responseBytes, []byte("```"))
	responseBytes = bytes.TrimSuffix(responseBytes, []byte("```"))
	responseBytes = bytes.TrimSpace(responseBytes)

	var schema replySchema
	if err := json.Unmarshal(responseBytes, &schema); err != nil {
		return nil, fmt.Errorf("parse error: %w | raw: %s", err, string(responseBytes))
	}

	if strings.TrimSpace(schema.Reply) == "" {
		return nil, fmt.Errorf("reply field missing or empty | raw: %s", string(responseBytes))
	}

	result := &GeneratedReply{
		Reply:      strings.TrimSpace(schema.Reply),
		EditIntent: schema.EditIntent,
	}

	if schema.EditIntent {
		if schema.EditedText == nil || strings.TrimSpace(*schema.EditedText) == "" {
			return nil, fmt.Errorf("edit_intent set but edited_text missing | raw: %s", string(responseBytes))
		}
		edited := strings.TrimSpace(*schema.EditedText)
		result.EditedText = &edited
	}

	return result, nil
}
