package prompt

import (
	"strconv"
	"strings"

	"my-diary-be/internal/entity"
	chatContext "my-diary-be/pkg/chat/context"
)

// Compiler renders a conversation context plus the new user message into a
// single generation prompt. Compilation is deterministic: identical inputs
// always produce byte-identical prompts, so generation can be tested against
// a stubbed provider.
type Compiler struct{}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile builds the instruction block. The response policy is appended
// verbatim to every prompt; the compiler does not enforce the rules itself,
// the generative step does.
func (c *Compiler) Compile(conv *chatContext.ConversationContext, userMessage string) string {
	var prompt strings.Builder

	c.writeDiaryContext(&prompt, conv)
	c.writeChatHistory(&prompt, conv.History)
	c.writeUserMessage(&prompt, userMessage)
	c.writePolicy(&prompt)

	return prompt.String()
}

// CompileSeedQuestion builds the prompt for the first clarifying question
// written when a conversation is seeded, before any user turn exists.
func (c *Compiler) CompileSeedQuestion(conv *chatContext.ConversationContext) string {
	var prompt strings.Builder

	c.writeDiaryContext(&prompt, conv)

	prompt.WriteString("<task>\n")
	prompt.WriteString("위 정보를 바탕으로, 사용자의 하루에 대해 묻는 첫 질문을 한국어 한 문장으로 작성하세요.\n")
	prompt.WriteString("사진 설명이 있다면 그 장면에 대해 물어보세요. 일기 텍스트를 쓰거나 고치지 마세요.\n")
	prompt.WriteString("</task>\n\n")
	c.writePolicy(&prompt)

	return prompt.String()
}

func (c *Compiler) writeDiaryContext(prompt *strings.Builder, conv *chatContext.ConversationContext) {
	prompt.WriteString("<diary_context>\n")
	prompt.WriteString("날짜: ")
	prompt.WriteString(conv.DiaryDate.Format("2006-01-02"))
	prompt.WriteString("\n")
	if len(conv.PhotoDescriptions) > 0 {
		prompt.WriteString("사진 설명: ")
		prompt.WriteString(strings.Join(conv.PhotoDescriptions, " | "))
		prompt.WriteString("\n")
	}
	prompt.WriteString("일기 내용: ")
	prompt.WriteString(conv.DiaryContent)
	prompt.WriteString("\n")
	prompt.WriteString("지금까지 사용자 메시지 수: ")
	prompt.WriteString(strconv.Itoa(conv.UserTurnCount))
	prompt.WriteString("\n")
	prompt.WriteString("</diary_context>\n\n")
}

func (c *Compiler) writeChatHistory(prompt *strings.Builder, history []*entity.ChatTurn) {
	prompt.WriteString("<chat_history>\n")
	for _, turn := range history {
		prompt.WriteString(turn.WrittenBy)
		prompt.WriteString(": ")
		prompt.WriteString(turn.Content)
		prompt.WriteString("\n")
	}
	prompt.WriteString("</chat_history>\n\n")
}

func (c *Compiler) writeUserMessage(prompt *strings.Builder, userMessage string) {
	prompt.WriteString("<user_message>\n")
	prompt.WriteString(userMessage)
	prompt.WriteString("\n</user_message>\n\n")
}

// ResponsePolicy is present verbatim in every compiled prompt.
const ResponsePolicy = `<response_policy>
1. While the user has sent fewer than 2 messages in this conversation (counting the current one), respond ONLY with a single clarifying question about the user's day. Do not write or edit any diary text yet.
2. If the user's message asks to change or rewrite the diary, set "edit_intent" to true and put the complete edited diary text in "edited_text".
3. If the user's message asks you to write the diary for them, set "edit_intent" to true and put a freshly written diary body in "edited_text".
4. Otherwise respond conversationally and set "edit_intent" to false.

Respond with ONLY this JSON format, no other text:
{"reply": "<답변, 한국어>", "edit_intent": true or false, "edited_text": "<전체 일기 텍스트, edit_intent가 false면 생략>"}
</response_policy>`

func (c *Compiler) writePolicy(prompt *strings.Builder) {
	prompt.WriteString(ResponsePolicy)
}
