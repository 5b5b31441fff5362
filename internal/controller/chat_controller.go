package controller

import (
	"github.com/gofiber/fiber/v2"

	"my-diary-be/internal/dto"
	"my-diary-be/internal/pkg/serverutils"
	"my-diary-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	GetTranscript(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	conversationService service.IConversationService
}

func NewChatController(conversationService service.IConversationService) IChatController {
	return &chatController{
		conversationService: conversationService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/chat/v1")
	h.Use(auth)
	h.Get(":diaryId", c.GetTranscript)
	h.Post(":diaryId", c.SendMessage)
}

func (c *chatController) GetTranscript(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	diaryId, err := paramUint(ctx, "diaryId")
	if err != nil {
		return err
	}

	res, err := c.conversationService.GetTranscript(ctx.Context(), userId, diaryId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chats", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	diaryId, err := paramUint(ctx, "diaryId")
	if err != nil {
		return err
	}

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conversationService.SendMessage(ctx.Context(), userId, diaryId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}
