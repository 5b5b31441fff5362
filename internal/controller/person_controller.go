package controller

import (
	"github.com/gofiber/fiber/v2"

	"my-diary-be/internal/dto"
	"my-diary-be/internal/pkg/serverutils"
	"my-diary-be/internal/service"
)

type IPersonController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type personController struct {
	personService service.IPersonService
}

func NewPersonController(personService service.IPersonService) IPersonController {
	return &personController{
		personService: personService,
	}
}

func (c *personController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/person/v1")
	h.Use(auth)
	h.Post(":diaryId", c.Create)
	h.Delete(":diaryId/:personId", c.Delete)
}

func (c *personController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	diaryId, err := paramUint(ctx, "diaryId")
	if err != nil {
		return err
	}

	var req dto.CreatePersonRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.personService.Create(ctx.Context(), userId, diaryId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.SuccessResponse("Success add person", res))
}

func (c *personController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	diaryId, err := paramUint(ctx, "diaryId")
	if err != nil {
		return err
	}
	personId, err := paramUint(ctx, "personId")
	if err != nil {
		return err
	}

	if err := c.personService.Delete(ctx.Context(), userId, diaryId, personId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete person", struct{}{}))
}
