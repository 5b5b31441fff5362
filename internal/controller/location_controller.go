package controller

import (
	"github.com/gofiber/fiber/v2"

	"my-diary-be/internal/dto"
	"my-diary-be/internal/pkg/serverutils"
	"my-diary-be/internal/service"
)

type ILocationController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type locationController struct {
	locationService service.ILocationService
}

func NewLocationController(locationService service.ILocationService) ILocationController {
	return &locationController{
		locationService: locationService,
	}
}

func (c *locationController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/location/v1")
	h.Use(auth)
	h.Post(":diaryId", c.Create)
	h.Delete(":diaryId/:locationId", c.Delete)
}

func (c *locationController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	diaryId, err := paramUint(ctx, "diaryId")
	if err != nil {
		return err
	}

	var req dto.CreateLocationLogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.locationService.Create(ctx.Context(), userId, diaryId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.SuccessResponse("Success add location", res))
}

func (c *locationController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	diaryId, err := paramUint(ctx, "diaryId")
	if err != nil {
		return err
	}
	locationId, err := paramUint(ctx, "locationId")
	if err != nil {
		return err
	}

	if err := c.locationService.Delete(ctx.Context(), userId, diaryId, locationId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete location", struct{}{}))
}
