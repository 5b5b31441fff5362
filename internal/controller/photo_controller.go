package controller

import (
	"github.com/gofiber/fiber/v2"

	"my-diary-be/internal/pkg/serverutils"
	"my-diary-be/internal/service"
)

type IPhotoController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Upload(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type photoController struct {
	photoService service.IPhotoService
}

func NewPhotoController(photoService service.IPhotoService) IPhotoController {
	return &photoController{
		photoService: photoService,
	}
}

func (c *photoController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/photo/v1")
	h.Use(auth)
	h.Post(":diaryId", c.Upload)
	h.Delete(":diaryId/:photoId", c.Delete)
}

func (c *photoController) Upload(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	diaryId, err := paramUint(ctx, "diaryId")
	if err != nil {
		return err
	}

	file, err := ctx.FormFile("photo")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "photo file is required")
	}

	res, err := c.photoService.Upload(ctx.Context(), userId, diaryId, file)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.SuccessResponse("Success upload photo", res))
}

func (c *photoController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	diaryId, err := paramUint(ctx, "diaryId")
	if err != nil {
		return err
	}
	photoId, err := paramUint(ctx, "photoId")
	if err != nil {
		return err
	}

	if err := c.photoService.Delete(ctx.Context(), userId, diaryId, photoId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete photo", struct{}{}))
}
