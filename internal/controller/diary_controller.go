package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"my-diary-be/internal/dto"
	"my-diary-be/internal/pkg/serverutils"
	"my-diary-be/internal/service"
)

type IDiaryController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Exists(ctx *fiber.Ctx) error
	Month(ctx *fiber.Ctx) error
	UpdateContent(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type diaryController struct {
	diaryService service.IDiaryService
}

func NewDiaryController(diaryService service.IDiaryService) IDiaryController {
	return &diaryController{
		diaryService: diaryService,
	}
}

func (c *diaryController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/diary/v1")
	h.Use(auth)
	h.Post("", c.Create)
	h.Get("exists", c.Exists)
	h.Get("month", c.Month)
	h.Get(":id", c.Show)
	h.Put(":id/content", c.UpdateContent)
	h.Delete(":id", c.Delete)
}

func (c *diaryController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.CreateDiaryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.diaryService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.SuccessResponse("Success create diary", res))
}

func (c *diaryController) Show(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	id, err := paramUint(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.diaryService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get diary", res))
}

func (c *diaryController) Exists(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	date, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}

	exists, err := c.diaryService.ExistsByDate(ctx.Context(), userId, date)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success check diary", dto.DiaryExistsResponse{
		Exists: exists,
	}))
}

func (c *diaryController) Month(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid year")
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid month")
	}

	res, err := c.diaryService.DaysInMonth(ctx.Context(), userId, year, time.Month(month))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get diary month", res))
}

func (c *diaryController) UpdateContent(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	id, err := paramUint(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateDiaryContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.diaryService.UpdateContent(ctx.Context(), userId, id, req.Text); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update diary", struct{}{}))
}

func (c *diaryController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	id, err := paramUint(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.diaryService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete diary", struct{}{}))
}
