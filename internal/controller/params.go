package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func paramUint(ctx *fiber.Ctx, name string) (uint, error) {
	raw := ctx.Params(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(value), nil
}
