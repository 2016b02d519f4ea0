package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wallet-dashboard/internal/application/dto"
	"github.com/jhoicas/wallet-dashboard/internal/domain"
)

// respondError traduce errores de dominio a status HTTP + dto.ErrorResponse.
//
//   - *domain.NotFoundError → 404 con código <KIND>_NOT_FOUND (REPORT, CATEGORY, CHART).
//   - domain.ErrInvalidInput → 400.
//   - resto → 500.
func respondError(c *fiber.Ctx, err error) error {
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    strings.ToUpper(nf.Kind) + "_NOT_FOUND",
			Message: nf.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
