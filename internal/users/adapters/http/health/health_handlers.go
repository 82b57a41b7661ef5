// Package health содержит HTTP обработчик проверки работоспособности.
package health

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"usermgmt/pkg/logger"
)

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler содержит обработчик проверки работоспособности.
type Handler struct {
	pinger Pinger
}

// NewHandler создает новый экземпляр обработчика.
func NewHandler(pinger Pinger) *Handler {
	return &Handler{pinger: pinger}
}

// Check обрабатывает запрос проверки работоспособности.
func (h *Handler) Check(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()

	if err := h.pinger.Ping(requestCtx); err != nil {
		logger.Log(requestCtx).Error(requestCtx, "health check failed", zap.Error(err))
		if jsonErr := ctx.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
		}); jsonErr != nil {
			return fmt.Errorf("error sending response: %w", jsonErr)
		}
		return nil
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"status": "healthy",
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
