// Package users содержит HTTP обработчики для работы с пользователями.
package users

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"usermgmt/internal/users/app/dto"
	"usermgmt/internal/users/domain/entities"
	"usermgmt/internal/users/domain/services"
	"usermgmt/internal/users/ports/api"
	"usermgmt/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "user handler: register"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Имена полей в ответах об ошибках.
const (
	fieldUsername = "username"
	fieldEmail    = "email"
	fieldPassword = "password"
	fieldUnknown  = "unknown"
)

// Вспомогательная функция для обработки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики для пользователей.
type Handler struct {
	registration api.RegistrationUseCase
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(registration api.RegistrationUseCase) *Handler {
	return &Handler{
		registration: registration,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "username, email and password are required")
	}

	view, err := h.registration.Register(requestCtx, req.Username, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))

		statusCode, field := statusFromError(err)
		body := fiber.Map{"error": err.Error()}
		if field != "" {
			body["field"] = field
		}
		if jsonErr := ctx.Status(statusCode).JSON(body); jsonErr != nil {
			return fmt.Errorf("error sending response: %w", jsonErr)
		}
		return nil
	}

	response := dto.UserResponse{
		ID:        view.ID,
		Username:  view.Username,
		Email:     view.Email,
		CreatedAt: view.CreatedAt,
	}

	if err := ctx.Status(http.StatusCreated).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// statusFromError отображает доменную ошибку в HTTP статус и имя поля.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, entities.ErrEmptyUsername),
		errors.Is(err, entities.ErrUsernameTooShort),
		errors.Is(err, entities.ErrUsernameTooLong):
		return http.StatusUnprocessableEntity, fieldUsername
	case errors.Is(err, entities.ErrInvalidEmail):
		return http.StatusUnprocessableEntity, fieldEmail
	case errors.Is(err, entities.ErrPasswordTooShort),
		errors.Is(err, entities.ErrPasswordTooLong):
		return http.StatusUnprocessableEntity, fieldPassword
	case errors.Is(err, services.ErrUsernameTaken):
		return http.StatusConflict, fieldUsername
	case errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict, fieldEmail
	case errors.Is(err, services.ErrDuplicateUser):
		return http.StatusConflict, fieldUnknown
	case errors.Is(err, services.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, ""
	default:
		return http.StatusInternalServerError, ""
	}
}
