// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"usermgmt/pkg/logger"
)

// HeaderXRequestID - заголовок с идентификатором запроса.
const HeaderXRequestID = "X-Request-ID"

// NewRequestIDMiddleware привязывает идентификатор запроса к контексту.
// Идентификатор берется из заголовка или генерируется заново.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderXRequestID))
		ctx.SetContext(requestCtx)

		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(HeaderXRequestID, id)
		}

		return ctx.Next()
	}
}
