package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"usermgmt/internal/users/domain/services"
)

// Коды SQLSTATE и имена ограничений таблицы users.
const (
	uniqueViolationCode      = "23505"
	connectionExceptionClass = "08"

	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

// duplicateFromConstraint переводит имя нарушенного уникального ограничения
// в доменную ошибку дубликата. Неизвестное ограничение дает общий дубликат
// без указания поля.
func duplicateFromConstraint(name string) error {
	switch name {
	case usernameConstraint:
		return services.ErrUsernameTaken
	case emailConstraint:
		return services.ErrEmailTaken
	default:
		return services.ErrDuplicateUser
	}
}

// translateError классифицирует ошибку запроса: ошибки соединения (сбой на
// сетевом уровне или SQLSTATE класса 08) переводятся в ErrStorageUnavailable,
// ответ сервера с другой ошибкой пробрасывается как есть.
func translateError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, connectionExceptionClass) {
			return fmt.Errorf("%s: %w: %w", op, services.ErrStorageUnavailable, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, services.ErrStorageUnavailable, err)
}
