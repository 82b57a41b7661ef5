package services

import (
	"errors"
	"time"
)

// Ошибки регистрации пользователя. Дубликат - окончательный результат
// для данных входных значений, повторные попытки не выполняются.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// UserView представляет пользователя для внешних ответов.
// Хэш пароля структурно отсутствует и не может быть сериализован.
type UserView struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
