package entities

import (
	"errors"
	"time"
)

// Границы длины для полей пользователя.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

// Определяем ошибки домена пользователя как константы.
var (
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrUsernameTooShort = errors.New("username must contain at least 3 characters")
	ErrUsernameTooLong  = errors.New("username must not exceed 50 characters")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooShort = errors.New("password must contain at least 8 characters")
	ErrPasswordTooLong  = errors.New("password must not exceed 100 characters")
	ErrUserNotFound     = errors.New("user not found")
)

// User представляет основную сущность домена пользователя.
// ID и CreatedAt назначаются исключительно хранилищем.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
