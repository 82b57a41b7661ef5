package services

import (
	"errors"
)

// PasswordErrors содержит ошибки, связанные с паролями.
var (
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidDigest   = errors.New("malformed password digest")
)

// MinPasswordLength - минимальная длина пароля.
const MinPasswordLength = 8

// MaxPasswordLength - максимальная длина пароля.
const MaxPasswordLength = 100
