package api

import (
	"context"

	"usermgmt/internal/users/domain/services"
)

// RegistrationUseCase определяет операцию регистрации пользователя.
type RegistrationUseCase interface {
	Register(ctx context.Context, username, email, password string) (*services.UserView, error)
}
