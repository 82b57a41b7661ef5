package repositories

import (
	"context"

	"usermgmt/internal/users/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователя.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
