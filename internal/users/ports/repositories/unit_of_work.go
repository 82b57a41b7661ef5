package repositories

import "context"

// UserUnitOfWork выполняет функцию с репозиторием, привязанным к одной
// транзакции: commit при nil, rollback на любом пути с ошибкой.
type UserUnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, users UserRepository) error) error
}
