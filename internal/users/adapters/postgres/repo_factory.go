package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"usermgmt/internal/users/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo   repositories.UserRepository
	unitOfWork repositories.UserUnitOfWork
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:   NewUserRepository(pool),
		unitOfWork: NewTxManager(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// UserUnitOfWork возвращает менеджер транзакций для регистрации.
func (f *RepositoryFactory) UserUnitOfWork() repositories.UserUnitOfWork {
	return f.unitOfWork
}
