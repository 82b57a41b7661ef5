package registrationusecase_test

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"usermgmt/internal/users/domain/entities"
	"usermgmt/internal/users/ports/repositories"
)

const (
	ErrCreateUser         = "failed to create user"
	ErrFindUserByUsername = "failed to find user by username"
	ErrFindUserByEmail    = "failed to find user by email"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCreateUser, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindUserByUsername, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindUserByEmail, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

// fakeUnitOfWork выполняет функцию с переданным репозиторием без транзакции,
// либо сразу отдает beginErr.
type fakeUnitOfWork struct {
	users    repositories.UserRepository
	beginErr error
}

func (f *fakeUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, users repositories.UserRepository) error) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	return fn(ctx, f.users)
}
