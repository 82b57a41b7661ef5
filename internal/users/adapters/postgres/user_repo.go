package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"usermgmt/internal/users/domain/entities"
	"usermgmt/internal/users/ports/repositories"
	"usermgmt/pkg/logger"
)

// Querier покрывает pgxpool.Pool, pgx.Tx и pgxmock.
type Querier interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
}

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	q Querier
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(q Querier) repositories.UserRepository {
	return &UserRepository{q: q}
}

// FindByUsername находит пользователя по имени.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByUsername"))

	query := `
        SELECT id, username, email, password_hash, created_at
        FROM users
        WHERE username = $1
    `

	var user entities.User
	err := r.q.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("username", username))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by username", zap.Error(err))
		return nil, translateError("error querying user by username", err)
	}

	return &user, nil
}

// FindByEmail находит пользователя по email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `
        SELECT id, username, email, password_hash, created_at
        FROM users
        WHERE email = $1
    `

	var user entities.User
	err := r.q.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("email", email))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by email", zap.Error(err))
		return nil, translateError("error querying user by email", err)
	}

	return &user, nil
}

// Create создает нового пользователя. Идентификатор и отметка времени
// назначаются базой данных. Нарушение уникального ограничения переводится
// в доменную ошибку дубликата; оно авторитетно даже после чистой
// предварительной проверки, так как конкурентные вставки могут гонять.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (username, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING id, username, email, password_hash, created_at
    `

	var createdUser entities.User
	err := r.q.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
	).Scan(
		&createdUser.ID,
		&createdUser.Username,
		&createdUser.Email,
		&createdUser.PasswordHash,
		&createdUser.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			log.Debug(ctx, "duplicate user on insert", zap.String("constraint", pgErr.ConstraintName))
			return nil, fmt.Errorf("error creating user: %w", duplicateFromConstraint(pgErr.ConstraintName))
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, translateError("error creating user", err)
	}

	return &createdUser, nil
}
