package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"usermgmt/internal/users/config"
	"usermgmt/pkg/db/postgres"
	"usermgmt/pkg/logger"
)

// Константы для сообщений логгера.
const (
	LogDBInitializing = "initializing user database"
	LogDBInitialized  = "user database initialized successfully"
	LogEnsuringSchema = "ensuring users schema exists"
)

// Константы для сообщений об ошибках.
const (
	ErrDBConnection = "failed to connect to user database"
	ErrEnsureSchema = "failed to ensure users schema"
)

// Имена уникальных ограничений заданы явно: по ним хранилище сообщает,
// какое поле занято при конкурентной вставке.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            BIGSERIAL PRIMARY KEY,
    username      VARCHAR(50)  NOT NULL,
    email         VARCHAR(255) NOT NULL,
    password_hash TEXT         NOT NULL,
    created_at    TIMESTAMPTZ  NOT NULL DEFAULT now(),
    CONSTRAINT users_username_key UNIQUE (username),
    CONSTRAINT users_email_key UNIQUE (email)
)`

// DB представляет соединение с базой данных сервиса пользователей.
type DB struct {
	database *postgres.Database
}

// New инициализирует соединение с базой данных и создает схему,
// если она отсутствует.
func New(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	database, err := postgres.New(ctx, cfg.GetDSN(), cfg.MinConn, cfg.MaxConn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogEnsuringSchema)
	if _, err := database.Pool().Exec(ctx, schema); err != nil {
		database.Close(ctx)
		return nil, fmt.Errorf("%s: %w", ErrEnsureSchema, err)
	}

	log.Info(ctx, LogDBInitialized)

	return &DB{
		database: database,
	}, nil
}

// Close закрывает соединение с базой данных.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}

// Pool возвращает пул соединений с базой данных.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

// Ping проверяет соединение с базой данных.
func (db *DB) Ping(ctx context.Context) error {
	return db.database.Ping(ctx)
}
