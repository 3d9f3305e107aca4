package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	connectMaxAttempts   uint = 30
	connectRetryInterval      = 3 * time.Second
)

// dialFunc абстрагирует создание пула, чтобы логику ретраев можно было
// проверить без живого postgres.
type dialFunc func(ctx context.Context, dsn string) (*pgxpool.Pool, error)

// Connect дожидается готовности postgres и прогоняет миграции. БД нередко
// стартует позже приложения, поэтому подключение ретраится; исчерпав попытки,
// возвращаем последнюю ошибку подключения.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	pool, connErr := connectWithRetry(ctx, dsn, newPostgresConnection, connectMaxAttempts, connectRetryInterval, l)
	if connErr != nil {
		return nil, fmt.Errorf("init postgres connection: %s", connErr.Error())
	}

	if err := postgresMigrate(migrationsDir, dsn); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func connectWithRetry(
	ctx context.Context,
	dsn string,
	dial dialFunc,
	maxAttempts uint,
	retryInterval time.Duration,
	l *logrus.Logger,
) (*pgxpool.Pool, error) {
	var attempt uint
	for {
		pool, dialErr := dial(ctx, dsn)
		if dialErr == nil {
			return pool, nil
		}

		attempt++
		if attempt >= maxAttempts {
			return nil, fmt.Errorf("after %d attempts: %w", maxAttempts, dialErr)
		}

		l.WithError(dialErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempt, maxAttempts)).
			Warnf("postgres is not ready, retrying in %.f seconds", retryInterval.Seconds())

		select {
		case <-ctx.Done():
			return nil, ctx.Err() //nolint:wrapcheck
		case <-time.After(retryInterval):
		}
	}
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres config: %s", confErr.Error())
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %s", poolErr.Error())
	}

	// Пул создается лениво, работоспособность соединения проверяет только Ping.
	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %s", pingErr.Error())
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
