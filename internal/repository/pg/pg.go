package pg

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const (
	migrationsTable = "schema_migrations"
	schemaName      = "public"
	migrationsPath  = "./migrations"

	maxAttempts = 3
)

type Repository struct {
	pool       *pgxpool.Pool
	db         *sql.DB
	classifier *PostgresErrorClassifier
	feed       *orderFeed
	lg         *zap.SugaredLogger
}

func New(ctx context.Context, databaseURI string, lg *zap.SugaredLogger) (*Repository, error) {
	pool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDBFromPool(pool)

	if err := runMigrations(db); err != nil {
		db.Close()
		pool.Close()
		return nil, err
	}

	// LISTEN держит свое соединение, чтобы живые ленты не занимали пул
	feed := newOrderFeed(lg)
	feed.start(databaseURI)

	return &Repository{
		pool:       pool,
		db:         db,
		classifier: NewPostgresErrorClassifier(),
		feed:       feed,
		lg:         lg,
	}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: migrationsTable,
		SchemaName:      schemaName,
	})
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) Shutdown() error {
	if r.feed != nil {
		r.feed.Close()
	}

	err := r.db.Close()
	if r.pool != nil {
		r.pool.Close()
	}
	return err
}

// executeWithRetry - повторяет чтение при временных ошибках соединения/транзакции.
// Записи через него не проходят: повтор смены статуса заказа недопустим.
func (r *Repository) executeWithRetry(ctx context.Context, fn func(ctx context.Context, db *sql.DB) error) error {
	var err error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = fn(ctx, r.db)
		if err == nil || r.classifier.Classify(err) != Retriable {
			return err
		}

		if attempt == maxAttempts-1 {
			break
		}

		delay := getAttemptDelay(attempt)
		r.lg.Warnf("storage attempt %d failed, retry in %s: %v", attempt+1, delay, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return err
}

func getAttemptDelay(attempt int) time.Duration {
	switch attempt {
	case 0:
		return 1 * time.Second
	case 1:
		return 3 * time.Second
	default:
		return 5 * time.Second
	}
}
