package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator обертка над goose для применения встроенных миграций
type Migrator struct {
	db  *sql.DB
	dir string
	log Logger
}

// New создает мигратор для миграций из migrationsFS (dir: каталог внутри FS, обычно ".")
func New(db *sql.DB, migrationsFS fs.FS, dir string, log Logger) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("migrator: set goose dialect: %w", err)
	}
	goose.SetBaseFS(migrationsFS)

	return &Migrator{db: db, dir: dir, log: log}, nil
}

// Up применяет все pending миграции
func (m *Migrator) Up(ctx context.Context) error {
	m.log.Info("Applying database migrations...")

	if err := goose.UpContext(ctx, m.db, m.dir); err != nil {
		return fmt.Errorf("migrator: apply migrations: %w", err)
	}

	version, err := m.Version(ctx)
	if err != nil {
		return err
	}
	m.log.Info("Migrations applied successfully, schema version=%d", version)
	return nil
}

// Version возвращает текущую версию схемы
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("migrator: get version: %w", err)
	}
	return version, nil
}
