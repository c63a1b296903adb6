package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const CheckDatabaseExist = `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`

// PgxPool - подмножество pgxpool.Pool, используемое хранилищами
type PgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Close()
}

type Database struct {
	Pool   PgxPool
	Config *pgx.ConnConfig
	DSN    string
}

// Создание хранилища
func NewDatabase(dsn string) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return &Database{Pool: pool, Config: cfg.ConnConfig, DSN: dsn}, nil
}

// Инициализация хранилища: создание БД при необходимости и миграция схемы
func (d *Database) Initialize(ctx context.Context) error {
	if err := d.ensureDatabase(ctx); err != nil {
		return fmt.Errorf("error create database: %w", err)
	}
	if err := d.migrate(); err != nil {
		return fmt.Errorf("error migrate database: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	d.Pool.Close()
	return nil
}

// migrate накатывает встроенные миграции через стандартный драйвер,
// goose не работает с pgxpool напрямую
func (d *Database) migrate() error {
	db, err := sql.Open("pgx", d.DSN)
	if err != nil {
		return fmt.Errorf("open db error: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect error: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose run migrations error: %w", err)
	}
	return nil
}

// ensureDatabase создаёт БД из строки подключения, если её ещё нет.
// goose не умеет создавать БД
func (d *Database) ensureDatabase(ctx context.Context) error {
	conn, err := pgx.ConnectConfig(ctx, d.Config)
	if err == nil {
		return conn.Close(ctx)
	}

	// соединиться с целевой БД не вышло - пробуем дефолтную
	cfg := d.Config.Copy()
	cfg.Database = `postgres`
	conn, err = pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer conn.Close(ctx)

	var exist bool
	if err = conn.QueryRow(ctx, CheckDatabaseExist, d.Config.Database).Scan(&exist); err != nil {
		return fmt.Errorf("failed to check database exists: %w", err)
	}
	if !exist {
		_, err = conn.Exec(ctx, fmt.Sprintf(`CREATE DATABASE %s`, d.Config.Database))
		if err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
	}
	return nil
}
