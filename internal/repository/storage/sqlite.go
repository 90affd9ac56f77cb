package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(ctx context.Context, path string) (*Storage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS promo_codes (
		code       TEXT NOT NULL,
		surface    TEXT NOT NULL,
		session_id TEXT NOT NULL,
		address    TEXT NOT NULL DEFAULT '',
		issued_at  INTEGER NOT NULL
	)`

	_, err := that.Connection.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	index := `CREATE INDEX IF NOT EXISTS promo_codes_code ON promo_codes (code)`
	if _, err = that.Connection.ExecContext(ctx, index); err != nil {
		return fmt.Errorf("can't create index: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}

	return nil
}
