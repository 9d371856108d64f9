package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"parcelbook/logger"

	_ "github.com/lib/pq"
)

const (
	maxOpenConns = 8 // one stays pinned by the migration driver
	pingAttempts = 5
)

// PostgresDB owns the connection pool. Ctx bounds startup (connect and migrate) only.
type PostgresDB struct {
	Conn   *sql.DB
	Ctx    context.Context
	Cancel context.CancelFunc
	URL    string
}

func NewPostgresDB(url string) *PostgresDB {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	return &PostgresDB{Ctx: ctx, Cancel: cancel, URL: url}
}

// Connect opens the pool and waits for the server to answer, retrying with a doubling delay
// while the database container is still starting.
func (p *PostgresDB) Connect() error {
	if p.URL == "" {
		return fmt.Errorf("POSTGRES_URL is not set")
	}
	conn, err := sql.Open("postgres", p.URL)
	if err != nil {
		return err
	}
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(30 * time.Minute)
	p.Conn = conn

	delay := 500 * time.Millisecond
	for attempt := 1; ; attempt++ {
		err = conn.PingContext(p.Ctx)
		if err == nil || attempt == pingAttempts {
			return err
		}
		logger.Warn(fmt.Sprintf("postgres not ready (attempt %d/%d): %v", attempt, pingAttempts, err))
		select {
		case <-time.After(delay):
			delay *= 2
		case <-p.Ctx.Done():
			return p.Ctx.Err()
		}
	}
}

func (p *PostgresDB) Disconnect() error {
	p.Cancel()
	if p.Conn == nil {
		return nil
	}
	return p.Conn.Close()
}

func (p *PostgresDB) GetContext() context.Context {
	return p.Ctx
}
