package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"presensicheck/internal/domain"
)

// Open opens a single-connection database handle for the given dialect and
// checks that the server answers.
func Open(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(d.Driver, dsn)
	if err != nil {
		return nil, dbErr("open database", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, dbErr("ping database", err)
	}
	log.Printf("✅ Database connected (%s).", d.Name)
	return db, nil
}

func dbErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDatabase, err)
}
