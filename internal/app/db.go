package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/qazleague/cup-service/internal/config"
	"github.com/qazleague/cup-service/internal/platform/logging"
)

const (
	dbMaxOpenConns    = 25
	dbMaxIdleConns    = 10
	dbConnMaxLifetime = 30 * time.Minute
	dbPingTimeout     = 5 * time.Second
)

func openDatabase(cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(dbURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", dbURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	logger.Info("postgres connected", "db_name", dbNameFromURL(dbURL))

	return db, nil
}
