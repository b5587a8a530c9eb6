package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"ordermanager/internal/adapters/out/postgres/orderrepo"

	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// maintenanceDB is the database connected to when the target one may not exist yet.
const maintenanceDB = "postgres"

// DBConfig describes how to reach PostgreSQL and size the connection pool.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN returns a keyword/value connection string for database dbName.
func (c DBConfig) DSN(dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, dbName, c.SSLMode)
}

// Open makes sure the database exists, connects GORM to it, applies the pool
// settings and migrates the schema.
func Open(ctx context.Context, cfg DBConfig, logger *slog.Logger) (*gorm.DB, error) {
	if err := CreateDatabaseIfNotExists(ctx, cfg, logger); err != nil {
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(cfg.DSN(cfg.Name)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database %q: %w", cfg.Name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err = db.WithContext(ctx).AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

// CreateDatabaseIfNotExists connects to the maintenance database with lib/pq
// and creates cfg.Name when it is missing.
func CreateDatabaseIfNotExists(ctx context.Context, cfg DBConfig, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DSN(maintenanceDB))
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", cfg.Name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %q: %w", cfg.Name, err)
	}
	if exists {
		return nil
	}

	if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(cfg.Name)); err != nil {
		return fmt.Errorf("create database %q: %w", cfg.Name, err)
	}

	logger.InfoContext(ctx, "Database created", "database", cfg.Name)
	return nil
}
