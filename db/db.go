package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"studentdump/config"
	"studentdump/db/dao"
	"studentdump/db/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// ErrEmptyDSN is returned when no datasource is configured.
var ErrEmptyDSN = errors.New("database DSN is empty")

// Client is a scoped handle over the generated query package. It does not
// connect until the first query runs.
type Client struct {
	db    *gorm.DB
	query *dao.Query
	// replica pools opened by dbresolver, closed with the primary
	replicas []*sql.DB

	closeOnce sync.Once
	closeErr  error
}

// Open builds a client for the configured datasource.
func Open(cfg config.DB) (*Client, error) {
	dsn := strings.TrimSpace(cfg.DSN())
	if dsn == "" {
		return nil, ErrEmptyDSN
	}

	primary, err := Dialector(cfg.Driver, dsn)
	if err != nil {
		return nil, err
	}

	gormdb, err := gorm.Open(primary, &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 newLogger(cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	sqlDB, err := gormdb.DB()
	if err != nil {
		return nil, err
	}
	pool := poolLimits(cfg)
	pool.apply(sqlDB)

	client := &Client{db: gormdb, query: dao.Use(gormdb)}
	if len(cfg.Replicas) == 0 {
		return client, nil
	}

	var replicas []gorm.Dialector
	for _, r := range cfg.Replicas {
		d, err := Dialector(cfg.Driver, r)
		if err != nil {
			return nil, closeWith(gormdb, err)
		}
		replicas = append(replicas, d)
	}
	resolver := dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	}).
		SetConnMaxLifetime(pool.maxLifetime).
		SetMaxIdleConns(pool.maxIdle).
		SetMaxOpenConns(pool.maxOpen)
	if err := gormdb.Use(resolver); err != nil {
		return nil, closeWith(gormdb, fmt.Errorf("register replicas: %w", err))
	}
	_ = resolver.Call(func(cp gorm.ConnPool) error {
		if r, ok := cp.(*sql.DB); ok && r != sqlDB {
			client.replicas = append(client.replicas, r)
		}
		return nil
	})

	return client, nil
}

type limits struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
}

// poolLimits are shared by the primary and every replica. sqlite allows a
// single writer, so its pools hold one connection.
func poolLimits(cfg config.DB) limits {
	if cfg.Driver == "sqlite" {
		return limits{maxOpen: 1, maxIdle: 1, maxLifetime: cfg.ConnMaxLifetime}
	}
	return limits{maxOpen: cfg.MaxOpenConns, maxIdle: 2, maxLifetime: cfg.ConnMaxLifetime}
}

func (l limits) apply(db *sql.DB) {
	db.SetConnMaxLifetime(l.maxLifetime)
	db.SetMaxIdleConns(l.maxIdle)
	db.SetMaxOpenConns(l.maxOpen)
}

// Dialector returns the gorm dialector for driver. The mysql dialector skips
// its version probe so that opening never touches the network.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "mysql":
		return mysql.New(mysql.Config{
			DSN:                       dsn,
			SkipInitializeWithVersion: true,
		}), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// FindAll returns every row of student_gy23 in the order the store yields
// them.
func (c *Client) FindAll(ctx context.Context) ([]*model.StudentGy23, error) {
	return c.query.StudentGy23.WithContext(ctx).Find()
}

// DB exposes the underlying gorm handle.
func (c *Client) DB() *gorm.DB {
	return c.db
}

// Close releases the primary and replica pools. Calls after the first
// return the first call's result.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		var errs []error
		if sqlDB, err := c.db.DB(); err != nil {
			errs = append(errs, err)
		} else {
			errs = append(errs, sqlDB.Close())
		}
		for _, r := range c.replicas {
			errs = append(errs, r.Close())
		}
		c.closeErr = errors.Join(errs...)
	})
	return c.closeErr
}

// closeWith releases a half-built handle and returns err.
func closeWith(gormdb *gorm.DB, err error) error {
	if sqlDB, derr := gormdb.DB(); derr == nil {
		_ = sqlDB.Close()
	}
	return err
}

func newLogger(level string) logger.Interface {
	return logger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func logLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
