package postgres

import (
	"context"
	"io/fs"
	"net"
	"net/url"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type DB struct {
	Host     string `yaml:"host" envconfig:"DB_HOST" default:"localhost"`
	Port     int    `yaml:"port" envconfig:"DB_PORT" default:"5432"`
	Username string `yaml:"user" envconfig:"DB_USER" default:"postgres"`
	Password string `yaml:"password" envconfig:"DB_PASSWORD"`
	NameDB   string `yaml:"dbname" envconfig:"DB_NAME" default:"library"`
	SSLMode  string `yaml:"sslmode" envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns int32  `yaml:"maxConns" envconfig:"DB_MAX_CONNS" default:"10"`
}

func (db *DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.Username, db.Password),
		Host:     net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:     db.NameDB,
		RawQuery: "sslmode=" + db.SSLMode,
	}
	return u.String()
}

// NewPostgresDB opens a pool, checks connectivity and applies pending migrations from migrationFS.
func NewPostgresDB(ctx context.Context, cfg *DB, migrationFS fs.FS) (*pgxpool.Pool, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if migrationFS != nil {
		if err := Migrate(pool, migrationFS, "up"); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}

func NewPool(ctx context.Context, cfg *DB) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.ParseConfig")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.NewWithConfig")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping")
	}
	return pool, nil
}

// Migrate runs a goose command (up, down, status, ...) against the pool.
func Migrate(pool *pgxpool.Pool, migrationFS fs.FS, command string, args ...string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrationFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Run(command, db, ".", args...); err != nil {
		return errors.Wrapf(err, "goose %s", command)
	}
	return nil
}
