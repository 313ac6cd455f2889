package app

import (
	"context"

	"github.com/Astemirdum/library-circulation/library/config"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/library/internal/repository"
	"github.com/Astemirdum/library-circulation/library/internal/service"
	"github.com/Astemirdum/library-circulation/library/migrations"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
)

// DefaultStaffRole is the role create-staff assigns when none is given.
const DefaultStaffRole = string(model.RoleLibrarian)

// Staff is the account created by CreateStaff.
type Staff struct {
	ID       int64
	Username string
	Role     string
}

// Migrate runs a goose command (up, down, status, redo, version) against the configured database.
func Migrate(ctx context.Context, cfg *config.Config, command string) error {
	pool, err := postgres.NewPool(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()
	return postgres.Migrate(pool, migrations.MigrationFiles, command)
}

// Sweep runs one membership-expiry and overdue pass.
func Sweep(ctx context.Context, cfg *config.Config) (expired int64, overdue int, err error) {
	svc, closeFn, err := newAdminService(ctx, cfg)
	if err != nil {
		return 0, 0, err
	}
	defer closeFn()
	return svc.Sweep(ctx)
}

func CreateStaff(ctx context.Context, cfg *config.Config, username, email, password, role string) (Staff, error) {
	svc, closeFn, err := newAdminService(ctx, cfg)
	if err != nil {
		return Staff{}, err
	}
	defer closeFn()
	m, err := svc.CreateStaff(ctx, username, email, password, model.Role(role))
	if err != nil {
		return Staff{}, err
	}
	return Staff{ID: m.ID, Username: m.Username, Role: string(m.Role)}, nil
}

func newAdminService(ctx context.Context, cfg *config.Config) (*service.Service, func(), error) {
	log := logger.NewLogger(cfg.Log, "libraryctl")
	pool, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return nil, nil, err
	}
	repo, err := repository.NewRepository(pool, log)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	svc := service.NewService(repo, log, service.WithPolicy(Policy(cfg.Circulation)))
	return svc, func() {
		pool.Close()
		_ = log.Sync()
	}, nil
}
