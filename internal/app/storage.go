package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dailydiet-backend/internal/adapter/memory"
	"github.com/heartmarshall/dailydiet-backend/internal/adapter/postgres"
	mealrepo "github.com/heartmarshall/dailydiet-backend/internal/adapter/postgres/meal"
	userrepo "github.com/heartmarshall/dailydiet-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/dailydiet-backend/internal/config"
	"github.com/heartmarshall/dailydiet-backend/internal/domain"
)

type userStore interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type mealStore interface {
	Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error)
	GetByID(ctx context.Context, userID, mealID uuid.UUID) (*domain.Meal, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error)
	Update(ctx context.Context, m *domain.Meal) (*domain.Meal, error)
	Delete(ctx context.Context, userID, mealID uuid.UUID) error
	DeleteAll(ctx context.Context, userID uuid.UUID) (int, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// storage is the repository set for the configured driver.
type storage struct {
	driver string
	users  userStore
	meals  mealStore
	tx     txRunner
	ping   pinger
	close  func()
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*storage, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory storage; data is lost on restart")
		store := memory.NewStore()
		return &storage{
			driver: config.DriverMemory,
			users:  store.Users(),
			meals:  store.Meals(),
			tx:     memory.NewTxManager(),
			ping:   store,
			close:  func() {},
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}

		if cfg.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, err
			}
		}

		return &storage{
			driver: config.DriverPostgres,
			users:  userrepo.New(pool),
			meals:  mealrepo.New(pool),
			tx:     postgres.NewTxManager(pool),
			ping:   pool,
			close:  pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
