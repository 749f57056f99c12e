package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"visit-booking/internal/infra/db"
	"visit-booking/internal/infra/memstore"
	"visit-booking/internal/infra/repository"
	sqlc "visit-booking/internal/infra/sqlc/generated"
	"visit-booking/internal/infra/sqlite"
	"visit-booking/internal/pkg/config"
	"visit-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

const storeOpenTimeout = 30 * time.Second

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.ReservationStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
	defer cancel()

	store, err := OpenStore(ctx, cfg, logger, cfg.Store.AutoMigrate)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}

// OpenStore opens the store selected by STORE_DRIVER, applying migrations when
// migrate is set. The memory store never needs migrating.
func OpenStore(ctx context.Context, cfg config.Config, logger *slog.Logger, migrate bool) (shared.ReservationStore, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logger.Info("using in-memory reservation store")
		return memstore.NewReservationStore(logger), nil

	case config.StoreDriverPostgres:
		pool, cleanup, err := db.ConnectPostgres(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := db.MigratePostgres(ctx, pool); err != nil {
				cleanup()
				return nil, err
			}
		}
		logger.Info("using postgres reservation store", "host", cfg.DB.Host, "db", cfg.DB.DBName)
		return repository.NewReservationRepository(sqlc.New(), pool, logger).WithCloser(cleanup), nil

	case config.StoreDriverSQLite:
		conn, err := db.OpenSQLite(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := db.MigrateSQLite(ctx, conn); err != nil {
				_ = conn.Close()
				return nil, err
			}
		}
		logger.Info("using sqlite reservation store", "path", cfg.Store.SQLitePath)
		return sqlite.NewReservationStore(conn, logger), nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}
