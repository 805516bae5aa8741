package app

import (
	"context"
	"fmt"

	"sponsorly_backend/database"
	"sponsorly_backend/internal/config"
	"sponsorly_backend/internal/logger"
	"sponsorly_backend/internal/repositories"
	"sponsorly_backend/internal/repositories/memory"
	"sponsorly_backend/internal/repositories/mongo"
)

// OpenStore подключает хранилище, выбранное в database.driver
func OpenStore(ctx context.Context, cfg *config.Config) (*repositories.Store, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout())
		defer cancel()

		logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
		db, err := database.Connect(connectCtx, cfg.Database.DSN, cfg.Server.Debug)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := database.AutoMigrate(db); err != nil {
				return nil, err
			}
		}
		return repositories.NewPostgresStore(db), nil

	case config.DriverMongo:
		logger.Info("Connecting to MongoDB...", "database", cfg.Database.MongoDatabase)
		return mongo.Open(ctx, cfg.Database.MongoURI,
			mongo.WithDatabase(cfg.Database.MongoDatabase),
			mongo.WithTimeout(cfg.StoreTimeout()),
			mongo.WithLogger(logger.GetLogger()),
		)

	case config.DriverMemory:
		logger.Warn("Using in-memory store: data is lost on restart")
		return memory.NewStore(), nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}
