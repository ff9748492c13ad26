package routes

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rutvans_api/internal/adapter/persistence/repository"
	"rutvans_api/internal/config"
	"rutvans_api/internal/infrastructure/cache"
	"rutvans_api/internal/infrastructure/database"
	"rutvans_api/internal/usecase/interfaces"
)

func buildSaleRepository(ctx context.Context, cfg config.Config, logger *zap.Logger) (interfaces.ISaleRepository, func(), error) {
	noop := func() {}

	switch cfg.Store.Driver {
	case config.StoreMemory:
		logger.Info("[app] store: memory")
		return repository.NewSaleMemoryRepository(), noop, nil

	case config.StorePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, noop, fmt.Errorf("connect postgres: %w", err)
		}
		repo := repository.NewSalePostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("ensure postgres schema: %w", err)
		}
		logger.Info("[app] store: postgres")
		return repo, func() {
			if err := db.Close(); err != nil {
				logger.Warn("[app] postgres close error", zap.Error(err))
			}
		}, nil

	case config.StoreDynamoDB, "":
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, noop, fmt.Errorf("connect dynamodb: %w", err)
		}
		logger.Info("[app] store: dynamodb", zap.String("table", cfg.DynamoDB.SalesTable))
		return repository.NewSaleDynamoRepository(ddb, cfg.DynamoDB.SalesTable), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// buildReportCache falls back to the noop cache when Redis is not configured
// or not reachable.
func buildReportCache(ctx context.Context, cfg config.Config, logger *zap.Logger) (interfaces.IReportCache, func()) {
	noop := func() {}
	if cfg.Redis.Addr == "" || cfg.Redis.ReportTTL <= 0 {
		logger.Info("[app] cache: noop")
		return cache.NoopReportCache{}, noop
	}

	redisCache := cache.NewRedisReportCache(cfg.Redis)
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("[app] redis unavailable, using noop cache", zap.Error(err))
		_ = redisCache.Close()
		return cache.NoopReportCache{}, noop
	}
	logger.Info("[app] cache: redis", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.ReportTTL))
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			logger.Warn("[app] redis close error", zap.Error(err))
		}
	}
}
