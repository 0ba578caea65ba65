// Package backend abre el almacén clave-valor configurado en STORE_BACKEND.
package backend

import (
	"context"
	"fmt"

	"github.com/jhoicas/campus-store/internal/domain/repository"
	"github.com/jhoicas/campus-store/internal/infrastructure/memory"
	"github.com/jhoicas/campus-store/internal/infrastructure/postgres"
	"github.com/jhoicas/campus-store/internal/infrastructure/redis"
	"github.com/jhoicas/campus-store/pkg/config"
	"github.com/jhoicas/campus-store/pkg/logger"
)

// CloseFunc libera las conexiones del backend.
type CloseFunc func()

// Open devuelve el almacén para cfg.Store.Backend. Con postgres aplica las migraciones antes de devolverlo.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.KeyValueStore, CloseFunc, error) {
	if log == nil {
		log = logger.Nop()
	}
	switch cfg.Store.Backend {
	case config.StoreMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return memory.NewKVStore(), func() {}, nil

	case config.StoreRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Str("prefix", cfg.Redis.Prefix).Msg("almacén redis")
		return redis.NewKVStore(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Str("db", cfg.DB.DBName).Msg("almacén postgres")
		return postgres.NewKVStore(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("backend: STORE_BACKEND desconocido %q", cfg.Store.Backend)
	}
}
