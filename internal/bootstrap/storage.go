package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/prompt-pronto/prompt-pronto-backend/config"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/kv"
)

// OpenStorage builds the kv driver named by driver from b.
func OpenStorage(ctx context.Context, driver string, b config.Backend) (kv.Storage, error) {
	switch driver {
	case "memory":
		return kv.NewMemory(), nil
	case "file":
		return kv.NewFile(b.FileDir)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     b.RedisAddr,
			Password: b.RedisPassword,
			DB:       b.RedisDB,
		})
		store := kv.NewRedis(client)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return store, nil
	case "postgres":
		pool, err := OpenDB(ctx, DBOptions{DSN: b.DSN})
		if err != nil {
			return nil, err
		}
		store, err := kv.NewSQL(ctx, stdlib.OpenDBFromPool(pool), kv.Postgres)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &pgStorage{SQL: store, pool: pool}, nil
	case "sqlite":
		return kv.OpenSQLite(ctx, b.SQLitePath)
	case "s3":
		return kv.NewS3(ctx, kv.S3Config{
			Bucket:    b.S3Bucket,
			Region:    b.S3Region,
			Endpoint:  b.S3Endpoint,
			PathStyle: b.S3PathStyle,
		})
	}
	return nil, fmt.Errorf("unsupported storage driver %q", driver)
}

// pgStorage closes the pool behind the database/sql handle.
type pgStorage struct {
	*kv.SQL
	pool *pgxpool.Pool
}

func (s *pgStorage) Close() error {
	err := s.SQL.Close()
	s.pool.Close()
	return err
}
