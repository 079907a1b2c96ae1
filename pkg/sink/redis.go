package sink

import (
	"context"
	"fmt"

	"github.com/raywall/fixture-toolkit/pkg/config"
	"github.com/redis/go-redis/v9"
)

// RedisSink grava os acumuladores em um Redis: hashes via HSET e sets via
// SADD. Clear executa FLUSHDB no banco configurado.
type RedisSink struct {
	client *redis.Client
}

// NewRedisSink cria o adapter a partir da configuração de destino.
func NewRedisSink(cfg config.RedisConf) *RedisSink {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisSink{client: client}
}

func (s *RedisSink) Clear(ctx context.Context) error {
	if err := s.client.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("redis: flushdb failed: %w", err)
	}
	return nil
}

func (s *RedisSink) WriteFields(ctx context.Context, key string, fields []Field) error {
	pairs := make([]interface{}, 0, len(fields)*2)
	for _, f := range fields {
		pairs = append(pairs, f.Name, f.Value)
	}
	if err := s.client.HSet(ctx, key, pairs...).Err(); err != nil {
		return fmt.Errorf("redis: hset %q failed: %w", key, err)
	}
	return nil
}

func (s *RedisSink) WriteMembers(ctx context.Context, key string, members []string) error {
	values := make([]interface{}, 0, len(members))
	for _, m := range members {
		values = append(values, m)
	}
	if err := s.client.SAdd(ctx, key, values...).Err(); err != nil {
		return fmt.Errorf("redis: sadd %q failed: %w", key, err)
	}
	return nil
}

// Close libera a conexão com o Redis.
func (s *RedisSink) Close() error {
	return s.client.Close()
}
