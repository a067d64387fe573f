// Package tablecache keeps computed conjugation tables in redis.
package tablecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/arabdict/arabdict"
)

// ErrMiss is returned by a Store for absent keys.
var ErrMiss = errors.New("cache miss")

// Store is the key-value subset of redis the cache needs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisStore adapts a redis client to Store.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// ConnectRedis creates a redis client from a URL.
func ConnectRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Generator computes tables on a miss.
type Generator interface {
	Table(d arabdict.Dialect, root arabdict.VerbRoot, stem int, ctx *arabdict.Stem1Context) (*arabdict.ConjugationTable, error)
}

// Cache is a read-through table cache. A nil Store turns it into a plain
// pass-through to the generator. Store failures are logged and never fail
// a lookup.
type Cache struct {
	gen    Generator
	store  Store
	ttl    time.Duration
	prefix string
	log    *zap.Logger
}

// New returns a cache over gen.
func New(gen Generator, store Store, ttl time.Duration, prefix string, log *zap.Logger) *Cache {
	return &Cache{gen: gen, store: store, ttl: ttl, prefix: prefix, log: log}
}

// Key returns the store key of a table.
func (c *Cache) Key(d arabdict.Dialect, root arabdict.VerbRoot, stem int, sctx *arabdict.Stem1Context) string {
	k := fmt.Sprintf("%s%s:%s:%d", c.prefix, d, root, stem)
	if sctx != nil {
		k += ":" + sctx.String()
	}
	return k
}

// Table returns the cached table or computes and stores it.
func (c *Cache) Table(ctx context.Context, d arabdict.Dialect, root arabdict.VerbRoot, stem int, sctx *arabdict.Stem1Context) (*arabdict.ConjugationTable, error) {
	if c.store == nil {
		return c.gen.Table(d, root, stem, sctx)
	}
	key := c.Key(d, root, stem, sctx)
	b, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var t arabdict.ConjugationTable
		derr := json.Unmarshal(b, &t)
		if derr == nil {
			return &t, nil
		}
		c.log.Warn("dropping undecodable cache entry", zap.String("key", key), zap.Error(derr))
	case !errors.Is(err, ErrMiss):
		c.log.Warn("table cache get failed", zap.String("key", key), zap.Error(err))
	}

	t, err := c.gen.Table(d, root, stem, sctx)
	if err != nil {
		return nil, err
	}
	b, err = json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode table: %w", err)
	}
	if err := c.store.Set(ctx, key, b, c.ttl); err != nil {
		c.log.Warn("table cache set failed", zap.String("key", key), zap.Error(err))
	}
	return t, nil
}
