// Package cache puts a redis read-through cache in front of an entity store.
// Records are never updated through the API, so a cached copy only expires by TTL.
// Existence checks and listings always go to the store; redis may hold records the
// current store has never seen (restart of a memory store, driver switch).
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/baharkarakas/expense-api/internal/models"
	"github.com/baharkarakas/expense-api/internal/repository"
)

// Client is the subset of *redis.Client the cache needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

func userKey(id string) string    { return fmt.Sprintf("expense-api:user:%s", id) }
func expenseKey(id string) string { return fmt.Sprintf("expense-api:expense:%s", id) }

type readThrough[T any] struct {
	client Client
	ttl    time.Duration
	log    *slog.Logger
}

// lookup returns the cached value, or ok=false on a miss or any redis failure.
func (c readThrough[T]) lookup(ctx context.Context, key string) (T, bool) {
	var v T
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache get", "key", key, "err", err)
		}
		return v, false
	}
	if err := json.Unmarshal(b, &v); err != nil {
		c.log.Warn("cache decode", "key", key, "err", err)
		return v, false
	}
	return v, true
}

func (c readThrough[T]) store(ctx context.Context, key string, v T) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.log.Warn("cache set", "key", key, "err", err)
	}
}

func (c readThrough[T]) get(ctx context.Context, key string, load func() (T, error)) (T, error) {
	if v, ok := c.lookup(ctx, key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.store(ctx, key, v)
	return v, nil
}

type users struct {
	repository.Users
	rt readThrough[models.User]
}

func (u *users) Get(ctx context.Context, id string) (models.User, error) {
	return u.rt.get(ctx, userKey(id), func() (models.User, error) { return u.Users.Get(ctx, id) })
}

type expenses struct {
	repository.Expenses
	rt readThrough[models.Expense]
}

func (e *expenses) Get(ctx context.Context, id string) (models.Expense, error) {
	return e.rt.get(ctx, expenseKey(id), func() (models.Expense, error) { return e.Expenses.Get(ctx, id) })
}

func (e *expenses) Create(ctx context.Context, in models.Expense) (models.Expense, error) {
	out, err := e.Expenses.Create(ctx, in)
	if err == nil {
		e.rt.store(ctx, expenseKey(out.ID), out)
	}
	return out, err
}

// Wrap returns repos with Get served from redis when possible.
func Wrap(repos repository.Repositories, client Client, ttl time.Duration, log *slog.Logger) repository.Repositories {
	if log == nil {
		log = slog.Default()
	}
	return repository.NewRepositories(
		&users{Users: repos.Users, rt: readThrough[models.User]{client, ttl, log}},
		&expenses{Expenses: repos.Expenses, rt: readThrough[models.Expense]{client, ttl, log}},
		repos.Close,
	)
}
