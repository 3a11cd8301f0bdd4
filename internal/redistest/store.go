// Package redistest provides an in-memory redis.Cmdable for tests. It implements the
// string commands the limiter and the GitHub cache use, with a manually advanced clock.
// Calling any other command panics.
package redistest

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Store keeps keys in memory
type Store struct {
	redis.Cmdable

	mu    sync.Mutex
	clock time.Time
	data  map[string]entry
}

func New() *Store {
	return &Store{
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		data:  map[string]entry{},
	}
}

// Advance moves the store clock forward, expiring keys whose TTL has passed.
func (s *Store) Advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = s.clock.Add(d)
}

// Has reports whether key exists and has not expired.
func (s *Store) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.lookup(key)
	return ok
}

// TTLOf returns the remaining lifetime of key, or 0 when it has none.
func (s *Store) TTLOf(key string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.lookup(key)
	if !ok || e.expiresAt.IsZero() {
		return 0
	}
	return e.expiresAt.Sub(s.clock)
}

func (s *Store) lookup(key string) (entry, bool) {
	e, ok := s.data[key]
	if !ok {
		return entry{}, false
	}
	if !e.expiresAt.IsZero() && !s.clock.Before(e.expiresAt) {
		delete(s.data, key)
		return entry{}, false
	}
	return e, true
}

func (s *Store) Get(ctx context.Context, key string) *redis.StringCmd {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := redis.NewStringCmd(ctx, "get", key)
	e, ok := s.lookup(key)
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(e.value)
	return cmd
}

func (s *Store) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	s.mu.Lock()
	defer s.mu.Unlock()

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		str = fmt.Sprint(v)
	}

	e := entry{value: str}
	if expiration > 0 {
		e.expiresAt = s.clock.Add(expiration)
	}
	s.data[key] = e

	cmd := redis.NewStatusCmd(ctx, "set", key, str)
	cmd.SetVal("OK")
	return cmd
}

func (s *Store) Incr(ctx context.Context, key string) *redis.IntCmd {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := redis.NewIntCmd(ctx, "incr", key)
	e, _ := s.lookup(key)
	n := int64(0)
	if e.value != "" {
		parsed, err := strconv.ParseInt(e.value, 10, 64)
		if err != nil {
			cmd.SetErr(fmt.Errorf("ERR value is not an integer or out of range"))
			return cmd
		}
		n = parsed
	}
	n++
	e.value = strconv.FormatInt(n, 10)
	s.data[key] = e

	cmd.SetVal(n)
	return cmd
}

func (s *Store) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := redis.NewBoolCmd(ctx, "expire", key, int64(expiration/time.Second))
	e, ok := s.lookup(key)
	if !ok {
		cmd.SetVal(false)
		return cmd
	}
	e.expiresAt = s.clock.Add(expiration)
	s.data[key] = e
	cmd.SetVal(true)
	return cmd
}
