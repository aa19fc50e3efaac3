package redis

import (
	"errors"
	"time"

	"github.com/bidhub/goapi/base/ctx"
)

const (
	// Forever means the key has no expiration
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")
	// ErrNoTTL is returned when the key exists but has no associated expire
	ErrNoTTL = errors.New("redis key has no ttl")
)

// Service is the trimmed redis surface the cache providers build on
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	TTL(context ctx.Ctx, key string) (int, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
}
