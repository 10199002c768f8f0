package redis

import (
	"time"

	"diagnosis-srv/internal/report/repository"
	"diagnosis-srv/pkg/log"
	pkgRedis "diagnosis-srv/pkg/redis"
)

const defaultListTTL = 30 * time.Second

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = defaultListTTL
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
