package service

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"roadwatch.dev/backend/internal/repo"
)

var (
	ErrStoreNotReachable = errors.New("report store not reachable")
	ErrRedisNotReachable = errors.New("redis not reachable")
	ErrNATSNotReachable  = errors.New("nats not reachable")
)

// Health checks the dependencies a running server needs. Redis and NATS are
// optional and only checked when configured.
type Health struct {
	Store repo.ReportStore
	Redis *redis.Client
	NATS  *nats.Conn
}

func NewHealth(store repo.ReportStore, redis *redis.Client, nats *nats.Conn) *Health {
	return &Health{
		Store: store,
		Redis: redis,
		NATS:  nats,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if err := s.Store.Ping(ctx); err != nil {
		return errors.Wrap(ErrStoreNotReachable, err.Error())
	}

	if s.Redis != nil {
		if err := s.Redis.Ping(ctx).Err(); err != nil {
			return errors.Wrap(ErrRedisNotReachable, err.Error())
		}
	}

	// nats pings on its own every 20 seconds (see infra/nats.go)
	if s.NATS != nil {
		status := s.NATS.Status()
		if status != nats.CONNECTED && status != nats.DRAINING_PUBS && status != nats.DRAINING_SUBS {
			return errors.Wrap(ErrNATSNotReachable, status.String())
		}
	}

	return nil
}
