package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/Astemirdum/library-circulation/library/internal/model"
)

const dashboardPattern = "library:dashboard:*"

type Reports struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewReports(rdb *redis.Client, ttl time.Duration) *Reports {
	return &Reports{rdb: rdb, ttl: ttl}
}

func dashboardKey(days int) string { return fmt.Sprintf("library:dashboard:%d", days) }

func (r *Reports) GetDashboard(ctx context.Context, days int) (model.Dashboard, bool, error) {
	b, err := r.rdb.Get(ctx, dashboardKey(days)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Dashboard{}, false, nil
	}
	if err != nil {
		return model.Dashboard{}, false, errors.Wrap(err, "dashboard get")
	}
	var d model.Dashboard
	if err := json.Unmarshal(b, &d); err != nil {
		return model.Dashboard{}, false, errors.Wrap(err, "dashboard decode")
	}
	return d, true, nil
}

func (r *Reports) SetDashboard(ctx context.Context, days int, d model.Dashboard) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return errors.Wrap(r.rdb.Set(ctx, dashboardKey(days), b, r.ttl).Err(), "dashboard set")
}

// InvalidateDashboard drops every cached window.
func (r *Reports) InvalidateDashboard(ctx context.Context) error {
	var keys []string
	iter := r.rdb.Scan(ctx, 0, dashboardPattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "dashboard scan")
	}
	if len(keys) == 0 {
		return nil
	}
	return errors.Wrap(r.rdb.Del(ctx, keys...).Err(), "dashboard invalidate")
}
