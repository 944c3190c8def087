package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

const (
	currentTyphoonKey = "sitrep:typhoon:current"
	currentTyphoonTTL = 30 * time.Second
)

// TyphoonCache keeps the resolved active-or-paused typhoon in Redis so the
// gate's hot path skips the registry query. Lifecycle transitions
// invalidate it. A nil *TyphoonCache is a no-op.
type TyphoonCache struct {
	client *redis.Client
	log    *logger.Logger
}

func NewTyphoonCache(client *redis.Client, baseLog *logger.Logger) *TyphoonCache {
	return &TyphoonCache{
		client: client,
		log:    baseLog.With("component", "TyphoonCache"),
	}
}

// GetCurrent returns the cached typhoon, whether the cache had an answer,
// and any transport error. A cached empty value means "none open".
func (c *TyphoonCache) GetCurrent(ctx context.Context) (*types.Typhoon, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, currentTyphoonKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if raw == "" {
		return nil, true, nil
	}
	var t types.Typhoon
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, false, err
	}
	return &t, true, nil
}

func (c *TyphoonCache) SetCurrent(ctx context.Context, t *types.Typhoon) error {
	if c == nil || c.client == nil {
		return nil
	}
	payload := ""
	if t != nil {
		b, err := json.Marshal(t)
		if err != nil {
			return err
		}
		payload = string(b)
	}
	return c.client.Set(ctx, currentTyphoonKey, payload, currentTyphoonTTL).Err()
}

func (c *TyphoonCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, currentTyphoonKey).Err(); err != nil {
		c.log.Warn("failed to invalidate current typhoon key", "error", err)
	}
}
