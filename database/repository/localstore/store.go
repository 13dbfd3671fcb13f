// File: database/repository/localstore/store.go
package localStore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/proyectosweblym/barberbook/models"
)

// Fixed namespace keys, carried over from the original deployment. Each holds
// one JSON-serialized mapping (or record) for its concern.
const (
	blockedDaysKey = "alexBarberBlockedDays"
	settingsKey    = "alexBarberSettings"
)

// Store persists the local-only namespaces: blocked days and admin settings.
// Load never fails the caller; missing or corrupt data is treated as empty
// and self-heals on the next save. Save failures are logged, not retried.
type Store interface {
	LoadBlockedDays(ctx context.Context) map[string]models.BlockedDay
	SaveBlockedDays(ctx context.Context, days map[string]models.BlockedDay)
	LoadSettings(ctx context.Context) (models.AdminSettings, bool)
	SaveSettings(ctx context.Context, settings models.AdminSettings)
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore constructs the Redis-backed local store.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) LoadBlockedDays(ctx context.Context) map[string]models.BlockedDay {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	raw, err := s.client.Get(ctx, blockedDaysKey).Result()
	if err != nil {
		return make(map[string]models.BlockedDay)
	}
	return decodeBlockedDays([]byte(raw))
}

// decodeBlockedDays never fails: a corrupt blob is treated as no blocks.
func decodeBlockedDays(raw []byte) map[string]models.BlockedDay {
	days := make(map[string]models.BlockedDay)
	if err := json.Unmarshal(raw, &days); err != nil {
		zap.L().Warn("localstore: corrupt blocked-days blob, treating as empty", zap.Error(err))
		return make(map[string]models.BlockedDay)
	}
	return days
}

func (s *redisStore) SaveBlockedDays(ctx context.Context, days map[string]models.BlockedDay) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	raw, err := json.Marshal(days)
	if err != nil {
		zap.L().Error("localstore: failed to serialize blocked days", zap.Error(err))
		return
	}
	if err := s.client.Set(ctx, blockedDaysKey, raw, 0).Err(); err != nil {
		zap.L().Error("localstore: failed to persist blocked days", zap.Error(err))
	}
}

func (s *redisStore) LoadSettings(ctx context.Context) (models.AdminSettings, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	raw, err := s.client.Get(ctx, settingsKey).Result()
	if err != nil {
		return models.AdminSettings{}, false
	}
	return decodeSettings([]byte(raw))
}

// decodeSettings reports ok=false for a corrupt blob so the caller falls back
// to its configured defaults.
func decodeSettings(raw []byte) (models.AdminSettings, bool) {
	var settings models.AdminSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		zap.L().Warn("localstore: corrupt settings blob, using defaults", zap.Error(err))
		return models.AdminSettings{}, false
	}
	return settings, true
}

func (s *redisStore) SaveSettings(ctx context.Context, settings models.AdminSettings) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	raw, err := json.Marshal(settings)
	if err != nil {
		zap.L().Error("localstore: failed to serialize settings", zap.Error(err))
		return
	}
	if err := s.client.Set(ctx, settingsKey, raw, 0).Err(); err != nil {
		zap.L().Error("localstore: failed to persist settings", zap.Error(err))
	}
}
