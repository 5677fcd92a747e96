package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	// timerDefaultTTL keeps timer state for dormant accounts around long
	// enough to survive extended breaks from the app (180 days).
	timerDefaultTTL = 180 * 24 * time.Hour

	timerKeyPrefix       = "craving_intervention:timer:"
	blockedAppsKeyPrefix = "craving_intervention:blocked_apps:"
	periodsKeyPrefix     = "craving_intervention:periods:"
	overcomeKeyPrefix    = "craving_intervention:overcome:"
)

// RedisStore implements Store using Redis.
type RedisStore struct {
	client *redis.Client
	cfg    RedisStoreConfig
}

type RedisStoreConfig struct{}

// NewRedisStore creates a new Redis-backed profile store.
func NewRedisStore(client *redis.Client, cfg RedisStoreConfig) *RedisStore {
	return &RedisStore{
		client: client,
		cfg:    cfg,
	}
}

func makeTimerKey(userID string) string {
	return fmt.Sprintf("%s%s", timerKeyPrefix, userID)
}

func makeBlockedAppsKey(userID string) string {
	return fmt.Sprintf("%s%s", blockedAppsKeyPrefix, userID)
}

func makePeriodsKey(userID string) string {
	return fmt.Sprintf("%s%s", periodsKeyPrefix, userID)
}

func makeOvercomeKey(userID string) string {
	return fmt.Sprintf("%s%s", overcomeKeyPrefix, userID)
}

// GetTimer retrieves the persisted timer state for an account.
// A user with no stored timer gets a fresh non-running state.
func (r *RedisStore) GetTimer(ctx context.Context, userID string) (*TimerState, error) {
	key := makeTimerKey(userID)

	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		logrus.Debugf("no existing timer for user %s, returning new state", userID)
		return &TimerState{
			IsRunning:   false,
			LastUpdated: time.Now(),
		}, nil
	}
	if err != nil {
		logrus.Errorf("failed to get timer for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to get timer: %w", err)
	}

	var state TimerState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		logrus.Errorf("failed to unmarshal timer for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to unmarshal timer: %w", err)
	}

	return &state, nil
}

// SetTimer persists the timer state for an account.
func (r *RedisStore) SetTimer(ctx context.Context, userID string, state *TimerState) error {
	key := makeTimerKey(userID)

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal timer: %w", err)
	}

	if err := r.client.Set(ctx, key, data, timerDefaultTTL).Err(); err != nil {
		logrus.Errorf("failed to set timer for user %s: %v", userID, err)
		return fmt.Errorf("failed to set timer: %w", err)
	}

	logrus.Debugf("persisted timer for user %s (running=%v)", userID, state.IsRunning)
	return nil
}

// GetBlockedApps retrieves the remote blocked-app list for an account.
func (r *RedisStore) GetBlockedApps(ctx context.Context, userID string) ([]string, error) {
	key := makeBlockedAppsKey(userID)

	appIDs, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		logrus.Errorf("failed to get blocked apps for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to get blocked apps: %w", err)
	}

	return appIDs, nil
}

// SetBlockedApps replaces the blocked-app list wholesale. The delete and
// re-add run in a single transaction so readers never observe a partial list.
func (r *RedisStore) SetBlockedApps(ctx context.Context, userID string, appIDs []string) error {
	key := makeBlockedAppsKey(userID)

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(appIDs) > 0 {
		members := make([]interface{}, len(appIDs))
		for i, id := range appIDs {
			members[i] = id
		}
		pipe.SAdd(ctx, key, members...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		logrus.Errorf("failed to set blocked apps for user %s: %v", userID, err)
		return fmt.Errorf("failed to set blocked apps: %w", err)
	}

	logrus.Infof("replaced blocked apps for user %s (%d entries)", userID, len(appIDs))
	return nil
}

// AppendPeriod appends a completed binge-free period. LPUSH keeps the list
// ordered newest-first, matching the descending-by-creation read order.
func (r *RedisStore) AppendPeriod(ctx context.Context, userID string, period *BingeFreePeriod) error {
	key := makePeriodsKey(userID)

	data, err := json.Marshal(period)
	if err != nil {
		return fmt.Errorf("failed to marshal period: %w", err)
	}

	if err := r.client.LPush(ctx, key, data).Err(); err != nil {
		logrus.Errorf("failed to append period for user %s: %v", userID, err)
		return fmt.Errorf("failed to append period: %w", err)
	}

	logrus.Infof("appended binge-free period for user %s (duration=%dms)", userID, period.DurationMillis)
	return nil
}

// ListPeriods returns up to limit periods, most recent first.
func (r *RedisStore) ListPeriods(ctx context.Context, userID string, limit int) ([]*BingeFreePeriod, error) {
	if limit <= 0 {
		return nil, nil
	}

	key := makePeriodsKey(userID)

	raw, err := r.client.LRange(ctx, key, 0, int64(limit)-1).Result()
	if err != nil {
		logrus.Errorf("failed to list periods for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}

	periods := make([]*BingeFreePeriod, 0, len(raw))
	for _, item := range raw {
		var period BingeFreePeriod
		if err := json.Unmarshal([]byte(item), &period); err != nil {
			logrus.Warnf("skipping malformed period for user %s: %v", userID, err)
			continue
		}
		periods = append(periods, &period)
	}

	return periods, nil
}

// IncrementOvercome bumps the overcome counter by exactly one using the
// Redis INCR primitive and returns the new count. INCR is atomic on the
// server, so concurrent increments from multiple devices never lose updates.
func (r *RedisStore) IncrementOvercome(ctx context.Context, userID string) (int64, error) {
	key := makeOvercomeKey(userID)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		logrus.Errorf("failed to increment overcome counter for user %s: %v", userID, err)
		return 0, fmt.Errorf("failed to increment overcome counter: %w", err)
	}

	logrus.Infof("overcome counter for user %s is now %d", userID, count)
	return count, nil
}

// GetOvercomeCount reads the current overcome counter.
func (r *RedisStore) GetOvercomeCount(ctx context.Context, userID string) (int64, error) {
	key := makeOvercomeKey(userID)

	count, err := r.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get overcome counter: %w", err)
	}

	return count, nil
}
