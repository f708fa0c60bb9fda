package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const (
	heartbeatKey = "portfolio-api:heartbeat"
	heartbeatTTL = 30 * time.Second
)

var timeNow = time.Now

// Heartbeat 寫入再讀回一個短效 key，確認 redis 可讀寫
func Heartbeat(ctx context.Context, c Cache) error {
	want := strconv.FormatInt(timeNow().UnixNano(), 10)
	if err := c.Set(ctx, heartbeatKey, want, heartbeatTTL).Err(); err != nil {
		return fmt.Errorf("Heartbeat: set: %w", err)
	}
	got, err := c.Get(ctx, heartbeatKey).Result()
	if err != nil {
		return fmt.Errorf("Heartbeat: get: %w", err)
	}
	if got != want {
		return fmt.Errorf("Heartbeat: read %q, wrote %q", got, want)
	}
	return nil
}
