package render

import (
	"context"
	"ctchen222/Streak-Tac-Toe/internal/events"
	"ctchen222/Streak-Tac-Toe/internal/game"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// Publisher is the part of the redis client the Redis renderer needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Redis publishes a board_changed event for every placement. Publish
// failures are logged and never reach the game.
type Redis struct {
	rdb     Publisher
	channel string
	timeout time.Duration
}

func NewRedis(rdb Publisher, channel string, timeout time.Duration) *Redis {
	if channel == "" {
		channel = events.BoardChannel
	}
	return &Redis{rdb: rdb, channel: channel, timeout: timeout}
}

func (r *Redis) Render(ctx context.Context, p game.Placement) {
	event, err := events.NewBoardChanged(p)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build board_changed event", "game.id", p.GameID, "error", err)
		return
	}
	message, err := json.Marshal(event)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal board_changed event", "game.id", p.GameID, "error", err)
		return
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	if err := r.rdb.Publish(ctx, r.channel, message).Err(); err != nil {
		slog.WarnContext(ctx, "failed to publish board_changed event", "game.id", p.GameID, "channel", r.channel, "error", err)
	}
}
