package render

import (
	"context"
	"ctchen222/Streak-Tac-Toe/internal/events"
	"ctchen222/Streak-Tac-Toe/internal/game"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type published struct {
	channel  string
	message  []byte
	deadline bool
}

type fakePublisher struct {
	sent []published
	err  error
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	_, hasDeadline := ctx.Deadline()
	f.sent = append(f.sent, published{channel: channel, message: message.([]byte), deadline: hasDeadline})
	return redis.NewIntResult(1, f.err)
}

func samplePlacement() game.Placement {
	return game.Placement{
		GameID: "g-1",
		Turn:   1,
		Mark:   game.PlayerX,
		Row:    0,
		Col:    0,
		Board:  [][]game.PlayerMark{{game.PlayerX, game.None}, {game.None, game.None}},
	}
}

func TestRedis_Render(t *testing.T) {
	t.Run("Publishes a board_changed event", func(t *testing.T) {
		pub := &fakePublisher{}
		r := NewRedis(pub, "", 100*time.Millisecond)

		r.Render(context.Background(), samplePlacement())

		require.Len(t, pub.sent, 1)
		assert.Equal(t, events.BoardChannel, pub.sent[0].channel)
		assert.True(t, pub.sent[0].deadline)

		var event events.Event
		require.NoError(t, json.Unmarshal(pub.sent[0].message, &event))
		assert.Equal(t, events.TypeBoardChanged, event.Type)

		var payload events.BoardChangedPayload
		require.NoError(t, json.Unmarshal(event.Payload, &payload))
		assert.Equal(t, "g-1", payload.GameID)
		assert.Equal(t, game.PlayerX, payload.Board[0][0])
	})

	t.Run("Publish failures do not panic", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("connection refused")}
		r := NewRedis(pub, "boards", 0)

		assert.NotPanics(t, func() { r.Render(context.Background(), samplePlacement()) })
		require.Len(t, pub.sent, 1)
		assert.Equal(t, "boards", pub.sent[0].channel)
		assert.False(t, pub.sent[0].deadline)
	})
}

func TestRedis_Render_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	rdb := redis.NewClient(opts)
	t.Cleanup(func() { rdb.Close() })

	sub := rdb.Subscribe(ctx, events.BoardChannel)
	t.Cleanup(func() { sub.Close() })
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	NewRedis(rdb, events.BoardChannel, time.Second).Render(ctx, samplePlacement())

	select {
	case msg := <-sub.Channel():
		var event events.Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
		assert.Equal(t, events.TypeBoardChanged, event.Type)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for board_changed event")
	}
}
