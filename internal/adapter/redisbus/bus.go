// Package redisbus fans persisted notifications out over Redis pub/sub.
package redisbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/bluemoon-fees/internal/config"
	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// Event is the wire form of a published notification.
type Event struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	EntityType string    `json:"entityType"`
	EntityID   int64     `json:"entityId"`
	UserID     *int64    `json:"userId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// EventOf converts a stored notification into its wire form.
func EventOf(n domain.Notification) Event {
	return Event{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		EntityType: n.EntityType.String(),
		EntityID:   n.EntityID,
		UserID:     n.UserID,
		CreatedAt:  n.CreatedAt,
	}
}

// Bus publishes and consumes notification events on one channel.
type Bus struct {
	log     *slog.Logger
	rdb     *goredis.Client
	channel string
}

// Connect dials Redis and pings it.
func Connect(ctx context.Context, log *slog.Logger, cfg config.RedisConfig) (*Bus, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return New(log, rdb, cfg.Channel), nil
}

// New wraps an existing client.
func New(log *slog.Logger, rdb *goredis.Client, channel string) *Bus {
	return &Bus{
		log:     log.With("component", "redisbus"),
		rdb:     rdb,
		channel: channel,
	}
}

// Publish sends the notification to every subscriber of the channel.
func (b *Bus) Publish(ctx context.Context, n domain.Notification) error {
	raw, err := json.Marshal(EventOf(n))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := b.rdb.Publish(ctx, b.channel, raw).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Subscribe delivers events to onEvent until ctx is cancelled. It returns once
// the subscription is confirmed failed or ctx ends; a cancelled ctx is not an error.
func (b *Bus) Subscribe(ctx context.Context, onEvent func(Event)) error {
	if onEvent == nil {
		return fmt.Errorf("onEvent callback required")
	}

	sub := b.rdb.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("redis subscribe: %w", err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var ev Event
			if err := json.Unmarshal([]byte(m.Payload), &ev); err != nil {
				b.log.WarnContext(ctx, "bad notification payload", slog.String("error", err.Error()))
				continue
			}
			onEvent(ev)
		}
	}
}

// Ping reports whether Redis is reachable.
func (b *Bus) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}

// Close releases the client.
func (b *Bus) Close() error {
	return b.rdb.Close()
}
