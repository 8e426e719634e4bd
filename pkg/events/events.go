// Package events provides a Redis-backed broadcast channel for change
// notifications. Mutating operations publish to a topic; client views
// subscribe to the topic and treat every message as a cache-invalidation
// signal that triggers a refetch.
package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/surjithprasanna/proz-portal/pkg/lifecycle"
)

// System manages publish and subscribe operations on the broadcast channel.
type System interface {
	// Start registers connection and shutdown hooks with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
	// Publish sends a message on the given topic. Best effort: callers treat
	// failures as log-only since subscribers recover by refetching.
	Publish(ctx context.Context, topic string, message string) error
	// Subscribe returns a channel of messages for the given topic and a
	// cancel function that closes the subscription.
	Subscribe(ctx context.Context, topic string) (<-chan string, func(), error)
}

type broadcaster struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// New creates an events system from the given configuration.
// The Redis connection is not verified until Start is called.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &broadcaster{
		client: client,
		prefix: cfg.ChannelPrefix,
		logger: logger.With("system", "events"),
	}, nil
}

func (b *broadcaster) Start(lc *lifecycle.Coordinator) error {
	b.logger.Info("starting events system")

	lc.OnStartup(func() {
		if err := b.client.Ping(lc.Context()).Err(); err != nil {
			b.logger.Error("redis ping failed", "error", err)
			return
		}
		b.logger.Info("events channel ready")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := b.client.Close(); err != nil {
			b.logger.Error("redis close failed", "error", err)
		}
	})

	return nil
}

func (b *broadcaster) Publish(ctx context.Context, topic string, message string) error {
	if err := b.client.Publish(ctx, b.channel(topic), message).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func (b *broadcaster) Subscribe(ctx context.Context, topic string) (<-chan string, func(), error) {
	sub := b.client.Subscribe(ctx, b.channel(topic))

	// Force the subscription handshake so failures surface here
	// instead of as a silently empty channel.
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, nil, fmt.Errorf("subscribe %s: %w", topic, err)
	}

	out := make(chan string)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			select {
			case out <- msg.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() {
		if err := sub.Close(); err != nil {
			b.logger.Warn("subscription close failed", "topic", topic, "error", err)
		}
	}

	return out, cancel, nil
}

func (b *broadcaster) channel(topic string) string {
	return b.prefix + ":" + topic
}
