// Package pubsub is the Redis-backed realtime fabric. Core code publishes
// domain events to topic channels; the WebSocket layer pattern-subscribes
// and relays raw payloads to connected clients. Redis also decouples
// multiple API instances: an event published by one is delivered by all.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"hothour/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

func NewClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	cleanup := func() {
		_ = client.Close()
	}

	return client, cleanup, nil
}

type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	if err := p.client.Publish(ctx, topic, data).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Message is one relayed event: the concrete topic it arrived on and the
// JSON payload as published.
type Message struct {
	Topic   string
	Payload []byte
}

type RedisSubscriber struct {
	client *redis.Client
}

func NewRedisSubscriber(client *redis.Client) *RedisSubscriber {
	return &RedisSubscriber{client: client}
}

// SubscribePatterns fans matching messages into the returned channel until
// ctx is cancelled.
func (s *RedisSubscriber) SubscribePatterns(ctx context.Context, patterns ...string) (<-chan Message, error) {
	sub := s.client.PSubscribe(ctx, patterns...)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	out := make(chan Message, 64)
	go func() {
		defer close(out)
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				out <- Message{Topic: msg.Channel, Payload: []byte(msg.Payload)}
			}
		}
	}()

	return out, nil
}
