// Package ws pushes auction and user events to browsers. Clients subscribe
// to one topic per connection; the hub fans messages relayed from Redis out
// to every connection on that topic.
package ws

import (
	"context"
	"log/slog"

	"hothour/internal/infra/pubsub"
)

type broadcast struct {
	topic   string
	payload []byte
}

type Hub struct {
	topics     map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcast
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		topics:     make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcast, 64),
		done:       make(chan struct{}),
	}
}

// Run owns the topic map; all mutation happens on this goroutine.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			// done unblocks any client mid-send on register/unregister;
			// nobody services those channels after this returns.
			close(h.done)
			for _, clients := range h.topics {
				for c := range clients {
					close(c.send)
				}
			}
			return

		case client := <-h.register:
			if h.topics[client.topic] == nil {
				h.topics[client.topic] = make(map[*Client]bool)
			}
			h.topics[client.topic][client] = true

		case client := <-h.unregister:
			if clients, ok := h.topics[client.topic]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.topics, client.topic)
					}
				}
			}

		case msg := <-h.broadcast:
			for client := range h.topics[msg.topic] {
				select {
				case client.send <- msg.payload:
				default:
					// Slow consumer: drop the connection rather than
					// block every other subscriber on the topic.
					delete(h.topics[msg.topic], client)
					close(client.send)
				}
			}
		}
	}
}

func (h *Hub) Broadcast(topic string, payload []byte) {
	h.broadcast <- broadcast{topic: topic, payload: payload}
}

// Relay pumps Redis pub/sub messages into the hub until ctx is cancelled.
// Every API instance relays the same channels, so clients get events no
// matter which instance published them.
func Relay(ctx context.Context, sub *pubsub.RedisSubscriber, hub *Hub, patterns ...string) error {
	messages, err := sub.SubscribePatterns(ctx, patterns...)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			hub.Broadcast(msg.Topic, msg.Payload)
		}
		slog.Info("websocket relay stopped")
	}()
	return nil
}
