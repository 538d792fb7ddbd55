package mq

import (
	"context"
	"encoding/json"
	"log"

	"mavrix/rdx"
)

const eventsChannel = "storefront-events"

// Event is a domain change notification fanned out over Redis pub/sub.
// UserID is set for per-account events (cart, wishlist, orders) and empty
// for catalog-wide ones.
type Event struct {
	EntityType string `json:"entity_type"` // "cart", "wishlist", "order", "product", "settings"
	Method     string `json:"method"`      // "created", "updated", "deleted"
	EntityID   string `json:"entity_id"`
	UserID     string `json:"user_id,omitempty"`
}

// Emit publishes a domain event. Failures are logged, never fatal; events
// are best-effort notifications, not the source of truth.
func Emit(ctx context.Context, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[mq] marshal event failed: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, eventsChannel, data).Err(); err != nil {
		log.Printf("[mq] publish %s-%s failed: %v", event.EntityType, event.Method, err)
	}
}

// StartEventWorker subscribes to the events channel and invokes handler for
// every event. Run it in its own goroutine.
func StartEventWorker(handler func(Event)) {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventsChannel)
	ch := sub.Channel()

	log.Println("[mq] event worker listening")

	for msg := range ch {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[mq] bad event payload: %v", err)
			continue
		}
		handler(event)
	}
}
