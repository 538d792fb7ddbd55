package push

import (
	"testing"
	"time"

	"mavrix/mq"
)

func newTestClient(rooms ...string) *Client {
	return &Client{Send: make(chan []byte, 8), Rooms: rooms}
}

func eventFor(entityType, userID string) mq.Event {
	return mq.Event{EntityType: entityType, Method: "updated", UserID: userID}
}

func TestHubBroadcastReachesRoomMembers(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a := newTestClient(CatalogRoom)
	b := newTestClient(CatalogRoom, "user:u1")
	hub.register <- a
	hub.register <- b

	hub.Broadcast(CatalogRoom, []byte("catalog-change"))

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.Send:
			if string(msg) != "catalog-change" {
				t.Fatalf("unexpected message %q", msg)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for broadcast")
		}
	}
}

func TestHubUserRoomIsPrivate(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	owner := newTestClient(CatalogRoom, "user:u1")
	other := newTestClient(CatalogRoom, "user:u2")
	hub.register <- owner
	hub.register <- other

	hub.Broadcast("user:u1", []byte("cart-update"))

	select {
	case msg := <-owner.Send:
		if string(msg) != "cart-update" {
			t.Fatalf("unexpected message %q", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("owner never received the event")
	}

	select {
	case msg := <-other.Send:
		t.Fatalf("other user received %q", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c := newTestClient(CatalogRoom)
	hub.register <- c
	hub.unregister <- c

	select {
	case _, ok := <-c.Send:
		if ok {
			t.Fatal("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel never closed")
	}
}

func TestForwardRoutesByUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	user := newTestClient(CatalogRoom, "user:u1")
	watcher := newTestClient(CatalogRoom)
	hub.register <- user
	hub.register <- watcher

	Forward(hub, eventFor("cart", "u1"))

	select {
	case <-user.Send:
	case <-time.After(time.Second):
		t.Fatal("user event not delivered")
	}

	Forward(hub, eventFor("product", ""))

	for _, c := range []*Client{user, watcher} {
		select {
		case <-c.Send:
		case <-time.After(time.Second):
			t.Fatal("catalog event not delivered")
		}
	}
}
