package push

import (
	"encoding/json"
	"log"
	"net/http"

	"mavrix/middleware"
	"mavrix/mq"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type Client struct {
	Conn   *websocket.Conn
	Send   chan []byte
	Rooms  []string
	UserID string
}

// ServeWS upgrades the connection and subscribes the client. Authenticated
// callers (Bearer token in the Authorization header or ?token= query param)
// get their own user room on top of the catalog room.
func ServeWS(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		rooms := []string{CatalogRoom}
		userID := ""

		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			if tok := r.URL.Query().Get("token"); tok != "" {
				tokenString = "Bearer " + tok
			}
		}
		if claims, err := middleware.ValidateJWT(tokenString); err == nil {
			userID = claims.UserID
			rooms = append(rooms, "user:"+userID)
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			Conn:   conn,
			Send:   make(chan []byte, 256),
			Rooms:  rooms,
			UserID: userID,
		}

		hub.register <- client
		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump discards inbound frames; the event stream is one-way. It exists
// to notice the peer closing.
func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Forward routes a domain event to the right room: per-user events to the
// owning user's room, catalog events to everyone.
func Forward(hub *Hub, event mq.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[push] marshal event failed: %v", err)
		return
	}

	if event.UserID != "" {
		hub.Broadcast("user:"+event.UserID, data)
		return
	}
	hub.Broadcast(CatalogRoom, data)
}
