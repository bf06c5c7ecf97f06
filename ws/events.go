package ws

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub pushes change events (menu/cart/sales) to every connected register UI
// over WebSocket. There is a single room: one restaurant, one register.
//
// Nothing on the publish path may block the register: Publish drops when the
// bus is full, broadcast drops per client when a client's queue is full, and
// each client has its own writer goroutine with a write deadline. A stalled
// UI tab loses events; the till keeps ringing.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan Event
	register   chan *client
	unregister chan *client
}

// Event is the wire format pushed to clients.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type client struct {
	conn *websocket.Conn
	send chan Event
}

const (
	eventBacklog = 64              // hub-wide bus
	clientQueue  = 16              // per-client queue
	writeWait    = 5 * time.Second // per-message write deadline
)

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan Event, eventBacklog),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

// Run owns the client set.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

		case ev := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- ev:
				default:
					// Slow client; skip it rather than stall everyone.
				}
			}
		}
	}
}

// Publish implements services.EventPublisher. It never blocks the caller:
// with no consumer (or a full bus) the event is dropped and logged.
func (h *Hub) Publish(event string, payload any) {
	select {
	case h.broadcast <- Event{Type: event, Payload: payload}:
	default:
		log.Printf("ws: event bus full, dropping %s event", event)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	cl := &client{conn: conn, send: make(chan Event, clientQueue)}
	h.register <- cl
	go cl.writePump()
	go h.listen(cl)
}

// writePump drains the client's queue onto the wire. A missed deadline or
// write error ends the pump and closes the connection, which in turn ends
// listen and unregisters the client.
func (c *client) writePump() {
	defer c.conn.Close()
	for ev := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(ev); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
}

// listen drains the connection until the client goes away. Clients only
// receive; anything they send is discarded.
func (h *Hub) listen(c *client) {
	defer func() { h.unregister <- c }()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
