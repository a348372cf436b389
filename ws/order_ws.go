package ws

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"burgerhouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderEvent is pushed to a customer's sockets and to every admin socket
// whenever an order changes status.
type OrderEvent struct {
	Type    string    `json:"type"`
	OrderID uint      `json:"orderId"`
	UserID  uint      `json:"userId"`
	Status  string    `json:"status"`
	At      time.Time `json:"at"`
}

// OrderHub fans order status changes out to connected clients.
type OrderHub struct {
	users      map[uint]map[*websocket.Conn]bool // userID -> sockets
	admins     map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan Subscription
	unregister chan Subscription
	done       chan struct{}
	mu         sync.Mutex
}

// Subscription is one socket of one signed-in user.
type Subscription struct {
	Conn   *websocket.Conn
	UserID uint
	Admin  bool
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		users:      make(map[uint]map[*websocket.Conn]bool),
		admins:     make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		done:       make(chan struct{}),
	}
}

// Run serves register/unregister/broadcast until ctx is done.
func (h *OrderHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case sub := <-h.register:
			h.mu.Lock()
			if sub.Admin {
				h.admins[sub.Conn] = true
			} else {
				if h.users[sub.UserID] == nil {
					h.users[sub.UserID] = make(map[*websocket.Conn]bool)
				}
				h.users[sub.UserID][sub.Conn] = true
			}
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			h.drop(sub)
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.users[ev.UserID] {
				h.write(conn, ev, Subscription{Conn: conn, UserID: ev.UserID})
			}
			for conn := range h.admins {
				h.write(conn, ev, Subscription{Conn: conn, Admin: true})
			}
			h.mu.Unlock()
		}
	}
}

// OrderStatusChanged queues an event. It never blocks the caller; when the
// queue is full the event is dropped and logged.
func (h *OrderHub) OrderStatusChanged(userID, orderID uint, status string) {
	ev := OrderEvent{Type: "order.status", OrderID: orderID, UserID: userID, Status: status, At: time.Now()}
	select {
	case h.broadcast <- ev:
	default:
		log.Printf("ws: broadcast queue full, dropping order %d -> %s", orderID, status)
	}
}

// Connections reports how many sockets are open.
func (h *OrderHub) Connections() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.admins)
	for _, set := range h.users {
		n += len(set)
	}
	return n
}

// caller holds h.mu
func (h *OrderHub) write(conn *websocket.Conn, ev OrderEvent, sub Subscription) {
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteJSON(ev); err != nil {
		log.Printf("ws write error: %v", err)
		h.drop(sub)
	}
}

// caller holds h.mu
func (h *OrderHub) drop(sub Subscription) {
	if sub.Admin {
		if _, ok := h.admins[sub.Conn]; ok {
			delete(h.admins, sub.Conn)
			sub.Conn.Close()
		}
		return
	}
	if _, ok := h.users[sub.UserID][sub.Conn]; ok {
		delete(h.users[sub.UserID], sub.Conn)
		if len(h.users[sub.UserID]) == 0 {
			delete(h.users, sub.UserID)
		}
		sub.Conn.Close()
	}
}

func (h *OrderHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.admins {
		conn.Close()
	}
	for _, set := range h.users {
		for conn := range set {
			conn.Close()
		}
	}
	h.admins = make(map[*websocket.Conn]bool)
	h.users = make(map[uint]map[*websocket.Conn]bool)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves /ws/orders. Auth is done by WSAuthMiddleware.
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, UserID: userID, Admin: utils.IsAdmin(c)}
	select {
	case h.register <- sub:
		go h.listen(sub)
	case <-h.done:
		conn.Close()
	}
}

// listen drains client frames so close and ping are processed; the payloads
// themselves carry nothing.
func (h *OrderHub) listen(sub Subscription) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error: %v", err)
			}
			return
		}
	}
}
