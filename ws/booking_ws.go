package ws

import (
	"context"
	"log"
	"net/http"
	"sync"

	"tourbooking/services"
	"tourbooking/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// BookingHub กระจาย BookingEvent ไปยัง admin ที่เปิด dashboard อยู่
type BookingHub struct {
	clients    map[*websocket.Conn]uint // conn -> admin userId
	broadcast  chan services.BookingEvent
	register   chan subscription
	unregister chan *websocket.Conn
	done       chan struct{} // closed when Run returns
	mu         sync.Mutex
}

type subscription struct {
	Conn   *websocket.Conn
	UserID uint
}

func NewBookingHub() *BookingHub {
	return &BookingHub{
		clients:    make(map[*websocket.Conn]uint),
		broadcast:  make(chan services.BookingEvent, 64),
		register:   make(chan subscription),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
	}
}

// PublishBooking never blocks the caller; events are dropped when the buffer is full.
func (h *BookingHub) PublishBooking(ev services.BookingEvent) {
	select {
	case h.broadcast <- ev:
	default:
		log.Printf("ws: booking event dropped (%s #%d)", ev.Type, ev.Booking.ID)
	}
}

// Clients returns the number of connected subscribers.
func (h *BookingHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// คอยฟัง register/unregister/broadcast จนกว่า ctx จะถูกยกเลิก
func (h *BookingHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return

		case sub := <-h.register:
			h.mu.Lock()
			h.clients[sub.Conn] = sub.UserID
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/admin/bookings (ต้องผ่าน WSAuthMiddleware + role admin)
func (h *BookingHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	select {
	case h.register <- subscription{Conn: conn, UserID: userID}:
	case <-h.done:
		conn.Close()
		return
	}

	// read loop: ใช้ตรวจว่า client ปิด connection
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			select {
			case h.unregister <- conn:
			case <-h.done:
			}
			return
		}
	}
}
