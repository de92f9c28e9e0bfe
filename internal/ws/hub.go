package ws

import (
	"encoding/json"
	"sync"

	"shop-admin-api/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Event is the message pushed to admin panel clients, e.g. {"type":"product.updated","data":{...}}
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			logger.L().Debug("ws client connected", zap.Int("clients", h.ClientCount()))

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()

		case <-h.done:
			return
		}
	}
}

// Stop ends Run
func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

// Publish queues an event for every client. It never blocks; a nil hub or a full queue drops the event.
func (h *Hub) Publish(eventType string, data interface{}) {
	if h == nil {
		return
	}
	msg, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		logger.L().Warn("ws event not encoded", zap.String("type", eventType), zap.Error(err))
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		logger.L().Warn("ws broadcast queue full, event dropped", zap.String("type", eventType))
	}
}
