package notify

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"equiprent/internal/domain"
	"equiprent/internal/middleware"
	"equiprent/internal/pkg/response"
)

// BookingEvent is the frame pushed when a booking changes state.
type BookingEvent struct {
	Type        string               `json:"type"` // booking_created | booking_status_changed
	BookingID   int64                `json:"booking_id"`
	Reference   string               `json:"reference"`
	EquipmentID int64                `json:"equipment_id"`
	Status      domain.BookingStatus `json:"status"`
	At          time.Time            `json:"at"`
}

type Service struct {
	hub *Hub
}

func NewService(hub *Hub) *Service {
	return &Service{hub: hub}
}

// BookingCreated notifies the booking owner that their request was
// registered. Nil-safe so callers never guard.
func (s *Service) BookingCreated(ctx context.Context, b *domain.Booking) {
	if s == nil {
		return
	}
	s.hub.SendToUser(b.UserID, BookingEvent{
		Type:        "booking_created",
		BookingID:   b.ID,
		Reference:   b.Reference,
		EquipmentID: b.EquipmentID,
		Status:      b.Status,
		At:          time.Now().UTC(),
	})
}

// BookingStatusChanged notifies the booking owner of a lifecycle change.
func (s *Service) BookingStatusChanged(ctx context.Context, b *domain.Booking) {
	if s == nil {
		return
	}
	s.hub.SendToUser(b.UserID, BookingEvent{
		Type:        "booking_status_changed",
		BookingID:   b.ID,
		Reference:   b.Reference,
		EquipmentID: b.EquipmentID,
		Status:      b.Status,
		At:          time.Now().UTC(),
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// cross-origin websocket upgrades are gated by the CORS middleware
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/notifications", h.Connect)
}

// Connect upgrades to a websocket and parks the connection in the hub.
// The read loop exists only to observe the close.
func (h *Handler) Connect(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(userID, conn)

	go func() {
		defer h.hub.Unregister(userID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
