package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "chatter/internal/delivery/context"
	"chatter/internal/delivery/http/response"
	"chatter/internal/domain/entity"
	"chatter/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CreateRoomRequest is the body of the room creation endpoint. The owner is
// never part of the body; it comes from the verified identity.
type CreateRoomRequest struct {
	Title                 string `json:"title" validate:"required"`
	Description           string `json:"description" validate:"max=100"`
	CounterpartExternalID string `json:"counterpartExternalId" validate:"required"`
}

// RoomResponse is the wire shape of a room row.
type RoomResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	IsPrivate    bool      `json:"isPrivate"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newRoomResponse(room *entity.Room) *RoomResponse {
	return &RoomResponse{
		ID:           room.ID,
		Title:        room.Title,
		Description:  room.Description,
		IsPrivate:    room.IsPrivate,
		Participants: room.Participants,
		CreatedAt:    room.CreatedAt,
		UpdatedAt:    room.UpdatedAt,
	}
}

// RoomHandler holds dependencies for room-related handlers.
type RoomHandler struct {
	uc     usecase.RoomUsecase
	logger *slog.Logger
}

// NewRoomHandler is the constructor for RoomHandler, injected by Fx.
func NewRoomHandler(uc usecase.RoomUsecase, logger *slog.Logger) *RoomHandler {
	return &RoomHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the private room creation request.
func (h *RoomHandler) Create(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "No verified identity on request")
	}

	var req CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room creation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid room creation input")
	}

	room, err := h.uc.CreateRoom(c.Request().Context(), &usecase.CreateRoomInput{
		Title:                 req.Title,
		Description:           req.Description,
		OwnerExternalID:       identity.ExternalID,
		CounterpartExternalID: req.CounterpartExternalID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newRoomResponse(room), "Room created")
}

// List returns the private rooms the caller is a member of.
func (h *RoomHandler) List(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "No verified identity on request")
	}

	rooms, err := h.uc.ListVisibleRooms(c.Request().Context(), identity.ExternalID)
	if err != nil {
		return err
	}

	out := make([]*RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, newRoomResponse(room))
	}

	return response.Success(c, http.StatusOK, out, "Rooms retrieved")
}
