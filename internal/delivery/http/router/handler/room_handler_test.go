package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "chatter/internal/delivery/context"
	"chatter/internal/delivery/http/validator"
	"chatter/internal/domain/entity"
	mocksrepo "chatter/internal/mocks/repository"
	"chatter/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRoomHandler(t *testing.T) (*RoomHandler, *mocksrepo.MockRoomRepository) {
	t.Helper()

	repo := mocksrepo.NewMockRoomRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := impl.NewRoomService(repo, nil, nil, logger)

	return NewRoomHandler(uc, logger), repo
}

func newJSONContext(t *testing.T, method, target, body string, identity *entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		deliverycontext.SetIdentity(c, identity)
	}

	return c, rec
}

func TestRoomHandler_Create(t *testing.T) {
	h, repo := newTestRoomHandler(t)
	identity := &entity.Identity{ExternalID: "firebase-uid-1"}

	repo.EXPECT().Insert(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, room *entity.Room) {
			room.ID = "r1"
		}).
		Return(nil)

	body := `{"title":"Weekend plans","description":"Just us","counterpartExternalId":"firebase-uid-2"}`
	c, rec := newJSONContext(t, http.MethodPost, "/rooms", body, identity)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"r1"`)
	assert.Contains(t, rec.Body.String(), `"isPrivate":true`)
	assert.Contains(t, rec.Body.String(), `"firebase-uid-1"`)
	assert.Contains(t, rec.Body.String(), `"firebase-uid-2"`)
}

func TestRoomHandler_Create_MissingTitle(t *testing.T) {
	h, repo := newTestRoomHandler(t)
	identity := &entity.Identity{ExternalID: "firebase-uid-1"}

	body := `{"description":"Just us","counterpartExternalId":"firebase-uid-2"}`
	c, rec := newJSONContext(t, http.MethodPost, "/rooms", body, identity)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Insert")
}

func TestRoomHandler_Create_NoIdentity(t *testing.T) {
	h, repo := newTestRoomHandler(t)

	body := `{"title":"Weekend plans","counterpartExternalId":"firebase-uid-2"}`
	c, rec := newJSONContext(t, http.MethodPost, "/rooms", body, nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	repo.AssertNotCalled(t, "Insert")
}

func TestRoomHandler_List(t *testing.T) {
	h, repo := newTestRoomHandler(t)
	identity := &entity.Identity{ExternalID: "firebase-uid-1"}

	repo.EXPECT().ListByParticipant(mock.Anything, "firebase-uid-1", true, 100).
		Return([]*entity.Room{
			{
				ID:           "r1",
				Title:        "Weekend plans",
				IsPrivate:    true,
				Participants: []string{"firebase-uid-1", "firebase-uid-2"},
			},
		}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/rooms", "", identity)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"r1"`)
}

func TestRoomHandler_List_Empty(t *testing.T) {
	h, repo := newTestRoomHandler(t)
	identity := &entity.Identity{ExternalID: "firebase-uid-1"}

	repo.EXPECT().ListByParticipant(mock.Anything, "firebase-uid-1", true, 100).
		Return(nil, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/rooms", "", identity)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
