package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"chatter/internal/domain/entity"
	domainerrors "chatter/internal/domain/errors"
	"chatter/internal/domain/service"
	mockRepo "chatter/internal/mocks/repository"
	mockSvc "chatter/internal/mocks/service"
	"chatter/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// roomServiceFixtures holds all test dependencies for room service tests.
type roomServiceFixtures struct {
	service   usecase.RoomUsecase
	roomRepo  *mockRepo.MockRoomRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestRoomService(t *testing.T) roomServiceFixtures {
	roomRepo := mockRepo.NewMockRoomRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewRoomService(roomRepo, publisher, newTestConfig(100), newDiscardLogger())

	return roomServiceFixtures{
		service:   svc,
		roomRepo:  roomRepo,
		publisher: publisher,
	}
}

func validRoomInput() *usecase.CreateRoomInput {
	return &usecase.CreateRoomInput{
		Title:                 "Team",
		Description:           "desc",
		OwnerExternalID:       "u1",
		CounterpartExternalID: "u2",
	}
}

func TestRoomService_CreateRoom_Success(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()

	fx.roomRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Room")).
		Run(func(ctx context.Context, room *entity.Room) {
			room.ID = "room-1"
			room.CreatedAt = time.Now()
			room.UpdatedAt = room.CreatedAt
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Return(nil)

	room, err := fx.service.CreateRoom(ctx, validRoomInput())

	require.NoError(t, err)
	assert.Equal(t, "room-1", room.ID)
	assert.Equal(t, "Team", room.Title)
	assert.True(t, room.IsPrivate)
	assert.Equal(t, []string{"u1", "u2"}, room.Participants)
}

func TestRoomService_CreateRoom_EmptyTitle_ValidationFailed(t *testing.T) {
	fx := createTestRoomService(t)

	input := validRoomInput()
	input.Title = "  "

	_, err := fx.service.CreateRoom(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.roomRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestRoomService_CreateRoom_MissingCounterpart_ValidationFailed(t *testing.T) {
	fx := createTestRoomService(t)

	input := validRoomInput()
	input.CounterpartExternalID = ""

	_, err := fx.service.CreateRoom(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.roomRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestRoomService_CreateRoom_CounterpartIsOwner_ValidationFailed(t *testing.T) {
	fx := createTestRoomService(t)

	input := validRoomInput()
	input.CounterpartExternalID = input.OwnerExternalID

	_, err := fx.service.CreateRoom(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRoomService_CreateRoom_DescriptionTooLong_ValidationFailed(t *testing.T) {
	fx := createTestRoomService(t)

	input := validRoomInput()
	input.Description = strings.Repeat("x", maxDescriptionLen+1)

	_, err := fx.service.CreateRoom(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRoomService_CreateRoom_StoreFailure_CreationFailed(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()

	fx.roomRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Room")).
		Return(errors.New("write rejected"))

	room, err := fx.service.CreateRoom(ctx, validRoomInput())

	assert.Nil(t, room)
	assert.ErrorIs(t, err, domainerrors.ErrRoomCreationFailed)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestRoomService_CreateRoom_PublishFailure_StillSucceeds(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()

	fx.roomRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Room")).
		Run(func(ctx context.Context, room *entity.Room) {
			room.ID = "room-1"
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Return(errors.New("broker down"))

	room, err := fx.service.CreateRoom(ctx, validRoomInput())

	require.NoError(t, err)
	assert.Equal(t, "room-1", room.ID)
}

func TestRoomService_CreateRoom_PublishesRoomCreatedEvent(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()

	fx.roomRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Room")).
		Run(func(ctx context.Context, room *entity.Room) {
			room.ID = "room-1"
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Run(func(ctx context.Context, event *service.Event) {
			assert.Equal(t, service.EventRoomCreated, event.Kind)
			assert.Equal(t, "room-1", event.SubjectID)
			assert.Equal(t, []string{"u1", "u2"}, event.Participants)
		}).
		Return(nil)

	_, err := fx.service.CreateRoom(ctx, validRoomInput())
	require.NoError(t, err)
}

func TestRoomService_ListVisibleRooms_QueriesPrivateMembership(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()

	stored := []*entity.Room{
		{ID: "room-1", Title: "Team", IsPrivate: true, Participants: []string{"u1", "u2"}},
	}

	fx.roomRepo.EXPECT().
		ListByParticipant(ctx, "u1", true, 100).
		Return(stored, nil)

	rooms, err := fx.service.ListVisibleRooms(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.True(t, rooms[0].HasParticipant("u1"))
}

func TestRoomService_ListVisibleRooms_NoMatches_ReturnsEmptySlice(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()

	fx.roomRepo.EXPECT().
		ListByParticipant(ctx, "u3", true, 100).
		Return(nil, nil)

	rooms, err := fx.service.ListVisibleRooms(ctx, "u3")

	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestRoomService_ListVisibleRooms_StoreFailure_ListingFailed(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()

	fx.roomRepo.EXPECT().
		ListByParticipant(ctx, "u1", true, 100).
		Return(nil, errors.New("store unreachable"))

	rooms, err := fx.service.ListVisibleRooms(ctx, "u1")

	assert.Nil(t, rooms)
	assert.ErrorIs(t, err, domainerrors.ErrRoomListingFailed)
}

func TestRoomService_ListVisibleRooms_MissingExternalID_ValidationFailed(t *testing.T) {
	fx := createTestRoomService(t)

	_, err := fx.service.ListVisibleRooms(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

// fakeRoomStore is a minimal in-memory RoomRepository used to exercise the
// create-then-list round trip with real containment filtering.
type fakeRoomStore struct {
	rooms []*entity.Room
}

func (s *fakeRoomStore) Insert(_ context.Context, room *entity.Room) error {
	stored := *room
	stored.ID = "room-" + time.Now().Format("150405.000000000")
	s.rooms = append(s.rooms, &stored)
	room.ID = stored.ID

	return nil
}

func (s *fakeRoomStore) ListByParticipant(_ context.Context, externalID string, private bool, limit int) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, room := range s.rooms {
		if len(out) == limit {
			break
		}
		if room.IsPrivate == private && room.HasParticipant(externalID) {
			out = append(out, room)
		}
	}

	return out, nil
}

func TestRoomService_CreateThenList_RoundTrip(t *testing.T) {
	store := &fakeRoomStore{}
	svc := NewRoomService(store, nil, newTestConfig(100), newDiscardLogger())
	ctx := context.Background()

	created, err := svc.CreateRoom(ctx, &usecase.CreateRoomInput{
		Title:                 "Team",
		Description:           "desc",
		OwnerExternalID:       "u1",
		CounterpartExternalID: "u2",
	})
	require.NoError(t, err)

	for _, member := range []string{"u1", "u2"} {
		rooms, err := svc.ListVisibleRooms(ctx, member)
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, created.ID, rooms[0].ID)
		assert.Equal(t, []string{"u1", "u2"}, rooms[0].Participants)
	}

	rooms, err := svc.ListVisibleRooms(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, rooms)
}
