package impl

import (
	"context"
	"log/slog"
	"strings"

	"chatter/config"
	deliverycontext "chatter/internal/delivery/context"
	"chatter/internal/domain/entity"
	domainerrors "chatter/internal/domain/errors"
	"chatter/internal/domain/repository"
	"chatter/internal/domain/service"
	"chatter/internal/usecase"

	"github.com/pkg/errors"
)

// maxDescriptionLen mirrors the room form's input bound.
const maxDescriptionLen = 100

const defaultListLimit = 100

// roomService implements the RoomUsecase interface.
type roomService struct {
	roomRepo  repository.RoomRepository
	publisher service.EventPublisher
	listLimit int
	logger    *slog.Logger
}

// NewRoomService is the constructor for roomService.
func NewRoomService(
	roomRepo repository.RoomRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RoomUsecase {
	listLimit := defaultListLimit
	if cfg != nil && cfg.Rooms != nil && cfg.Rooms.ListLimit > 0 {
		listLimit = cfg.Rooms.ListLimit
	}

	return &roomService{
		roomRepo:  roomRepo,
		publisher: publisher,
		listLimit: listLimit,
		logger:    logger,
	}
}

func (srv *roomService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRoom creates a private two-party room. All validation happens before
// the single store write, so a failed creation leaves no partial room behind.
func (srv *roomService) CreateRoom(ctx context.Context, input *usecase.CreateRoomInput) (*entity.Room, error) {
	if err := validateCreateRoom(input); err != nil {
		return nil, err
	}

	room := &entity.Room{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		IsPrivate:   true,
		Participants: []string{
			input.OwnerExternalID,
			input.CounterpartExternalID,
		},
	}

	if err := srv.roomRepo.Insert(ctx, room); err != nil {
		return nil, domainerrors.ErrRoomCreationFailed.WrapMessage("room insert failed: " + err.Error())
	}

	srv.log(ctx).Info("Created private room",
		slog.String("roomID", room.ID),
		slog.String("owner", input.OwnerExternalID),
	)
	srv.publish(ctx, &service.Event{
		Kind:         service.EventRoomCreated,
		SubjectID:    room.ID,
		Participants: room.Participants,
	})

	return room, nil
}

// ListVisibleRooms returns the private rooms whose membership contains the
// given external id. Membership is a containment check on the participants
// array; the owner-first storage order carries no meaning.
func (srv *roomService) ListVisibleRooms(ctx context.Context, currentExternalID string) ([]*entity.Room, error) {
	if strings.TrimSpace(currentExternalID) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "external id is required")
	}

	rooms, err := srv.roomRepo.ListByParticipant(ctx, currentExternalID, true, srv.listLimit)
	if err != nil {
		return nil, domainerrors.ErrRoomListingFailed.WrapMessage("room query failed: " + err.Error())
	}

	if rooms == nil {
		rooms = []*entity.Room{}
	}

	return rooms, nil
}

func validateCreateRoom(input *usecase.CreateRoomInput) error {
	if input == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "room input is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "room title must not be empty")
	}
	if len(input.Description) > maxDescriptionLen {
		return errors.Wrap(domainerrors.ErrValidationFailed, "room description is too long")
	}
	if strings.TrimSpace(input.OwnerExternalID) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "room owner is required")
	}
	// Private rooms require a chosen counterpart; the form gates creation on
	// the selection, and the core enforces it independently.
	if strings.TrimSpace(input.CounterpartExternalID) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "a private room requires a counterpart")
	}
	if input.CounterpartExternalID == input.OwnerExternalID {
		return errors.Wrap(domainerrors.ErrValidationFailed, "counterpart must differ from the owner")
	}

	return nil
}

func (srv *roomService) publish(ctx context.Context, event *service.Event) {
	if srv.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish event",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}
