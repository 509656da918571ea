package impl

import (
	"context"
	"testing"
	"time"

	"chatter/internal/domain/entity"
	domainerrors "chatter/internal/domain/errors"
	"chatter/internal/domain/repository"
	"chatter/internal/domain/service"
	mockRepo "chatter/internal/mocks/repository"
	mockSvc "chatter/internal/mocks/service"
	"chatter/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewProfileService(profileRepo, publisher, newDiscardLogger())

	return profileServiceFixtures{
		service:     svc,
		profileRepo: profileRepo,
		publisher:   publisher,
	}
}

func testIdentity() *entity.Identity {
	return &entity.Identity{
		ExternalID: "ext-1",
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		AvatarURL:  "https://img.example.com/ada.png",
	}
}

func TestProfileService_SyncProfile_NewIdentity_CreatesProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	identity := testIdentity()

	fx.profileRepo.EXPECT().
		FindByExternalID(ctx, "ext-1").
		Return(nil, repository.ErrProfileNotFound)

	fx.profileRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			profile.ID = "row-1"
			profile.CreatedAt = time.Now()
			profile.UpdatedAt = profile.CreatedAt
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Return(nil)

	profile, err := fx.service.SyncProfile(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, "row-1", profile.ID)
	assert.Equal(t, "ext-1", profile.ExternalID)
	assert.Equal(t, identity.Name, profile.Name)
	assert.Equal(t, identity.Email, profile.Email)
	assert.Equal(t, identity.AvatarURL, profile.AvatarURL)
}

func TestProfileService_SyncProfile_AbsentAttributes_StoredAsEmptyStrings(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByExternalID(ctx, "ext-2").
		Return(nil, repository.ErrProfileNotFound)

	fx.profileRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			profile.ID = "row-2"
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Return(nil)

	profile, err := fx.service.SyncProfile(ctx, &entity.Identity{ExternalID: "ext-2"})

	require.NoError(t, err)
	assert.Equal(t, "", profile.Name)
	assert.Equal(t, "", profile.Email)
	assert.Equal(t, "", profile.AvatarURL)
}

func TestProfileService_SyncProfile_ExistingProfile_ReturnedUnchanged(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	// The stored row predates a provider-side rename; sync must not refresh it.
	stored := &entity.Profile{
		ID:         "row-1",
		ExternalID: "ext-1",
		Name:       "Ada King",
		Email:      "ada@example.com",
	}

	fx.profileRepo.EXPECT().
		FindByExternalID(ctx, "ext-1").
		Return(stored, nil)

	profile, err := fx.service.SyncProfile(ctx, testIdentity())

	require.NoError(t, err)
	assert.Equal(t, "row-1", profile.ID)
	assert.Equal(t, "Ada King", profile.Name)
	fx.profileRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestProfileService_SyncProfile_Twice_SameRowNoSecondInsert(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	identity := testIdentity()

	var inserted *entity.Profile

	fx.profileRepo.EXPECT().
		FindByExternalID(ctx, "ext-1").
		Return(nil, repository.ErrProfileNotFound).
		Once()

	fx.profileRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			profile.ID = "row-1"
			inserted = profile
		}).
		Return(nil).
		Once()

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Return(nil).
		Once()

	first, err := fx.service.SyncProfile(ctx, identity)
	require.NoError(t, err)

	fx.profileRepo.EXPECT().
		FindByExternalID(ctx, "ext-1").
		Return(inserted, nil).
		Once()

	second, err := fx.service.SyncProfile(ctx, identity)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	fx.profileRepo.AssertNumberOfCalls(t, "Insert", 1)
}

func TestProfileService_SyncProfile_DuplicateInsert_ReturnsWinner(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	winner := &entity.Profile{ID: "row-winner", ExternalID: "ext-1", Name: "Ada Lovelace"}

	// Another device inserted the row between our lookup and our insert.
	fx.profileRepo.EXPECT().
		FindByExternalID(ctx, "ext-1").
		Return(nil, repository.ErrProfileNotFound).
		Once()

	fx.profileRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(repository.ErrDuplicateProfile)

	fx.profileRepo.EXPECT().
		FindByExternalID(ctx, "ext-1").
		Return(winner, nil).
		Once()

	profile, err := fx.service.SyncProfile(ctx, testIdentity())

	require.NoError(t, err)
	assert.Equal(t, "row-winner", profile.ID)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestProfileService_SyncProfile_LookupFailure_SyncFailed(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByExternalID(ctx, "ext-1").
		Return(nil, errors.New("store unreachable"))

	profile, err := fx.service.SyncProfile(ctx, testIdentity())

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrSyncFailed)
}

func TestProfileService_SyncProfile_InsertFailure_SyncFailed(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByExternalID(ctx, "ext-1").
		Return(nil, repository.ErrProfileNotFound)

	fx.profileRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(errors.New("write rejected"))

	_, err := fx.service.SyncProfile(ctx, testIdentity())

	assert.ErrorIs(t, err, domainerrors.ErrSyncFailed)
}

func TestProfileService_SyncProfile_MissingExternalID_ValidationFailed(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.SyncProfile(context.Background(), &entity.Identity{Name: "nameless"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.profileRepo.AssertNotCalled(t, "FindByExternalID", mock.Anything, mock.Anything)
}

func TestProfileService_SyncProfile_PublishFailure_DoesNotFailSync(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByExternalID(ctx, "ext-1").
		Return(nil, repository.ErrProfileNotFound)

	fx.profileRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			profile.ID = "row-1"
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Return(errors.New("broker down"))

	profile, err := fx.service.SyncProfile(ctx, testIdentity())

	require.NoError(t, err)
	assert.Equal(t, "row-1", profile.ID)
}

func TestProfileService_SyncProfile_PublishesProfileCreatedEvent(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByExternalID(ctx, "ext-1").
		Return(nil, repository.ErrProfileNotFound)

	fx.profileRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			profile.ID = "row-1"
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Run(func(ctx context.Context, event *service.Event) {
			assert.Equal(t, service.EventProfileCreated, event.Kind)
			assert.Equal(t, "row-1", event.SubjectID)
			assert.Equal(t, "ext-1", event.ExternalID)
		}).
		Return(nil)

	_, err := fx.service.SyncProfile(ctx, testIdentity())
	require.NoError(t, err)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByExternalID(ctx, "ext-9").
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetProfile(ctx, "ext-9")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_ListCandidates_ExcludesSelf(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	others := []*entity.Profile{
		{ID: "row-2", ExternalID: "ext-2"},
		{ID: "row-3", ExternalID: "ext-3"},
	}

	fx.profileRepo.EXPECT().
		ListExcluding(ctx, "ext-1").
		Return(others, nil)

	profiles, err := fx.service.ListCandidates(ctx, "ext-1")

	require.NoError(t, err)
	require.Len(t, profiles, 2)
	for _, p := range profiles {
		assert.NotEqual(t, "ext-1", p.ExternalID)
	}
}

func TestProfileService_ListCandidates_EmptyStore_ReturnsEmptySlice(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		ListExcluding(ctx, "ext-1").
		Return(nil, nil)

	profiles, err := fx.service.ListCandidates(ctx, "ext-1")

	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

func TestProfileService_ListCandidates_StoreFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		ListExcluding(ctx, "ext-1").
		Return(nil, errors.New("store unreachable"))

	_, err := fx.service.ListCandidates(ctx, "ext-1")

	assert.ErrorIs(t, err, domainerrors.ErrProfileLookupFailed)
}
