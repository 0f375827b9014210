package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"neosafe/internal/domain/entity"
	domainerrors "neosafe/internal/domain/errors"
	"neosafe/internal/domain/repository"
	"neosafe/internal/domain/service"
	mockRepo "neosafe/internal/mocks/repository"
	mockSvc "neosafe/internal/mocks/service"
	"neosafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type boxServiceMocks struct {
	boxRepo   *mockRepo.MockBoxRepository
	codeGen   *mockSvc.MockCodeGenerator
	qrService *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
}

func newBoxServiceForTest(t *testing.T) (usecase.BoxUsecase, *boxServiceMocks) {
	mocks := &boxServiceMocks{
		boxRepo:   mockRepo.NewMockBoxRepository(t),
		codeGen:   mockSvc.NewMockCodeGenerator(t),
		qrService: mockSvc.NewMockQRCodeService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewBoxService(BoxServiceParams{
		BoxRepo:       mocks.boxRepo,
		CodeGenerator: mocks.codeGen,
		QRCodeService: mocks.qrService,
		Publisher:     mocks.publisher,
		Logger:        logger,
	})

	return svc, mocks
}

func TestBoxService_CreateBox(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	provider := entity.Principal{ID: uuid.New(), Role: entity.RoleProvider}

	mocks.codeGen.EXPECT().NewClaimCode().Return("A7K2M9QT", nil)
	mocks.boxRepo.EXPECT().
		CreateBox(ctx, mock.AnythingOfType("*entity.SafeBox")).
		Return(nil)

	box, err := svc.CreateBox(ctx, provider, &usecase.BoxInput{
		Name:         "門口保管箱",
		Model:        "NS-200",
		SerialNumber: "SN-0001",
	})
	require.NoError(t, err)
	assert.Equal(t, "A7K2M9QT", box.ClaimCode)
	assert.Equal(t, provider.ID, box.ProviderID)
	assert.False(t, box.IsClaimed)
	assert.Equal(t, entity.BoxStatusAvailable, box.Status)
}

func TestBoxService_CreateBox_ForbiddenForUser(t *testing.T) {
	svc, _ := newBoxServiceForTest(t)

	ctx := context.Background()
	user := entity.Principal{ID: uuid.New(), Role: entity.RoleUser}

	box, err := svc.CreateBox(ctx, user, &usecase.BoxInput{Name: "box"})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, box)
}

func TestBoxService_CreateBox_RetriesOnCodeCollision(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	provider := entity.Principal{ID: uuid.New(), Role: entity.RoleProvider}

	mocks.codeGen.EXPECT().NewClaimCode().Return("AAAAAAAA", nil).Once()
	mocks.codeGen.EXPECT().NewClaimCode().Return("BBBBBBBB", nil).Once()

	mocks.boxRepo.EXPECT().
		CreateBox(ctx, mock.AnythingOfType("*entity.SafeBox")).
		Return(repository.ErrDuplicateClaimCode).Once()
	mocks.boxRepo.EXPECT().
		CreateBox(ctx, mock.AnythingOfType("*entity.SafeBox")).
		Return(nil).Once()

	box, err := svc.CreateBox(ctx, provider, &usecase.BoxInput{Name: "box"})
	require.NoError(t, err)
	assert.Equal(t, "BBBBBBBB", box.ClaimCode)
}

func TestBoxService_CreateBox_CollisionExhaustion(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	provider := entity.Principal{ID: uuid.New(), Role: entity.RoleProvider}

	mocks.codeGen.EXPECT().NewClaimCode().Return("AAAAAAAA", nil).Times(maxCodeAttempts)
	mocks.boxRepo.EXPECT().
		CreateBox(ctx, mock.AnythingOfType("*entity.SafeBox")).
		Return(repository.ErrDuplicateClaimCode).Times(maxCodeAttempts)

	box, err := svc.CreateBox(ctx, provider, &usecase.BoxInput{Name: "box"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBoxCreationFailed)
	assert.Nil(t, box)
}

func TestBoxService_GetBox_OwnerSeesClaimedBoxWithoutClaimCode(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owner := entity.Principal{ID: ownerID, Role: entity.RoleUser}

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(&entity.SafeBox{
		ID:         42,
		ProviderID: uuid.New(),
		OwnerID:    &ownerID,
		ClaimCode:  "A7K2M9QT",
		IsClaimed:  true,
		Status:     entity.BoxStatusTransferred,
	}, nil)

	box, err := svc.GetBox(ctx, owner, 42)
	require.NoError(t, err)
	assert.Empty(t, box.ClaimCode)
	assert.True(t, box.IsClaimed)
}

func TestBoxService_GetBox_OutOfScopeReportsNotFound(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	stranger := entity.Principal{ID: uuid.New(), Role: entity.RoleUser}

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(&entity.SafeBox{
		ID:         42,
		ProviderID: uuid.New(),
		ClaimCode:  "A7K2M9QT",
		IsClaimed:  false,
		Status:     entity.BoxStatusAvailable,
	}, nil)

	box, err := svc.GetBox(ctx, stranger, 42)
	require.ErrorIs(t, err, domainerrors.ErrBoxNotFound)
	assert.Nil(t, box)
}

func TestBoxService_ListBoxes_ByRole(t *testing.T) {
	ctx := context.Background()
	providerID := uuid.New()
	ownerID := uuid.New()

	t.Run("admin lists all unclaimed", func(t *testing.T) {
		svc, mocks := newBoxServiceForTest(t)
		admin := entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}

		mocks.boxRepo.EXPECT().ListUnclaimed(ctx).Return([]*entity.SafeBox{
			{ID: 1, ClaimCode: "AAAAAAAA", Status: entity.BoxStatusAvailable},
			{ID: 2, ClaimCode: "BBBBBBBB", Status: entity.BoxStatusAvailable},
		}, nil)

		boxes, err := svc.ListBoxes(ctx, admin)
		require.NoError(t, err)
		assert.Len(t, boxes, 2)
		assert.Equal(t, "AAAAAAAA", boxes[0].ClaimCode)
	})

	t.Run("provider lists own unclaimed", func(t *testing.T) {
		svc, mocks := newBoxServiceForTest(t)
		provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}

		mocks.boxRepo.EXPECT().ListUnclaimedByProvider(ctx, providerID).Return([]*entity.SafeBox{
			{ID: 3, ProviderID: providerID, ClaimCode: "CCCCCCCC", Status: entity.BoxStatusAvailable},
		}, nil)

		boxes, err := svc.ListBoxes(ctx, provider)
		require.NoError(t, err)
		assert.Len(t, boxes, 1)
	})

	t.Run("user lists owned with claim codes hidden", func(t *testing.T) {
		svc, mocks := newBoxServiceForTest(t)
		owner := entity.Principal{ID: ownerID, Role: entity.RoleUser}

		mocks.boxRepo.EXPECT().ListOwnedBy(ctx, ownerID).Return([]*entity.SafeBox{
			{ID: 4, OwnerID: &ownerID, ClaimCode: "DDDDDDDD", IsClaimed: true, Status: entity.BoxStatusTransferred},
		}, nil)

		boxes, err := svc.ListBoxes(ctx, owner)
		require.NoError(t, err)
		require.Len(t, boxes, 1)
		assert.Empty(t, boxes[0].ClaimCode)
	})
}

func TestBoxService_ClaimBox(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	providerID := uuid.New()
	user := entity.Principal{ID: userID, Role: entity.RoleUser}

	mocks.boxRepo.EXPECT().Claim(ctx, "A7K2M9QT", userID).Return(&entity.SafeBox{
		ID:         42,
		Name:       "門口保管箱",
		ProviderID: providerID,
		OwnerID:    &userID,
		ClaimCode:  "A7K2M9QT",
		IsClaimed:  true,
		Status:     entity.BoxStatusTransferred,
	}, nil)

	mocks.publisher.EXPECT().
		PublishBoxEvent(ctx, mock.MatchedBy(func(event *service.BoxEvent) bool {
			return event.Type == service.EventBoxClaimed &&
				event.BoxID == 42 &&
				event.TargetID == providerID.String()
		})).
		Return(nil)

	box, err := svc.ClaimBox(ctx, user, "A7K2M9QT")
	require.NoError(t, err)
	assert.True(t, box.IsClaimed)
	assert.Empty(t, box.ClaimCode)
	require.NotNil(t, box.OwnerID)
	assert.Equal(t, userID, *box.OwnerID)
}

func TestBoxService_ClaimBox_Errors(t *testing.T) {
	ctx := context.Background()
	user := entity.Principal{ID: uuid.New(), Role: entity.RoleUser}

	t.Run("forbidden for provider", func(t *testing.T) {
		svc, _ := newBoxServiceForTest(t)
		provider := entity.Principal{ID: uuid.New(), Role: entity.RoleProvider}

		_, err := svc.ClaimBox(ctx, provider, "A7K2M9QT")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("wrong length short-circuits", func(t *testing.T) {
		svc, _ := newBoxServiceForTest(t)

		_, err := svc.ClaimBox(ctx, user, "A7K2")
		assert.ErrorIs(t, err, domainerrors.ErrClaimCodeNotFound)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc, mocks := newBoxServiceForTest(t)

		mocks.boxRepo.EXPECT().
			Claim(ctx, "ZZZZZZZZ", user.ID).
			Return(nil, repository.ErrBoxNotFound)

		_, err := svc.ClaimBox(ctx, user, "ZZZZZZZZ")
		assert.ErrorIs(t, err, domainerrors.ErrClaimCodeNotFound)
	})

	t.Run("already claimed", func(t *testing.T) {
		svc, mocks := newBoxServiceForTest(t)

		mocks.boxRepo.EXPECT().
			Claim(ctx, "A7K2M9QT", user.ID).
			Return(nil, repository.ErrClaimConflict)

		_, err := svc.ClaimBox(ctx, user, "A7K2M9QT")
		assert.ErrorIs(t, err, domainerrors.ErrBoxAlreadyClaimed)
	})

	t.Run("transfer in flight", func(t *testing.T) {
		svc, mocks := newBoxServiceForTest(t)

		mocks.boxRepo.EXPECT().
			Claim(ctx, "A7K2M9QT", user.ID).
			Return(nil, repository.ErrBoxStateConflict)

		_, err := svc.ClaimBox(ctx, user, "A7K2M9QT")
		assert.ErrorIs(t, err, domainerrors.ErrBoxNotAvailable)
	})
}

func TestBoxService_ClaimBox_PublishFailureDoesNotFailClaim(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := entity.Principal{ID: userID, Role: entity.RoleUser}

	mocks.boxRepo.EXPECT().Claim(ctx, "A7K2M9QT", userID).Return(&entity.SafeBox{
		ID:         42,
		ProviderID: uuid.New(),
		OwnerID:    &userID,
		IsClaimed:  true,
		Status:     entity.BoxStatusTransferred,
	}, nil)

	mocks.publisher.EXPECT().
		PublishBoxEvent(ctx, mock.AnythingOfType("*service.BoxEvent")).
		Return(errors.New("queue unavailable"))

	box, err := svc.ClaimBox(ctx, user, "A7K2M9QT")
	require.NoError(t, err)
	assert.True(t, box.IsClaimed)
}

func TestBoxService_ClaimBoxFromQR(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := entity.Principal{ID: userID, Role: entity.RoleUser}

	mocks.qrService.EXPECT().ParseClaimQR("qr-payload").Return("A7K2M9QT", nil)
	mocks.boxRepo.EXPECT().Claim(ctx, "A7K2M9QT", userID).Return(&entity.SafeBox{
		ID:         42,
		ProviderID: uuid.New(),
		OwnerID:    &userID,
		IsClaimed:  true,
		Status:     entity.BoxStatusTransferred,
	}, nil)
	mocks.publisher.EXPECT().
		PublishBoxEvent(ctx, mock.AnythingOfType("*service.BoxEvent")).
		Return(nil)

	box, err := svc.ClaimBoxFromQR(ctx, user, "qr-payload")
	require.NoError(t, err)
	assert.True(t, box.IsClaimed)
}

func TestBoxService_ClaimBoxFromQR_InvalidPayload(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	user := entity.Principal{ID: uuid.New(), Role: entity.RoleUser}

	mocks.qrService.EXPECT().ParseClaimQR("garbage").Return("", errors.New("invalid QR code type"))

	_, err := svc.ClaimBoxFromQR(ctx, user, "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrClaimCodeNotFound)
}

func TestBoxService_GenerateClaimQR(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	providerID := uuid.New()
	provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(&entity.SafeBox{
		ID:         42,
		ProviderID: providerID,
		ClaimCode:  "A7K2M9QT",
		Status:     entity.BoxStatusAvailable,
	}, nil)
	mocks.qrService.EXPECT().GenerateClaimQR("A7K2M9QT").Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := svc.GenerateClaimQR(ctx, provider, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestBoxService_GenerateClaimQR_OwnerForbidden(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owner := entity.Principal{ID: ownerID, Role: entity.RoleUser}

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(&entity.SafeBox{
		ID:         42,
		ProviderID: uuid.New(),
		OwnerID:    &ownerID,
		IsClaimed:  true,
		Status:     entity.BoxStatusTransferred,
	}, nil)

	_, err := svc.GenerateClaimQR(ctx, owner, 42)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBoxService_GeneratePropertyCode(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	providerID := uuid.New()
	provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(&entity.SafeBox{
		ID:         42,
		ProviderID: providerID,
		Status:     entity.BoxStatusAvailable,
	}, nil)

	mocks.codeGen.EXPECT().NewPropertyCode().Return("P3X9K2", nil).Once()
	mocks.codeGen.EXPECT().NewPropertyCode().Return("Q4Y8L1", nil).Once()

	mocks.boxRepo.EXPECT().
		SetPropertyCode(ctx, int64(42), "P3X9K2").
		Return(repository.ErrDuplicatePropertyCode).Once()
	mocks.boxRepo.EXPECT().
		SetPropertyCode(ctx, int64(42), "Q4Y8L1").
		Return(nil).Once()

	code, err := svc.GeneratePropertyCode(ctx, provider, 42)
	require.NoError(t, err)
	assert.Equal(t, "Q4Y8L1", code)
}

func TestBoxService_GeneratePropertyCode_BoxNotAvailable(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	providerID := uuid.New()
	provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(&entity.SafeBox{
		ID:         42,
		ProviderID: providerID,
		Status:     entity.BoxStatusPendingTransfer,
	}, nil)

	_, err := svc.GeneratePropertyCode(ctx, provider, 42)
	assert.ErrorIs(t, err, domainerrors.ErrBoxNotAvailable)
}

func TestBoxService_UnlockBox(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owner := entity.Principal{ID: ownerID, Role: entity.RoleUser}

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(&entity.SafeBox{
		ID:        42,
		Name:      "門口保管箱",
		OwnerID:   &ownerID,
		IsClaimed: true,
		Status:    entity.BoxStatusTransferred,
	}, nil)

	mocks.publisher.EXPECT().
		PublishBoxEvent(ctx, mock.MatchedBy(func(event *service.BoxEvent) bool {
			return event.Type == service.EventBoxUnlock &&
				event.BoxID == 42 &&
				event.ActorID == ownerID.String()
		})).
		Return(nil)

	err := svc.UnlockBox(ctx, owner, 42)
	require.NoError(t, err)
}

func TestBoxService_UnlockBox_PublishFailureFailsRequest(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owner := entity.Principal{ID: ownerID, Role: entity.RoleUser}

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(&entity.SafeBox{
		ID:        42,
		OwnerID:   &ownerID,
		IsClaimed: true,
		Status:    entity.BoxStatusTransferred,
	}, nil)

	mocks.publisher.EXPECT().
		PublishBoxEvent(ctx, mock.AnythingOfType("*service.BoxEvent")).
		Return(errors.New("queue unavailable"))

	err := svc.UnlockBox(ctx, owner, 42)
	require.Error(t, err)
}

func TestBoxService_UnlockBox_ProviderForbidden(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	providerID := uuid.New()
	provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(&entity.SafeBox{
		ID:         42,
		ProviderID: providerID,
		Status:     entity.BoxStatusAvailable,
	}, nil)

	err := svc.UnlockBox(ctx, provider, 42)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBoxService_DeleteBox(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	providerID := uuid.New()
	provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(&entity.SafeBox{
		ID:         42,
		ProviderID: providerID,
		Status:     entity.BoxStatusAvailable,
	}, nil)
	mocks.boxRepo.EXPECT().DeleteBox(ctx, int64(42)).Return(nil)

	err := svc.DeleteBox(ctx, provider, 42)
	require.NoError(t, err)
}

func TestBoxService_DeleteBox_ClaimedConcurrently(t *testing.T) {
	svc, mocks := newBoxServiceForTest(t)

	ctx := context.Background()
	providerID := uuid.New()
	provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(&entity.SafeBox{
		ID:         42,
		ProviderID: providerID,
		Status:     entity.BoxStatusAvailable,
	}, nil)
	mocks.boxRepo.EXPECT().DeleteBox(ctx, int64(42)).Return(repository.ErrBoxClaimed)

	err := svc.DeleteBox(ctx, provider, 42)
	assert.ErrorIs(t, err, domainerrors.ErrClaimedBoxImmutable)
}
