package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"neosafe/internal/domain/entity"
	domainerrors "neosafe/internal/domain/errors"
	"neosafe/internal/domain/repository"
	"neosafe/internal/domain/service"
	mockRepo "neosafe/internal/mocks/repository"
	mockSvc "neosafe/internal/mocks/service"
	"neosafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transferServiceMocks struct {
	boxRepo      *mockRepo.MockBoxRepository
	transferRepo *mockRepo.MockTransferRequestRepository
	txManager    *mockRepo.MockTransactionManager
	publisher    *mockSvc.MockEventPublisher
}

func newTransferServiceForTest(t *testing.T) (usecase.TransferUsecase, *transferServiceMocks) {
	mocks := &transferServiceMocks{
		boxRepo:      mockRepo.NewMockBoxRepository(t),
		transferRepo: mockRepo.NewMockTransferRequestRepository(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewTransferService(TransferServiceParams{
		BoxRepo:      mocks.boxRepo,
		TransferRepo: mocks.transferRepo,
		TxManager:    mocks.txManager,
		Publisher:    mocks.publisher,
		Logger:       logger,
	})

	return svc, mocks
}

// expectTransaction wires the transaction manager mock to run the given
// function against a factory backed by transactional repository mocks.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager) (*mockRepo.MockBoxRepository, *mockRepo.MockTransferRequestRepository) {
	txBoxRepo := mockRepo.NewMockBoxRepository(t)
	txTransferRepo := mockRepo.NewMockTransferRequestRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewBoxRepository().Return(txBoxRepo).Maybe()
	factory.EXPECT().NewTransferRequestRepository().Return(txTransferRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txBoxRepo, txTransferRepo
}

func TestTransferService_RequestTransfer(t *testing.T) {
	svc, mocks := newTransferServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	providerID := uuid.New()
	user := entity.Principal{ID: userID, Role: entity.RoleUser}
	propertyCode := "P3X9K2"

	box := &entity.SafeBox{
		ID:           42,
		Name:         "門口保管箱",
		ProviderID:   providerID,
		PropertyCode: &propertyCode,
		Status:       entity.BoxStatusAvailable,
	}

	mocks.boxRepo.EXPECT().FindBoxByPropertyCode(ctx, propertyCode).Return(box, nil)
	mocks.transferRepo.EXPECT().
		FindPendingRequest(ctx, int64(42), userID).
		Return(nil, repository.ErrTransferRequestNotFound)

	txBoxRepo, txTransferRepo := expectTransaction(t, mocks.txManager)
	txBoxRepo.EXPECT().
		MarkPendingTransfer(ctx, int64(42), mock.AnythingOfType("time.Time")).
		Return(nil)
	txTransferRepo.EXPECT().
		CreateRequest(ctx, mock.AnythingOfType("*entity.TransferRequest")).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishBoxEvent(ctx, mock.MatchedBy(func(event *service.BoxEvent) bool {
			return event.Type == service.EventTransferRequested &&
				event.BoxID == 42 &&
				event.TargetID == providerID.String()
		})).
		Return(nil)

	request, err := svc.RequestTransfer(ctx, user, propertyCode, "我買了這個箱子")
	require.NoError(t, err)
	assert.Equal(t, int64(42), request.BoxID)
	assert.Equal(t, userID, request.RequestorID)
	assert.Equal(t, providerID, request.ProviderID)
	assert.Equal(t, entity.TransferStatusPending, request.Status)
}

func TestTransferService_RequestTransfer_Errors(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := entity.Principal{ID: userID, Role: entity.RoleUser}
	propertyCode := "P3X9K2"

	t.Run("forbidden for provider", func(t *testing.T) {
		svc, _ := newTransferServiceForTest(t)
		provider := entity.Principal{ID: uuid.New(), Role: entity.RoleProvider}

		_, err := svc.RequestTransfer(ctx, provider, propertyCode, "")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("wrong length short-circuits", func(t *testing.T) {
		svc, _ := newTransferServiceForTest(t)

		_, err := svc.RequestTransfer(ctx, user, "P3X", "")
		assert.ErrorIs(t, err, domainerrors.ErrPropertyCodeNotFound)
	})

	t.Run("unknown property code", func(t *testing.T) {
		svc, mocks := newTransferServiceForTest(t)

		mocks.boxRepo.EXPECT().
			FindBoxByPropertyCode(ctx, propertyCode).
			Return(nil, repository.ErrBoxNotFound)

		_, err := svc.RequestTransfer(ctx, user, propertyCode, "")
		assert.ErrorIs(t, err, domainerrors.ErrPropertyCodeNotFound)
	})

	t.Run("box already claimed", func(t *testing.T) {
		svc, mocks := newTransferServiceForTest(t)
		ownerID := uuid.New()

		mocks.boxRepo.EXPECT().FindBoxByPropertyCode(ctx, propertyCode).Return(&entity.SafeBox{
			ID:        42,
			OwnerID:   &ownerID,
			IsClaimed: true,
			Status:    entity.BoxStatusTransferred,
		}, nil)

		_, err := svc.RequestTransfer(ctx, user, propertyCode, "")
		assert.ErrorIs(t, err, domainerrors.ErrBoxAlreadyClaimed)
	})

	t.Run("pending request already exists", func(t *testing.T) {
		svc, mocks := newTransferServiceForTest(t)

		mocks.boxRepo.EXPECT().FindBoxByPropertyCode(ctx, propertyCode).Return(&entity.SafeBox{
			ID:     42,
			Status: entity.BoxStatusAvailable,
		}, nil)
		mocks.transferRepo.EXPECT().
			FindPendingRequest(ctx, int64(42), userID).
			Return(&entity.TransferRequest{ID: 7, BoxID: 42, RequestorID: userID}, nil)

		_, err := svc.RequestTransfer(ctx, user, propertyCode, "")
		assert.ErrorIs(t, err, domainerrors.ErrPendingTransferExists)
	})

	t.Run("box lost availability inside transaction", func(t *testing.T) {
		svc, mocks := newTransferServiceForTest(t)

		mocks.boxRepo.EXPECT().FindBoxByPropertyCode(ctx, propertyCode).Return(&entity.SafeBox{
			ID:     42,
			Status: entity.BoxStatusAvailable,
		}, nil)
		mocks.transferRepo.EXPECT().
			FindPendingRequest(ctx, int64(42), userID).
			Return(nil, repository.ErrTransferRequestNotFound)

		txBoxRepo, _ := expectTransaction(t, mocks.txManager)
		txBoxRepo.EXPECT().
			MarkPendingTransfer(ctx, int64(42), mock.AnythingOfType("time.Time")).
			Return(repository.ErrBoxStateConflict)

		_, err := svc.RequestTransfer(ctx, user, propertyCode, "")
		assert.ErrorIs(t, err, domainerrors.ErrBoxNotAvailable)
	})
}

func TestTransferService_ListTransferRequests_ByRole(t *testing.T) {
	ctx := context.Background()

	t.Run("provider lists own requests", func(t *testing.T) {
		svc, mocks := newTransferServiceForTest(t)
		providerID := uuid.New()
		provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}

		mocks.transferRepo.EXPECT().ListRequestsByProvider(ctx, providerID).Return([]*entity.TransferRequest{
			{ID: 1, ProviderID: providerID, Status: entity.TransferStatusPending},
		}, nil)

		requests, err := svc.ListTransferRequests(ctx, provider)
		require.NoError(t, err)
		assert.Len(t, requests, 1)
	})

	t.Run("user lists own requests", func(t *testing.T) {
		svc, mocks := newTransferServiceForTest(t)
		userID := uuid.New()
		user := entity.Principal{ID: userID, Role: entity.RoleUser}

		mocks.transferRepo.EXPECT().ListRequestsByRequestor(ctx, userID).Return([]*entity.TransferRequest{
			{ID: 2, RequestorID: userID, Status: entity.TransferStatusApproved},
		}, nil)

		requests, err := svc.ListTransferRequests(ctx, user)
		require.NoError(t, err)
		assert.Len(t, requests, 1)
	})

	t.Run("admin lists all requests", func(t *testing.T) {
		svc, mocks := newTransferServiceForTest(t)
		admin := entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}

		mocks.transferRepo.EXPECT().ListRequests(ctx).Return([]*entity.TransferRequest{
			{ID: 1}, {ID: 2},
		}, nil)

		requests, err := svc.ListTransferRequests(ctx, admin)
		require.NoError(t, err)
		assert.Len(t, requests, 2)
	})
}

func TestTransferService_RespondToRequest_Approve(t *testing.T) {
	svc, mocks := newTransferServiceForTest(t)

	ctx := context.Background()
	providerID := uuid.New()
	requestorID := uuid.New()
	provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}

	mocks.transferRepo.EXPECT().FindRequestByID(ctx, int64(7)).Return(&entity.TransferRequest{
		ID:          7,
		BoxID:       42,
		RequestorID: requestorID,
		ProviderID:  providerID,
		Status:      entity.TransferStatusPending,
		CreatedAt:   time.Now(),
	}, nil)

	txBoxRepo, txTransferRepo := expectTransaction(t, mocks.txManager)
	txTransferRepo.EXPECT().
		ResolveRequest(ctx, int64(7), entity.TransferStatusApproved, "核可").
		Return(nil)
	txBoxRepo.EXPECT().
		CompleteTransfer(ctx, int64(42), requestorID).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishBoxEvent(ctx, mock.MatchedBy(func(event *service.BoxEvent) bool {
			return event.Type == service.EventTransferResolved &&
				event.Decision == "approved" &&
				event.TargetID == requestorID.String()
		})).
		Return(nil)

	request, err := svc.RespondToRequest(ctx, provider, 7, true, "核可")
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusApproved, request.Status)
	assert.Equal(t, "核可", request.Notes)
}

func TestTransferService_RespondToRequest_Reject(t *testing.T) {
	svc, mocks := newTransferServiceForTest(t)

	ctx := context.Background()
	providerID := uuid.New()
	requestorID := uuid.New()
	provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}

	mocks.transferRepo.EXPECT().FindRequestByID(ctx, int64(7)).Return(&entity.TransferRequest{
		ID:          7,
		BoxID:       42,
		RequestorID: requestorID,
		ProviderID:  providerID,
		Status:      entity.TransferStatusPending,
	}, nil)

	txBoxRepo, txTransferRepo := expectTransaction(t, mocks.txManager)
	txTransferRepo.EXPECT().
		ResolveRequest(ctx, int64(7), entity.TransferStatusRejected, "箱子已另售").
		Return(nil)
	txBoxRepo.EXPECT().
		RevertPendingTransfer(ctx, int64(42)).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishBoxEvent(ctx, mock.MatchedBy(func(event *service.BoxEvent) bool {
			return event.Type == service.EventTransferResolved &&
				event.Decision == "rejected"
		})).
		Return(nil)

	request, err := svc.RespondToRequest(ctx, provider, 7, false, "箱子已另售")
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusRejected, request.Status)
}

func TestTransferService_RespondToRequest_AdminMayResolve(t *testing.T) {
	svc, mocks := newTransferServiceForTest(t)

	ctx := context.Background()
	requestorID := uuid.New()
	admin := entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}

	mocks.transferRepo.EXPECT().FindRequestByID(ctx, int64(7)).Return(&entity.TransferRequest{
		ID:          7,
		BoxID:       42,
		RequestorID: requestorID,
		ProviderID:  uuid.New(),
		Status:      entity.TransferStatusPending,
	}, nil)

	txBoxRepo, txTransferRepo := expectTransaction(t, mocks.txManager)
	txTransferRepo.EXPECT().
		ResolveRequest(ctx, int64(7), entity.TransferStatusApproved, "").
		Return(nil)
	txBoxRepo.EXPECT().
		CompleteTransfer(ctx, int64(42), requestorID).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishBoxEvent(ctx, mock.AnythingOfType("*service.BoxEvent")).
		Return(nil)

	_, err := svc.RespondToRequest(ctx, admin, 7, true, "")
	require.NoError(t, err)
}

func TestTransferService_RespondToRequest_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("request not found", func(t *testing.T) {
		svc, mocks := newTransferServiceForTest(t)
		provider := entity.Principal{ID: uuid.New(), Role: entity.RoleProvider}

		mocks.transferRepo.EXPECT().
			FindRequestByID(ctx, int64(99)).
			Return(nil, repository.ErrTransferRequestNotFound)

		_, err := svc.RespondToRequest(ctx, provider, 99, true, "")
		assert.ErrorIs(t, err, domainerrors.ErrTransferRequestNotFound)
	})

	t.Run("wrong provider", func(t *testing.T) {
		svc, mocks := newTransferServiceForTest(t)
		otherProvider := entity.Principal{ID: uuid.New(), Role: entity.RoleProvider}

		mocks.transferRepo.EXPECT().FindRequestByID(ctx, int64(7)).Return(&entity.TransferRequest{
			ID:         7,
			ProviderID: uuid.New(),
			Status:     entity.TransferStatusPending,
		}, nil)

		_, err := svc.RespondToRequest(ctx, otherProvider, 7, true, "")
		assert.ErrorIs(t, err, domainerrors.ErrNotTransferProvider)
	})

	t.Run("requestor may not resolve own request", func(t *testing.T) {
		svc, mocks := newTransferServiceForTest(t)
		requestorID := uuid.New()
		requestor := entity.Principal{ID: requestorID, Role: entity.RoleUser}

		mocks.transferRepo.EXPECT().FindRequestByID(ctx, int64(7)).Return(&entity.TransferRequest{
			ID:          7,
			RequestorID: requestorID,
			ProviderID:  uuid.New(),
			Status:      entity.TransferStatusPending,
		}, nil)

		_, err := svc.RespondToRequest(ctx, requestor, 7, true, "")
		assert.ErrorIs(t, err, domainerrors.ErrNotTransferProvider)
	})

	t.Run("already processed", func(t *testing.T) {
		svc, mocks := newTransferServiceForTest(t)
		providerID := uuid.New()
		provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}

		mocks.transferRepo.EXPECT().FindRequestByID(ctx, int64(7)).Return(&entity.TransferRequest{
			ID:         7,
			ProviderID: providerID,
			Status:     entity.TransferStatusApproved,
		}, nil)

		_, err := svc.RespondToRequest(ctx, provider, 7, true, "")
		assert.ErrorIs(t, err, domainerrors.ErrTransferAlreadyProcessed)
	})

	t.Run("resolved concurrently inside transaction", func(t *testing.T) {
		svc, mocks := newTransferServiceForTest(t)
		providerID := uuid.New()
		provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}

		mocks.transferRepo.EXPECT().FindRequestByID(ctx, int64(7)).Return(&entity.TransferRequest{
			ID:          7,
			BoxID:       42,
			RequestorID: uuid.New(),
			ProviderID:  providerID,
			Status:      entity.TransferStatusPending,
		}, nil)

		_, txTransferRepo := expectTransaction(t, mocks.txManager)
		txTransferRepo.EXPECT().
			ResolveRequest(ctx, int64(7), entity.TransferStatusApproved, "").
			Return(repository.ErrTransferNotPending)

		_, err := svc.RespondToRequest(ctx, provider, 7, true, "")
		assert.ErrorIs(t, err, domainerrors.ErrTransferAlreadyProcessed)
	})
}
