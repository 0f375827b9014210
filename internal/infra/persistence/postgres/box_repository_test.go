package postgres

import (
	"context"
	"testing"
	"time"

	"neosafe/internal/domain/entity"
	"neosafe/internal/domain/repository"
	"neosafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newBoxRepoForTest opens an in-memory store so the conditional UPDATE
// guards are exercised against real SQL, not mocks.
func newBoxRepoForTest(t *testing.T) repository.BoxRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every statement on the same in-memory store.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.SafeBoxModel{}))

	return NewBoxRepository(db)
}

func createBoxForTest(t *testing.T, repo repository.BoxRepository, claimCode string) *entity.SafeBox {
	t.Helper()

	box := &entity.SafeBox{
		Name:         "門口保管箱",
		Model:        "NS-100",
		SerialNumber: "SN-" + claimCode,
		ProviderID:   uuid.New(),
		ClaimCode:    claimCode,
		IsClaimed:    false,
		Status:       entity.BoxStatusAvailable,
	}
	require.NoError(t, repo.CreateBox(context.Background(), box))

	return box
}

func TestBoxRepository_Claim(t *testing.T) {
	ctx := context.Background()
	repo := newBoxRepoForTest(t)
	createBoxForTest(t, repo, "A7K2M9QT")
	claimant := uuid.New()

	box, err := repo.Claim(ctx, "A7K2M9QT", claimant)
	require.NoError(t, err)

	assert.True(t, box.IsClaimed)
	assert.Equal(t, entity.BoxStatusTransferred, box.Status)
	require.NotNil(t, box.OwnerID)
	assert.Equal(t, claimant, *box.OwnerID)
}

func TestBoxRepository_Claim_UnknownCode(t *testing.T) {
	ctx := context.Background()
	repo := newBoxRepoForTest(t)

	_, err := repo.Claim(ctx, "ZZZZZZZZ", uuid.New())
	assert.ErrorIs(t, err, repository.ErrBoxNotFound)
}

func TestBoxRepository_Claim_AlreadyClaimed(t *testing.T) {
	ctx := context.Background()
	repo := newBoxRepoForTest(t)
	createBoxForTest(t, repo, "A7K2M9QT")

	_, err := repo.Claim(ctx, "A7K2M9QT", uuid.New())
	require.NoError(t, err)

	_, err = repo.Claim(ctx, "A7K2M9QT", uuid.New())
	assert.ErrorIs(t, err, repository.ErrClaimConflict)
}

func TestBoxRepository_Claim_PendingTransferRefused(t *testing.T) {
	ctx := context.Background()
	repo := newBoxRepoForTest(t)
	box := createBoxForTest(t, repo, "A7K2M9QT")

	require.NoError(t, repo.SetPropertyCode(ctx, box.ID, "P3X9K2"))
	require.NoError(t, repo.MarkPendingTransfer(ctx, box.ID, time.Now()))

	// A transfer is in flight, so the claim-code path must refuse the box.
	_, err := repo.Claim(ctx, "A7K2M9QT", uuid.New())
	assert.ErrorIs(t, err, repository.ErrBoxStateConflict)

	reloaded, err := repo.FindBoxByID(ctx, box.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsClaimed)
	assert.Nil(t, reloaded.OwnerID)
	assert.Equal(t, entity.BoxStatusPendingTransfer, reloaded.Status)

	// The open request stays resolvable: the provider can still reject it,
	// after which the box becomes claimable again.
	require.NoError(t, repo.RevertPendingTransfer(ctx, box.ID))

	claimed, err := repo.Claim(ctx, "A7K2M9QT", uuid.New())
	require.NoError(t, err)
	assert.True(t, claimed.IsClaimed)
}

func TestBoxRepository_Claim_PendingTransferApprovalStillCompletes(t *testing.T) {
	ctx := context.Background()
	repo := newBoxRepoForTest(t)
	box := createBoxForTest(t, repo, "A7K2M9QT")
	requestor := uuid.New()

	require.NoError(t, repo.SetPropertyCode(ctx, box.ID, "P3X9K2"))
	require.NoError(t, repo.MarkPendingTransfer(ctx, box.ID, time.Now()))

	_, err := repo.Claim(ctx, "A7K2M9QT", uuid.New())
	assert.ErrorIs(t, err, repository.ErrBoxStateConflict)

	require.NoError(t, repo.CompleteTransfer(ctx, box.ID, requestor))

	reloaded, err := repo.FindBoxByID(ctx, box.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsClaimed)
	require.NotNil(t, reloaded.OwnerID)
	assert.Equal(t, requestor, *reloaded.OwnerID)
	assert.Nil(t, reloaded.PropertyCode)
}

func TestBoxRepository_CreateBox_DuplicateClaimCode(t *testing.T) {
	ctx := context.Background()
	repo := newBoxRepoForTest(t)
	createBoxForTest(t, repo, "A7K2M9QT")

	dup := &entity.SafeBox{
		Name:         "重複箱",
		Model:        "NS-100",
		SerialNumber: "SN-DUP",
		ProviderID:   uuid.New(),
		ClaimCode:    "A7K2M9QT",
		Status:       entity.BoxStatusAvailable,
	}

	err := repo.CreateBox(ctx, dup)
	assert.ErrorIs(t, err, repository.ErrDuplicateClaimCode)
}

func TestBoxRepository_SetPropertyCode_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := newBoxRepoForTest(t)
	first := createBoxForTest(t, repo, "A7K2M9QT")
	second := createBoxForTest(t, repo, "B8L3N0RU")

	require.NoError(t, repo.SetPropertyCode(ctx, first.ID, "P3X9K2"))

	err := repo.SetPropertyCode(ctx, second.ID, "P3X9K2")
	assert.ErrorIs(t, err, repository.ErrDuplicatePropertyCode)
}
