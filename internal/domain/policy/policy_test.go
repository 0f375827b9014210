package policy

import (
	"testing"

	"neosafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccessMatrix(t *testing.T) {
	providerID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	unclaimed := &entity.SafeBox{
		ID:         1,
		ProviderID: providerID,
		Status:     entity.BoxStatusAvailable,
	}
	claimed := &entity.SafeBox{
		ID:         2,
		ProviderID: providerID,
		OwnerID:    &ownerID,
		IsClaimed:  true,
		Status:     entity.BoxStatusTransferred,
	}

	admin := entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}
	provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}
	otherProvider := entity.Principal{ID: uuid.New(), Role: entity.RoleProvider}
	owner := entity.Principal{ID: ownerID, Role: entity.RoleUser}
	stranger := entity.Principal{ID: strangerID, Role: entity.RoleUser}

	tests := []struct {
		name      string
		principal entity.Principal
		box       *entity.SafeBox
		view      bool
		modify    bool
		unlock    bool
	}{
		{"admin on unclaimed", admin, unclaimed, true, true, false},
		{"admin on claimed", admin, claimed, false, false, false},
		{"provider on own unclaimed", provider, unclaimed, true, true, false},
		{"provider on own claimed", provider, claimed, false, false, false},
		{"other provider on unclaimed", otherProvider, unclaimed, false, false, false},
		{"owner on own claimed", owner, claimed, true, false, true},
		{"owner on unclaimed", owner, unclaimed, false, false, false},
		{"stranger on claimed", stranger, claimed, false, false, false},
		{"stranger on unclaimed", stranger, unclaimed, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.view, CanView(tt.principal, tt.box), "CanView")
			assert.Equal(t, tt.modify, CanModify(tt.principal, tt.box), "CanModify")
			assert.Equal(t, tt.unlock, CanUnlock(tt.principal, tt.box), "CanUnlock")
		})
	}
}

func TestDecide(t *testing.T) {
	providerID := uuid.New()
	provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}
	box := &entity.SafeBox{ID: 1, ProviderID: providerID, Status: entity.BoxStatusAvailable}

	assert.True(t, Decide(provider, box, OperationView))
	assert.True(t, Decide(provider, box, OperationModify))
	assert.False(t, Decide(provider, box, Operation("export")))
}

func TestVisibilityFlipsAfterClaim(t *testing.T) {
	providerID := uuid.New()
	ownerID := uuid.New()
	provider := entity.Principal{ID: providerID, Role: entity.RoleProvider}
	owner := entity.Principal{ID: ownerID, Role: entity.RoleUser}

	box := &entity.SafeBox{
		ID:         1,
		ProviderID: providerID,
		Status:     entity.BoxStatusAvailable,
	}

	assert.True(t, CanView(provider, box))
	assert.False(t, CanView(owner, box))

	box.OwnerID = &ownerID
	box.IsClaimed = true
	box.Status = entity.BoxStatusTransferred

	assert.False(t, CanView(provider, box))
	assert.True(t, CanView(owner, box))
	assert.True(t, CanUnlock(owner, box))
}

func TestUnknownRoleDeniedEverywhere(t *testing.T) {
	nobody := entity.Principal{ID: uuid.New(), Role: entity.Role("service")}
	box := &entity.SafeBox{ID: 1, ProviderID: uuid.New(), Status: entity.BoxStatusAvailable}

	assert.False(t, CanView(nobody, box))
	assert.False(t, CanModify(nobody, box))
	assert.False(t, CanUnlock(nobody, box))
}
