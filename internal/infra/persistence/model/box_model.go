package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SafeBoxModel is the GORM-specific struct for the 'safe_boxes' table.
// The claim_code unique index spans every row, claimed or not, so a code
// can never be reissued once a box has carried it.
type SafeBoxModel struct {
	ID                  int64          `gorm:"primary_key;autoIncrement"`
	Name                string         `gorm:"type:varchar(255);not null"`
	Model               string         `gorm:"type:varchar(100);not null"`
	SerialNumber        string         `gorm:"type:varchar(100);not null"`
	ProviderID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	OwnerID             *uuid.UUID     `gorm:"type:uuid;index"`
	ClaimCode           string         `gorm:"type:char(8);not null;uniqueIndex"`
	PropertyCode        *string        `gorm:"type:char(6);uniqueIndex"`
	IsClaimed           bool           `gorm:"not null;default:false;index"`
	Status              string         `gorm:"type:varchar(30);not null;default:'available'"`
	CameraStreamURL     string         `gorm:"type:varchar(512)"`
	TransferRequestedAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SafeBoxModel) TableName() string {
	return "safe_boxes"
}
