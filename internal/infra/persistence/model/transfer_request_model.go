package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransferRequestModel is the GORM-specific struct for the 'transfer_requests' table.
// It records a user's request to take over a box via its property code.
type TransferRequestModel struct {
	ID           int64          `gorm:"primary_key;autoIncrement"`
	BoxID        int64          `gorm:"not null;index"`
	RequestorID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	ProviderID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	PropertyCode string         `gorm:"type:char(6);not null"`
	Status       string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes        string         `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TransferRequestModel) TableName() string {
	return "transfer_requests"
}
