package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"neosafe/internal/domain/entity"
	"neosafe/internal/domain/repository"
	"neosafe/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrDeviceNotFound is returned when a push target is not registered
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceUnauthorized is returned when a user touches a push target they don't own
	ErrDeviceUnauthorized = errors.New("unauthorized to access this device")
)

// deviceService manages the mobile devices that receive box-event pushes.
// The box worker fans claim, transfer, and unlock events out to the active
// devices registered here.
type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice enrolls a device as a box-event push target. Re-registering
// a known device rotates its FCM token instead of creating a duplicate, so
// reinstalls do not multiply fan-out targets.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by user: %w", err)
	}

	for _, device := range devices {
		if device.DeviceID == deviceInfo.DeviceID {
			if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
				return nil, fmt.Errorf("failed to update FCM token: %w", err)
			}

			updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to find device by ID: %w", err)
			}

			return updatedDevice, nil
		}
	}

	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	return device, nil
}

// UpdateFCMToken rotates the push token of one of the user's own devices.
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}

	return nil
}

// GetUserDevices retrieves the user's devices currently eligible for
// box-event pushes.
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active devices by user: %w", err)
	}

	return devices, nil
}

// DeactivateDevice removes a device from the fan-out set (soft delete).
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}

	return nil
}

// ownedDevice loads a device and verifies it belongs to the user. Mutations
// on push targets are owner-only.
func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, ErrDeviceNotFound
		}

		return nil, fmt.Errorf("failed to find device by ID: %w", err)
	}

	if device.UserID != userID {
		return nil, ErrDeviceUnauthorized
	}

	return device, nil
}
