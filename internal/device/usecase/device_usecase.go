package usecase

import (
	"fmt"
	"time"

	"worship-backend/internal/apperr"
	"worship-backend/internal/device/domain"
	"worship-backend/internal/device/repository"
)

// deviceUsecase implements DeviceUsecase interface
type deviceUsecase struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceUsecase creates a new instance of deviceUsecase
func NewDeviceUsecase(deviceRepo repository.DeviceRepository) DeviceUsecase {
	return &deviceUsecase{
		deviceRepo: deviceRepo,
	}
}

// Register upserts the device record for a raw token. The record is re-enabled
// on every call; CreatedAt survives from the first registration.
func (u *deviceUsecase) Register(input RegisterInput) (*domain.Device, error) {
	if input.Token == "" {
		return nil, fmt.Errorf("%w: token is required", apperr.ErrValidation)
	}
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperr.ErrValidation)
	}

	tokenHash := domain.HashToken(input.Token)
	existing, err := u.deviceRepo.FindByTokenHash(tokenHash)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	device := &domain.Device{
		TokenHash:   tokenHash,
		Token:       input.Token,
		UserID:      input.UserID,
		Role:        input.Role,
		Enabled:     true,
		Preferences: input.Preferences,
		Platform:    input.Platform,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Shallow merge against the stored record: supplied fields overwrite,
	// omitted fields keep their previous value.
	if existing != nil {
		device.CreatedAt = existing.CreatedAt
		if input.Role == "" {
			device.Role = existing.Role
		}
		if input.Preferences == nil {
			device.Preferences = existing.Preferences
		}
		if input.Platform == "" {
			device.Platform = existing.Platform
		}
	}

	if err := u.deviceRepo.Save(device); err != nil {
		return nil, err
	}
	return device, nil
}

// Unregister disables the device. Missing records are a no-op, not an error;
// the record is kept so a later registration restores its history.
func (u *deviceUsecase) Unregister(rawToken string) error {
	if rawToken == "" {
		return fmt.Errorf("%w: token is required", apperr.ErrValidation)
	}

	existing, err := u.deviceRepo.FindByTokenHash(domain.HashToken(rawToken))
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	existing.Enabled = false
	existing.UpdatedAt = time.Now()
	return u.deviceRepo.Save(existing)
}

// UpdatePreferences replaces the preference map (no deep merge across calls)
// and sets the enabled flag, defaulting to true unless explicitly false.
func (u *deviceUsecase) UpdatePreferences(input UpdatePreferencesInput) (*domain.Device, error) {
	if input.Token == "" {
		return nil, fmt.Errorf("%w: token is required", apperr.ErrValidation)
	}

	existing, err := u.deviceRepo.FindByTokenHash(domain.HashToken(input.Token))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: device is not registered", apperr.ErrValidation)
	}

	if input.Preferences != nil {
		existing.Preferences = input.Preferences
	}
	existing.Enabled = input.Enabled == nil || *input.Enabled
	existing.UpdatedAt = time.Now()

	if err := u.deviceRepo.Save(existing); err != nil {
		return nil, err
	}
	return existing, nil
}
