package usecase

import "worship-backend/internal/device/domain"

// RegisterInput carries the fields accepted at device registration.
type RegisterInput struct {
	Token       string
	UserID      string
	Role        string
	Preferences map[string]bool
	Platform    string
}

// UpdatePreferencesInput carries a preference update. Preferences replaces the
// stored map wholesale when non-nil; Enabled defaults to true when omitted.
type UpdatePreferencesInput struct {
	Token       string
	Preferences map[string]bool
	Enabled     *bool
}

// DeviceUsecase is the device registry: token lifecycle and preference gating
// state. All operations are idempotent upserts keyed by the token hash.
type DeviceUsecase interface {
	Register(input RegisterInput) (*domain.Device, error)
	Unregister(rawToken string) error
	UpdatePreferences(input UpdatePreferencesInput) (*domain.Device, error)
}
