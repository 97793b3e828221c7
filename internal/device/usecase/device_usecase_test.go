package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worship-backend/internal/apperr"
	"worship-backend/internal/device/domain"
)

// fakeDeviceRepo keeps device records in memory, keyed by token hash.
type fakeDeviceRepo struct {
	devices map[string]domain.Device
}

func newFakeDeviceRepo() *fakeDeviceRepo {
	return &fakeDeviceRepo{devices: make(map[string]domain.Device)}
}

func (f *fakeDeviceRepo) Save(device *domain.Device) error {
	f.devices[device.TokenHash] = *device
	return nil
}

func (f *fakeDeviceRepo) FindByTokenHash(tokenHash string) (*domain.Device, error) {
	if d, ok := f.devices[tokenHash]; ok {
		copied := d
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeDeviceRepo) FindEnabledByUserIDs(userIDs []string) ([]domain.Device, error) {
	var out []domain.Device
	for _, d := range f.devices {
		if !d.Enabled {
			continue
		}
		for _, id := range userIDs {
			if d.UserID == id {
				out = append(out, d)
				break
			}
		}
	}
	return out, nil
}

func TestRegisterRequiresToken(t *testing.T) {
	u := NewDeviceUsecase(newFakeDeviceRepo())

	_, err := u.Register(RegisterInput{UserID: "u1"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRegisterRequiresUserID(t *testing.T) {
	u := NewDeviceUsecase(newFakeDeviceRepo())

	_, err := u.Register(RegisterInput{Token: "tok-1"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRegisterIsIdempotent(t *testing.T) {
	repo := newFakeDeviceRepo()
	u := NewDeviceUsecase(repo)

	first, err := u.Register(RegisterInput{Token: "tok-1", UserID: "u1", Platform: "web"})
	require.NoError(t, err)

	second, err := u.Register(RegisterInput{Token: "tok-1", UserID: "u1"})
	require.NoError(t, err)

	// Same raw token always derives the same key; one record total.
	assert.Equal(t, first.TokenHash, second.TokenHash)
	assert.Len(t, repo.devices, 1)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	// Omitted fields keep their previous values.
	assert.Equal(t, "web", second.Platform)
	assert.True(t, second.Enabled)
}

func TestRegisterReenablesDisabledDevice(t *testing.T) {
	repo := newFakeDeviceRepo()
	u := NewDeviceUsecase(repo)

	_, err := u.Register(RegisterInput{Token: "tok-1", UserID: "u1"})
	require.NoError(t, err)
	require.NoError(t, u.Unregister("tok-1"))

	device, err := u.Register(RegisterInput{Token: "tok-1", UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, device.Enabled)
}

func TestUnregisterMissingDeviceIsNoop(t *testing.T) {
	u := NewDeviceUsecase(newFakeDeviceRepo())

	assert.NoError(t, u.Unregister("never-registered"))
}

func TestUnregisterDisablesDevice(t *testing.T) {
	repo := newFakeDeviceRepo()
	u := NewDeviceUsecase(repo)

	_, err := u.Register(RegisterInput{Token: "tok-1", UserID: "u1"})
	require.NoError(t, err)
	require.NoError(t, u.Unregister("tok-1"))

	stored := repo.devices[domain.HashToken("tok-1")]
	assert.False(t, stored.Enabled)
}

func TestUpdatePreferencesReplacesMap(t *testing.T) {
	repo := newFakeDeviceRepo()
	u := NewDeviceUsecase(repo)

	_, err := u.Register(RegisterInput{
		Token:       "tok-1",
		UserID:      "u1",
		Preferences: map[string]bool{"assignment": false, "catalog": true},
	})
	require.NoError(t, err)

	device, err := u.UpdatePreferences(UpdatePreferencesInput{
		Token:       "tok-1",
		Preferences: map[string]bool{"announcement": false},
	})
	require.NoError(t, err)

	// Replaced wholesale, not deep-merged.
	assert.Equal(t, map[string]bool{"announcement": false}, device.Preferences)
	assert.True(t, device.Enabled)
}

func TestUpdatePreferencesEnabledDefaultsTrue(t *testing.T) {
	repo := newFakeDeviceRepo()
	u := NewDeviceUsecase(repo)

	_, err := u.Register(RegisterInput{Token: "tok-1", UserID: "u1"})
	require.NoError(t, err)
	require.NoError(t, u.Unregister("tok-1"))

	device, err := u.UpdatePreferences(UpdatePreferencesInput{Token: "tok-1"})
	require.NoError(t, err)
	assert.True(t, device.Enabled)

	disabled := false
	device, err = u.UpdatePreferences(UpdatePreferencesInput{Token: "tok-1", Enabled: &disabled})
	require.NoError(t, err)
	assert.False(t, device.Enabled)
}

func TestUpdatePreferencesUnknownDevice(t *testing.T) {
	u := NewDeviceUsecase(newFakeDeviceRepo())

	_, err := u.UpdatePreferences(UpdatePreferencesInput{Token: "never-registered"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
