package usecase

import (
	"context"

	devicedomain "worship-backend/internal/device/domain"
	userdomain "worship-backend/internal/user/domain"
	"worship-backend/pkg/fcm"
)

type fakeUserRepo struct {
	users       []userdomain.User
	linkedCalls [][]string
}

func (f *fakeUserRepo) FindActive() ([]userdomain.User, error) {
	var out []userdomain.User
	for _, u := range f.users {
		if u.Active {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindActiveByRole(role userdomain.Role) ([]userdomain.User, error) {
	var out []userdomain.User
	for _, u := range f.users {
		if u.Active && u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindActiveByLinkedPersonIDs(personIDs []string) ([]userdomain.User, error) {
	f.linkedCalls = append(f.linkedCalls, personIDs)
	var out []userdomain.User
	for _, u := range f.users {
		if !u.Active || u.LinkedPersonID == "" {
			continue
		}
		for _, id := range personIDs {
			if u.LinkedPersonID == id {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

type fakeDeviceRepo struct {
	devices []devicedomain.Device
	calls   [][]string
}

func (f *fakeDeviceRepo) Save(device *devicedomain.Device) error {
	f.devices = append(f.devices, *device)
	return nil
}

func (f *fakeDeviceRepo) FindByTokenHash(tokenHash string) (*devicedomain.Device, error) {
	for _, d := range f.devices {
		if d.TokenHash == tokenHash {
			copied := d
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDeviceRepo) FindEnabledByUserIDs(userIDs []string) ([]devicedomain.Device, error) {
	f.calls = append(f.calls, userIDs)
	var out []devicedomain.Device
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

func device(token, userID string, prefs map[string]bool) devicedomain.Device {
	return devicedomain.Device{
		TokenHash:   devicedomain.HashToken(token),
		Token:       token,
		UserID:      userID,
		Enabled:     true,
		Preferences: prefs,
	}
}

type fakeSender struct {
	calls            int
	lastTokens       []string
	lastNotification fcm.Notification
	result           fcm.Result
	err              error
}

func (f *fakeSender) SendMulticast(_ context.Context, tokens []string, notification fcm.Notification) (fcm.Result, error) {
	f.calls++
	f.lastTokens = tokens
	f.lastNotification = notification
	if f.err != nil {
		return fcm.Result{}, f.err
	}
	if f.result == (fcm.Result{}) {
		return fcm.Result{Success: len(tokens)}, nil
	}
	return f.result, nil
}
