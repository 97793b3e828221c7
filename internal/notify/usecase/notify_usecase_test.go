package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worship-backend/internal/apperr"
	"worship-backend/internal/notify/domain"
	userdomain "worship-backend/internal/user/domain"
)

func TestPlanForEventUnknownKind(t *testing.T) {
	_, err := PlanForEvent(domain.Event{Kind: "smoke.signals"})
	assert.ErrorIs(t, err, apperr.ErrUnsupportedEvent)
}

func TestPlanForEventAssignmentChanged(t *testing.T) {
	plan, err := PlanForEvent(domain.Event{
		Kind:      domain.EventAssignmentChanged,
		PersonIDs: []string{"p1"},
		Detail:    "Sunday service moved to 11am.",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TargetLinkedPersons, plan.Target.Mode)
	assert.Equal(t, []string{"p1"}, plan.Target.PersonIDs)
	assert.Equal(t, domain.CategoryAssignment, plan.Category)
	assert.Contains(t, plan.Body, "Sunday service moved to 11am.")
}

func TestPlanForEventRequiresPersonIDs(t *testing.T) {
	_, err := PlanForEvent(domain.Event{Kind: domain.EventAssignmentChanged})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestPlanForEventBroadcastKinds(t *testing.T) {
	for kind, category := range map[domain.EventKind]domain.Category{
		domain.EventAnnouncementCreated: domain.CategoryAnnouncement,
		domain.EventSongAdded:           domain.CategoryCatalog,
		domain.EventSchedulePublished:   domain.CategoryMonthlySchedule,
	} {
		plan, err := PlanForEvent(domain.Event{Kind: kind})
		require.NoError(t, err)
		assert.Equal(t, domain.TargetAll, plan.Target.Mode)
		assert.Equal(t, category, plan.Category)
	}
}

func newTestNotifyUsecase(userRepo *fakeUserRepo, deviceRepo *fakeDeviceRepo, sender *fakeSender) NotifyUsecase {
	return NewNotifyUsecase(
		NewResolver(userRepo, userdomain.RoleMember),
		NewCollector(deviceRepo),
		NewDispatcher(sender, "https://worship.example.com"),
	)
}

func TestEmitEventResolvesAndDispatches(t *testing.T) {
	userRepo := &fakeUserRepo{users: []userdomain.User{
		{ID: "u1", Active: true, LinkedPersonID: "p1"},
		{ID: "u2", Active: true, LinkedPersonID: "p2"},
		{ID: "u3", Active: false, LinkedPersonID: "p3"},
	}}
	deviceRepo := &fakeDeviceRepo{}
	deviceRepo.devices = append(deviceRepo.devices,
		device("tok1", "u1", nil),
		device("tok2", "u2", nil),
	)
	sender := &fakeSender{}
	u := newTestNotifyUsecase(userRepo, deviceRepo, sender)

	summary, err := u.EmitEvent(context.Background(), domain.Event{
		Kind:      domain.EventAssignmentChanged,
		PersonIDs: []string{"p1", "p2", "p3"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Recipients)
	assert.Equal(t, 2, summary.Tokens)
	assert.Equal(t, 2, summary.Success)
	assert.Equal(t, 0, summary.Failure)
	assert.Equal(t, domain.CategoryAssignment, summary.Category)
	assert.Equal(t, 1, sender.calls)
}

func TestEmitEventNoRecipientsIsNoop(t *testing.T) {
	sender := &fakeSender{}
	u := newTestNotifyUsecase(&fakeUserRepo{}, &fakeDeviceRepo{}, sender)

	summary, err := u.EmitEvent(context.Background(), domain.Event{
		Kind:      domain.EventAssignmentChanged,
		PersonIDs: []string{"p1"},
	})
	require.NoError(t, err)
	assert.Zero(t, summary.Recipients)
	assert.Zero(t, summary.Success)
	assert.Zero(t, sender.calls)
}

func TestAdminSendValidation(t *testing.T) {
	u := newTestNotifyUsecase(&fakeUserRepo{}, &fakeDeviceRepo{}, &fakeSender{})

	_, err := u.AdminSend(context.Background(), AdminSendInput{
		Target:   domain.Target{Mode: domain.TargetAll},
		Category: domain.CategoryAnnouncement,
		Body:     "no title",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = u.AdminSend(context.Background(), AdminSendInput{
		Target:   domain.Target{Mode: domain.TargetAll},
		Category: "pigeon-post",
		Title:    "Title",
		Body:     "Body",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAdminSendExplicitUsers(t *testing.T) {
	deviceRepo := &fakeDeviceRepo{}
	deviceRepo.devices = append(deviceRepo.devices, device("tok1", "u1", nil))
	sender := &fakeSender{}
	u := newTestNotifyUsecase(&fakeUserRepo{}, deviceRepo, sender)

	summary, err := u.AdminSend(context.Background(), AdminSendInput{
		Target:   domain.Target{Mode: domain.TargetUsers, UserIDs: []string{"u1"}},
		Category: domain.CategoryAnnouncement,
		Title:    "Service moved",
		Body:     "This week we meet at the chapel.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Recipients)
	assert.Equal(t, 1, summary.Success)
}
