package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	notifydomain "worship-backend/internal/notify/domain"
	notifyusecase "worship-backend/internal/notify/usecase"
	scheduledomain "worship-backend/internal/schedule/domain"
	schedulerepo "worship-backend/internal/schedule/repository"
	userdomain "worship-backend/internal/user/domain"
	"worship-backend/pkg/config"
)

// monthlyWindowDays is how many days before the month start the
// monthly-schedule reminder becomes eligible.
const monthlyWindowDays = 7

const dateFormat = "2006-01-02"

// reminderUsecase implements ReminderUsecase interface
type reminderUsecase struct {
	scheduleRepo schedulerepo.ScheduleRepository
	resolver     *notifyusecase.Resolver
	collector    *notifyusecase.Collector
	dispatcher   *notifyusecase.Dispatcher
	cfg          *config.Config
	now          func() time.Time
}

// NewReminderUsecase creates a new instance of reminderUsecase
func NewReminderUsecase(scheduleRepo schedulerepo.ScheduleRepository, resolver *notifyusecase.Resolver, collector *notifyusecase.Collector, dispatcher *notifyusecase.Dispatcher, cfg *config.Config) ReminderUsecase {
	return &reminderUsecase{
		scheduleRepo: scheduleRepo,
		resolver:     resolver,
		collector:    collector,
		dispatcher:   dispatcher,
		cfg:          cfg,
		now:          time.Now,
	}
}

func (u *reminderUsecase) RunMonthlyScheduleReminder(ctx context.Context) (*MonthlyScheduleSummary, error) {
	now := u.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	targetMonth := monthStart.Format(scheduledomain.MonthFormat)

	summary := &MonthlyScheduleSummary{TargetMonth: targetMonth}

	if now.Before(monthStart.AddDate(0, 0, -monthlyWindowDays)) {
		summary.Skipped = "outside reminder window"
		return summary, nil
	}

	exists, err := u.scheduleRepo.ScheduleExistsForMonth(targetMonth)
	if err != nil {
		return nil, err
	}
	if exists {
		summary.Skipped = "schedule already exists"
		return summary, nil
	}

	userIDs, err := u.resolver.Resolve(notifydomain.Target{
		Mode: notifydomain.TargetRole,
		Role: string(userdomain.RoleAdmin),
	})
	if err != nil {
		return nil, err
	}

	tokens, err := u.collector.CollectTokens(userIDs, notifydomain.CategoryMonthlySchedule)
	if err != nil {
		return nil, err
	}

	title := "Monthly schedule reminder"
	body := fmt.Sprintf("The schedule for %s has not been published yet.", targetMonth)
	outcome, err := u.dispatcher.Dispatch(ctx, tokens, title, body, "", notifydomain.CategoryMonthlySchedule)
	if err != nil {
		return nil, err
	}

	log.Printf("[Reminder] Monthly schedule %s: recipients=%d success=%d failure=%d", targetMonth, len(userIDs), outcome.Success, outcome.Failure)

	summary.Recipients = len(userIDs)
	summary.Success = outcome.Success
	summary.Failure = outcome.Failure
	return summary, nil
}

// RunRepertoireReminder checks every service on today+RepertoireReminderDays.
// A service with any songs is already handled and is skipped entirely. A
// dispatch failure aborts the remaining loop; earlier sends stand.
func (u *reminderUsecase) RunRepertoireReminder(ctx context.Context) (*ServiceReminderSummary, error) {
	targetDate := u.now().AddDate(0, 0, u.cfg.RepertoireReminderDays)
	summary := &ServiceReminderSummary{TargetDate: targetDate.Format(dateFormat)}

	services, err := u.scheduleRepo.FindServicesOnDate(targetDate)
	if err != nil {
		return nil, err
	}
	summary.CheckedServices = len(services)

	for _, service := range services {
		songCount, err := u.scheduleRepo.CountSongsByService(service.ID)
		if err != nil {
			return nil, err
		}
		if songCount > 0 {
			continue
		}

		userIDs, err := u.resolveRepertoireRecipients(service)
		if err != nil {
			return nil, err
		}
		if len(userIDs) == 0 {
			continue
		}

		tokens, err := u.collector.CollectTokens(userIDs, notifydomain.CategoryReminder)
		if err != nil {
			return nil, err
		}

		title := "Repertoire reminder"
		body := fmt.Sprintf("No songs have been added for the service on %s yet.", service.ServiceDate.Format(dateFormat))
		outcome, err := u.dispatcher.Dispatch(ctx, tokens, title, body, "", notifydomain.CategoryReminder)
		if err != nil {
			return nil, err
		}

		summary.NotifiedServices++
		summary.Recipients += len(userIDs)
		summary.Success += outcome.Success
		summary.Failure += outcome.Failure
	}

	log.Printf("[Reminder] Repertoire %s: checked=%d notified=%d recipients=%d", summary.TargetDate, summary.CheckedServices, summary.NotifiedServices, summary.Recipients)
	return summary, nil
}

// resolveRepertoireRecipients targets the service's worship lead via the
// person link, falling back to all active managers when no lead is assigned
// or the assigned lead has no linked account.
func (u *reminderUsecase) resolveRepertoireRecipients(service scheduledomain.Service) ([]string, error) {
	assignments, err := u.scheduleRepo.FindAssignmentsByService(service.ID)
	if err != nil {
		return nil, err
	}

	var leadPersonIDs []string
	for _, a := range assignments {
		if a.Position == u.cfg.WorshipLeadPosition {
			leadPersonIDs = append(leadPersonIDs, a.PersonID)
		}
	}

	if len(leadPersonIDs) > 0 {
		userIDs, err := u.resolver.Resolve(notifydomain.Target{
			Mode:      notifydomain.TargetLinkedPersons,
			PersonIDs: leadPersonIDs,
		})
		if err != nil {
			return nil, err
		}
		if len(userIDs) > 0 {
			return userIDs, nil
		}
	}

	return u.resolver.Resolve(notifydomain.Target{
		Mode: notifydomain.TargetRole,
		Role: string(userdomain.RoleManager),
	})
}

// RunUpcomingServiceReminder notifies every person assigned in the month's
// schedule about a service on today+UpcomingReminderDays. Services without a
// resolvable schedule or without recipients are skipped, not errors.
func (u *reminderUsecase) RunUpcomingServiceReminder(ctx context.Context) (*ServiceReminderSummary, error) {
	targetDate := u.now().AddDate(0, 0, u.cfg.UpcomingReminderDays)
	summary := &ServiceReminderSummary{TargetDate: targetDate.Format(dateFormat)}

	services, err := u.scheduleRepo.FindServicesOnDate(targetDate)
	if err != nil {
		return nil, err
	}
	summary.CheckedServices = len(services)

	for _, service := range services {
		if service.ScheduleID == "" {
			continue
		}
		schedule, err := u.scheduleRepo.FindScheduleByID(service.ScheduleID)
		if err != nil {
			return nil, err
		}
		if schedule == nil {
			continue
		}

		assignments, err := u.scheduleRepo.FindAssignmentsBySchedule(schedule.ID)
		if err != nil {
			return nil, err
		}
		var personIDs []string
		for _, a := range assignments {
			personIDs = append(personIDs, a.PersonID)
		}

		userIDs, err := u.resolver.Resolve(notifydomain.Target{
			Mode:      notifydomain.TargetLinkedPersons,
			PersonIDs: personIDs,
		})
		if err != nil {
			return nil, err
		}
		if len(userIDs) == 0 {
			continue
		}

		tokens, err := u.collector.CollectTokens(userIDs, notifydomain.CategoryReminder)
		if err != nil {
			return nil, err
		}

		title := "Upcoming service"
		body := fmt.Sprintf("You are scheduled for the service on %s.", service.ServiceDate.Format(dateFormat))
		outcome, err := u.dispatcher.Dispatch(ctx, tokens, title, body, "", notifydomain.CategoryReminder)
		if err != nil {
			return nil, err
		}

		summary.NotifiedServices++
		summary.Recipients += len(userIDs)
		summary.Success += outcome.Success
		summary.Failure += outcome.Failure
	}

	log.Printf("[Reminder] Upcoming service %s: checked=%d notified=%d recipients=%d", summary.TargetDate, summary.CheckedServices, summary.NotifiedServices, summary.Recipients)
	return summary, nil
}
