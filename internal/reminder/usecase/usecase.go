package usecase

import "context"

// MonthlyScheduleSummary reports one monthly-schedule reminder run. A
// populated Skipped field is a successful no-op, not a failure.
type MonthlyScheduleSummary struct {
	TargetMonth string `json:"target_month"`
	Skipped     string `json:"skipped,omitempty"`
	Recipients  int    `json:"recipients"`
	Success     int    `json:"success"`
	Failure     int    `json:"failure"`
}

// ServiceReminderSummary reports a per-service reminder run, accumulating
// counts across every qualifying service on the target date.
type ServiceReminderSummary struct {
	TargetDate       string `json:"target_date"`
	CheckedServices  int    `json:"checked_services"`
	NotifiedServices int    `json:"notified_services"`
	Recipients       int    `json:"recipients"`
	Success          int    `json:"success"`
	Failure          int    `json:"failure"`
}

// ReminderUsecase holds the cron-triggered reminder jobs. Due-ness is always
// recomputed from the current date plus stored scheduling data, never from a
// persisted "already sent" flag, so every job is idempotent by construction.
type ReminderUsecase interface {
	// RunMonthlyScheduleReminder nudges admins to publish next month's
	// schedule when none exists within 7 days of the month start.
	RunMonthlyScheduleReminder(ctx context.Context) (*MonthlyScheduleSummary, error)
	// RunRepertoireReminder nudges worship leads whose upcoming service has
	// no songs yet.
	RunRepertoireReminder(ctx context.Context) (*ServiceReminderSummary, error)
	// RunUpcomingServiceReminder notifies everyone assigned in a schedule
	// about a service coming up on the target date.
	RunUpcomingServiceReminder(ctx context.Context) (*ServiceReminderSummary, error)
}
