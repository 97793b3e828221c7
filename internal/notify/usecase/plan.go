package usecase

import (
	"fmt"

	"worship-backend/internal/apperr"
	"worship-backend/internal/notify/domain"
)

// Plan is the notification recipe an event resolves to: whom to target, the
// category gating device opt-outs, and the message to send.
type Plan struct {
	Target   domain.Target
	Category domain.Category
	Title    string
	Body     string
}

// PlanForEvent maps an event to its notification plan. The mapping is total
// over the known event kinds; anything else fails with ErrUnsupportedEvent so
// a newly added kind without a handler is caught instead of silently dropped.
func PlanForEvent(event domain.Event) (Plan, error) {
	switch event.Kind {
	case domain.EventAssignmentChanged:
		if len(event.PersonIDs) == 0 {
			return Plan{}, fmt.Errorf("%w: assignment.changed requires person ids", apperr.ErrValidation)
		}
		return Plan{
			Target:   domain.Target{Mode: domain.TargetLinkedPersons, PersonIDs: event.PersonIDs},
			Category: domain.CategoryAssignment,
			Title:    "Assignment updated",
			Body:     withDetail("Your service assignment has changed.", event.Detail),
		}, nil

	case domain.EventRepertoireUpdated:
		if len(event.PersonIDs) == 0 {
			return Plan{}, fmt.Errorf("%w: repertoire.updated requires person ids", apperr.ErrValidation)
		}
		return Plan{
			Target:   domain.Target{Mode: domain.TargetLinkedPersons, PersonIDs: event.PersonIDs},
			Category: domain.CategoryRepertoireUpdate,
			Title:    "Repertoire updated",
			Body:     withDetail("The song list for your service has changed.", event.Detail),
		}, nil

	case domain.EventAnnouncementCreated:
		return Plan{
			Target:   domain.Target{Mode: domain.TargetAll},
			Category: domain.CategoryAnnouncement,
			Title:    "New announcement",
			Body:     withDetail("A new announcement has been posted.", event.Detail),
		}, nil

	case domain.EventSongAdded:
		return Plan{
			Target:   domain.Target{Mode: domain.TargetAll},
			Category: domain.CategoryCatalog,
			Title:    "New song added",
			Body:     withDetail("A new song is available in the catalog.", event.Detail),
		}, nil

	case domain.EventSchedulePublished:
		return Plan{
			Target:   domain.Target{Mode: domain.TargetAll},
			Category: domain.CategoryMonthlySchedule,
			Title:    "Monthly schedule published",
			Body:     withDetail("The schedule for the upcoming month is out.", event.Detail),
		}, nil

	default:
		return Plan{}, fmt.Errorf("%w: %q", apperr.ErrUnsupportedEvent, event.Kind)
	}
}

func withDetail(base, detail string) string {
	if detail == "" {
		return base
	}
	return fmt.Sprintf("%s %s", base, detail)
}
