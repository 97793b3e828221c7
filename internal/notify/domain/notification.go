package domain

// Category is the closed set of notification classes. It selects the message
// template for an event and keys per-device opt-outs.
type Category string

const (
	CategoryAssignment       Category = "assignment"
	CategoryRepertoireUpdate Category = "repertoire-update"
	CategoryAnnouncement     Category = "announcement"
	CategoryCatalog          Category = "catalog"
	CategoryMonthlySchedule  Category = "monthly-schedule"
	CategoryReminder         Category = "reminder"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAssignment, CategoryRepertoireUpdate, CategoryAnnouncement,
		CategoryCatalog, CategoryMonthlySchedule, CategoryReminder:
		return true
	}
	return false
}

// TargetMode selects how recipients are resolved.
type TargetMode string

const (
	// TargetAll resolves to every active user.
	TargetAll TargetMode = "all"
	// TargetRole resolves to active users with a given role.
	TargetRole TargetMode = "role"
	// TargetUsers uses the caller-supplied user id list verbatim. The list is
	// not validated against the user store; the caller's own authorization
	// check is the trust boundary.
	TargetUsers TargetMode = "users"
	// TargetLinkedPersons resolves to active users linked to any of the given
	// person ids from the scheduling domain.
	TargetLinkedPersons TargetMode = "linked-persons"
)

// Target is a polymorphic recipient spec; which fields matter depends on Mode.
type Target struct {
	Mode      TargetMode `json:"mode"`
	Role      string     `json:"role,omitempty"`
	UserIDs   []string   `json:"user_ids,omitempty"`
	PersonIDs []string   `json:"person_ids,omitempty"`
}

// EventKind is the closed set of domain events that trigger notifications.
type EventKind string

const (
	EventAssignmentChanged   EventKind = "assignment.changed"
	EventRepertoireUpdated   EventKind = "repertoire.updated"
	EventAnnouncementCreated EventKind = "announcement.created"
	EventSongAdded           EventKind = "song.added"
	EventSchedulePublished   EventKind = "schedule.published"
)

// Event is an inbound domain event to fan out as push notifications.
type Event struct {
	Kind      EventKind `json:"kind"`
	PersonIDs []string  `json:"person_ids,omitempty"` // Affected scheduling-domain persons, for person-targeted kinds
	Detail    string    `json:"detail,omitempty"`     // Interpolated into the message body when present
	Link      string    `json:"link,omitempty"`
}

// Summary is the aggregate outcome of one resolve-collect-dispatch pass.
type Summary struct {
	DispatchID string   `json:"dispatch_id"`
	Category   Category `json:"category"`
	Recipients int      `json:"recipients"`
	Tokens     int      `json:"tokens"`
	Success    int      `json:"success"`
	Failure    int      `json:"failure"`
}
