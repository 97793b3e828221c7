package domain

import "time"

// Role is the closed set of account roles. Authorization tiers map onto it:
// admin is the top level, manager the elevated tier, member the default.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// User is an account record owned by the user service; this backend only
// reads it to resolve notification recipients.
type User struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex"`
	Name           string    `json:"name"`
	Role           Role      `json:"role" gorm:"index"`
	Active         bool      `json:"active" gorm:"index"`
	LinkedPersonID string    `json:"linked_person_id" gorm:"index"` // Person entity in the scheduling domain, empty when not linked
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
