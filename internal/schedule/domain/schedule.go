package domain

import "time"

// MonthFormat is the layout for schedule month keys, e.g. "2026-03".
const MonthFormat = "2006-01"

// Schedule is one month's service plan, owned by the scheduling service.
// This backend reads it only to derive reminder eligibility.
type Schedule struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Month     string    `json:"month" gorm:"uniqueIndex"` // MonthFormat key
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Service is a single dated service within a schedule.
type Service struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	ScheduleID  string    `json:"schedule_id" gorm:"index"`
	ServiceDate time.Time `json:"service_date" gorm:"index"`
	Title       string    `json:"title"`
}

// Assignment places a person in a position for a service.
type Assignment struct {
	ID         string `json:"id" gorm:"primaryKey"`
	ScheduleID string `json:"schedule_id" gorm:"index"`
	ServiceID  string `json:"service_id" gorm:"index"`
	PersonID   string `json:"person_id" gorm:"index"`
	Position   string `json:"position"` // e.g. worship-lead, vocals, keys
}

// Song is one repertoire entry for a service.
type Song struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ServiceID string    `json:"service_id" gorm:"index"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	CreatedAt time.Time `json:"created_at"`
}
