package repository

import (
	"errors"
	"time"

	"worship-backend/internal/schedule/domain"

	"gorm.io/gorm"
)

// ScheduleRepository is the read-only view of scheduling data used to derive
// reminder eligibility. Writes happen in the scheduling service, not here.
type ScheduleRepository interface {
	ScheduleExistsForMonth(month string) (bool, error)
	FindScheduleByID(id string) (*domain.Schedule, error)
	FindServicesOnDate(date time.Time) ([]domain.Service, error)
	CountSongsByService(serviceID string) (int64, error)
	FindAssignmentsByService(serviceID string) ([]domain.Assignment, error)
	FindAssignmentsBySchedule(scheduleID string) ([]domain.Assignment, error)
}

// scheduleRepository implements ScheduleRepository interface
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new instance of scheduleRepository
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

func (r *scheduleRepository) ScheduleExistsForMonth(month string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Schedule{}).Where("month = ?", month).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *scheduleRepository) FindScheduleByID(id string) (*domain.Schedule, error) {
	var schedule domain.Schedule
	err := r.db.Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

// FindServicesOnDate matches on the calendar day, ignoring time of day.
func (r *scheduleRepository) FindServicesOnDate(date time.Time) ([]domain.Service, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var services []domain.Service
	err := r.db.Where("service_date >= ? AND service_date < ?", dayStart, dayEnd).Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *scheduleRepository) CountSongsByService(serviceID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Song{}).Where("service_id = ?", serviceID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *scheduleRepository) FindAssignmentsByService(serviceID string) ([]domain.Assignment, error) {
	var assignments []domain.Assignment
	err := r.db.Where("service_id = ?", serviceID).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *scheduleRepository) FindAssignmentsBySchedule(scheduleID string) ([]domain.Assignment, error) {
	var assignments []domain.Assignment
	err := r.db.Where("schedule_id = ?", scheduleID).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}
