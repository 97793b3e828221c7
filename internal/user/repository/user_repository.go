package repository

import (
	"worship-backend/internal/user/domain"

	"gorm.io/gorm"
)

// UserRepository is the read-only view of the users collection this backend
// needs for recipient resolution.
type UserRepository interface {
	FindActive() ([]domain.User, error)
	FindActiveByRole(role domain.Role) ([]domain.User, error)
	// FindActiveByLinkedPersonIDs looks up active users linked to any of the
	// given person ids. Callers chunk the id list to the store's "in" limit.
	FindActiveByLinkedPersonIDs(personIDs []string) ([]domain.User, error)
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) FindActive() ([]domain.User, error) {
	var users []domain.User
	err := r.db.Where("active = ?", true).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindActiveByRole(role domain.Role) ([]domain.User, error) {
	var users []domain.User
	err := r.db.Where("active = ? AND role = ?", true, role).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindActiveByLinkedPersonIDs(personIDs []string) ([]domain.User, error) {
	if len(personIDs) == 0 {
		return nil, nil
	}
	var users []domain.User
	err := r.db.Where("active = ? AND linked_person_id IN ?", true, personIDs).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
