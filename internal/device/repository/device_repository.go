package repository

import (
	"errors"

	"worship-backend/internal/device/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeviceRepository defines the interface for device record operations
type DeviceRepository interface {
	// Save upserts a device record keyed by its token hash. Last write wins
	// when two registrations for the same token race.
	Save(device *domain.Device) error
	FindByTokenHash(tokenHash string) (*domain.Device, error)
	// FindEnabledByUserIDs returns enabled devices owned by any of the given
	// users. Callers chunk the id list to the store's "in" limit.
	FindEnabledByUserIDs(userIDs []string) ([]domain.Device, error)
}

// deviceRepository implements DeviceRepository interface
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates a new instance of deviceRepository
func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Save upserts the record: INSERT ... ON CONFLICT (token_hash) DO UPDATE
func (r *deviceRepository) Save(device *domain.Device) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token_hash"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "user_id", "role", "enabled", "preferences", "platform", "updated_at"}),
	}).Create(device).Error
}

func (r *deviceRepository) FindByTokenHash(tokenHash string) (*domain.Device, error) {
	var device domain.Device
	err := r.db.Where("token_hash = ?", tokenHash).First(&device).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepository) FindEnabledByUserIDs(userIDs []string) ([]domain.Device, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var devices []domain.Device
	err := r.db.Where("enabled = ? AND user_id IN ?", true, userIDs).Find(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}
