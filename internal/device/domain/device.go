package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Device represents one registered push target. The primary key is a one-way
// hash of the raw token, so re-registering the same physical token is an
// idempotent upsert and the key never leaks the token itself.
type Device struct {
	TokenHash   string          `json:"id" gorm:"primaryKey"`
	Token       string          `json:"-" gorm:"not null"` // Don't expose token in JSON
	UserID      string          `json:"user_id" gorm:"index;not null"`
	Role        string          `json:"role"` // Role hint captured at registration
	Enabled     bool            `json:"enabled" gorm:"index"`
	Preferences map[string]bool `json:"preferences" gorm:"type:jsonb;serializer:json"`
	Platform    string          `json:"platform"` // android, ios, web
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// HashToken derives the device key from a raw push token.
func HashToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}

// Allows reports whether this device accepts notifications of the given
// category. An absent category means allowed; only an explicit false opts out.
func (d *Device) Allows(category string) bool {
	if d.Preferences == nil {
		return true
	}
	allowed, ok := d.Preferences[category]
	if !ok {
		return true
	}
	return allowed
}
