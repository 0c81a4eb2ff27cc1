package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedAddressModel is the GORM-specific struct for the 'saved_addresses' table.
// The partial unique index keeps at most one default address per owner.
type SavedAddressModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerKey   string     `gorm:"type:varchar(300);not null;index:idx_saved_addresses_on_owner;uniqueIndex:idx_saved_addresses_one_default,where:is_default"`
	UserID     *uuid.UUID `gorm:"type:uuid"`
	DeviceID   string     `gorm:"type:varchar(255)"`
	Lines      []string   `gorm:"type:jsonb;serializer:json;not null"`
	City       string     `gorm:"type:varchar(120)"`
	State      string     `gorm:"type:varchar(120)"`
	PostalCode string     `gorm:"type:varchar(20)"`
	Country    string     `gorm:"type:varchar(80)"`
	Latitude   *float64   `gorm:"type:decimal(10,8)"`
	Longitude  *float64   `gorm:"type:decimal(11,8)"`
	Label      string     `gorm:"type:varchar(20)"`
	IsDefault  bool       `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedAddressModel) TableName() string {
	return "saved_addresses"
}
