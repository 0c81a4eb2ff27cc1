package model

import (
	"time"

	"github.com/google/uuid"
)

// ZoneModel is the GORM-specific struct for the 'delivery_zones' table.
// Boundary holds a GeoJSON Polygon geometry.
type ZoneModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	Region    string    `gorm:"type:varchar(255)"`
	Boundary  []byte    `gorm:"type:jsonb;not null"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ZoneModel) TableName() string {
	return "delivery_zones"
}
