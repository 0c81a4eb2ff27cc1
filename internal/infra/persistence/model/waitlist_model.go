package model

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistEntryModel mirrors the 'waitlist_entries' table.
type WaitlistEntryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	Latitude    float64    `gorm:"not null"`
	Longitude   float64    `gorm:"not null"`
	CellTopic   string     `gorm:"type:varchar(64);not null;index"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	DeviceID    string     `gorm:"type:varchar(128)"`
	Contact     string     `gorm:"type:varchar(256)"`
	RequestedAt time.Time  `gorm:"not null"`
	ReceivedAt  time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (WaitlistEntryModel) TableName() string {
	return "waitlist_entries"
}
