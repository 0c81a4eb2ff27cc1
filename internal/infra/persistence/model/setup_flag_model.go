package model

import "time"

// SetupFlagModel mirrors the 'setup_flags' table. A row exists once an identity
// has completed location gating.
type SetupFlagModel struct {
	IdentityKey string    `gorm:"type:varchar(300);primary_key"`
	CompletedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SetupFlagModel) TableName() string {
	return "setup_flags"
}
