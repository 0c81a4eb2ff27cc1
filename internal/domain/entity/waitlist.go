package entity

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistEntry is a recorded "notify me when you deliver here" request.
type WaitlistEntry struct {
	ID          uuid.UUID
	Latitude    float64
	Longitude   float64
	CellTopic   string
	UserID      *uuid.UUID
	DeviceID    string
	Contact     string
	RequestedAt time.Time
	ReceivedAt  time.Time
}

// CellDemand is the number of waitlist entries in one broadcast cell.
type CellDemand struct {
	CellTopic string
	Entries   int64
}
