package domain

import (
	"time"
)

// Slot is a derived booking opportunity. Slots are computed on demand from a
// doctor's weekly pattern and are never persisted.
type Slot struct {
	Date           time.Time `json:"date"`
	Time           string    `json:"time"`
	DoctorID       int64     `json:"doctor_id"`
	DoctorName     string    `json:"doctor_name,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
}
