package domain

import (
	"time"
)

type Room struct {
	ID        int64     `json:"id"`
	Number    string    `json:"number"`
	Name      *string   `json:"name"`
	Floor     *int      `json:"floor"`
	Equipment *string   `json:"equipment"`
	Capacity  int       `json:"capacity"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateRoomDTO struct {
	Number    string  `json:"number" binding:"required"`
	Name      *string `json:"name"`
	Floor     *int    `json:"floor"`
	Equipment *string `json:"equipment"`
	Capacity  int     `json:"capacity"`
}

// RoomDayAvailability is the per-date occupancy view of a single room. An
// inactive room is reported as unavailable regardless of its bookings.
type RoomDayAvailability struct {
	Room         Room          `json:"room"`
	Date         time.Time     `json:"date"`
	Available    bool          `json:"available"`
	Reason       string        `json:"reason,omitempty"`
	Appointments []Appointment `json:"appointments"`
}
