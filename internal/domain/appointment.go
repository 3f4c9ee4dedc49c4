package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusPending   AppointmentStatus = "pending"
)

// DefaultDurationMinutes is applied when a booking request omits the duration.
const DefaultDurationMinutes = 30

type Appointment struct {
	ID                 int64             `json:"id"`
	DoctorID           int64             `json:"doctor_id"`
	PatientID          int64             `json:"patient_id"`
	RoomID             *int64            `json:"room_id"`
	Date               time.Time         `json:"date"`
	StartTime          string            `json:"start_time"`
	DurationMinutes    int               `json:"duration_minutes"`
	VisitType          string            `json:"visit_type"`
	Status             AppointmentStatus `json:"status"`
	Note               *string           `json:"note"`
	CancellationReason *string           `json:"cancellation_reason"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	DoctorName         string            `json:"doctor_name,omitempty"`
	PatientName        string            `json:"patient_name,omitempty"`
	RoomNumber         *string           `json:"room_number,omitempty"`
}

type CreateAppointmentDTO struct {
	DoctorID        int64   `json:"doctor_id" binding:"required"`
	PatientID       int64   `json:"patient_id" binding:"required"`
	RoomID          *int64  `json:"room_id"`
	Date            string  `json:"date" binding:"required"`
	StartTime       string  `json:"start_time" binding:"required"`
	DurationMinutes int     `json:"duration_minutes"`
	VisitType       string  `json:"visit_type" binding:"required"`
	Note            *string `json:"note"`
}

type UpdateAppointmentDTO struct {
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	RoomID    *int64  `json:"room_id"`
	Note      *string `json:"note"`
}

type AppointmentFilter struct {
	DoctorID      *int64             `json:"doctor_id"`
	PatientID     *int64             `json:"patient_id"`
	Status        *AppointmentStatus `json:"status"`
	ExcludeStatus *AppointmentStatus `json:"exclude_status"`
	DateFrom      *time.Time         `json:"date_from"`
	DateTo        *time.Time         `json:"date_to"`
	Limit         int                `json:"limit"`
	Offset        int                `json:"offset"`
}
