package domain

import "errors"

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrDoctorSlotTaken and ErrRoomSlotTaken signal a booking conflict
	// detected either during validation or at write time.
	ErrDoctorSlotTaken = errors.New("doctor already has an appointment in this slot")
	ErrRoomSlotTaken   = errors.New("room is occupied at this time")
	ErrRoomInactive    = errors.New("room is not active")

	ErrInsufficientNotice    = errors.New("appointment is less than 24 hours away")
	ErrAlreadyCancelled      = errors.New("appointment is already cancelled")
	ErrCannotModifyCancelled = errors.New("cancelled appointments cannot be modified")
	ErrNotOwnAppointment     = errors.New("appointment belongs to another patient")

	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrInvalidPriority  = errors.New("invalid priority")

	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
)
