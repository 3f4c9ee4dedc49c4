package domain

import (
	"time"
)

type Patient struct {
	ID                    int64     `json:"id"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	FiscalCode            string    `json:"fiscal_code"`
	BirthDate             time.Time `json:"birth_date"`
	Email                 string    `json:"email"`
	PasswordHash          string    `json:"-"`
	Phone                 string    `json:"phone"`
	Address               *string   `json:"address"`
	City                  *string   `json:"city"`
	PostalCode            *string   `json:"postal_code"`
	EmergencyContactName  *string   `json:"emergency_contact_name"`
	EmergencyContactPhone *string   `json:"emergency_contact_phone"`
	MedicalNotes          *string   `json:"medical_notes,omitempty"`
	Active                bool      `json:"active"`
	CreatedAt             time.Time `json:"created_at"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

type CreatePatientDTO struct {
	FirstName             string  `json:"first_name" binding:"required"`
	LastName              string  `json:"last_name" binding:"required"`
	FiscalCode            string  `json:"fiscal_code" binding:"required,len=16"`
	BirthDate             string  `json:"birth_date" binding:"required"`
	Email                 string  `json:"email" binding:"required,email"`
	Password              string  `json:"password" binding:"required,min=6"`
	Phone                 string  `json:"phone" binding:"required"`
	Address               *string `json:"address"`
	City                  *string `json:"city"`
	PostalCode            *string `json:"postal_code"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	MedicalNotes          *string `json:"medical_notes"`
}
