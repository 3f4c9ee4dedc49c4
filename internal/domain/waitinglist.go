package domain

import (
	"sort"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var priorityRank = map[Priority]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
	PriorityUrgent: 3,
}

func (p Priority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

type WaitingListEntry struct {
	ID             int64     `json:"id"`
	PatientID      int64     `json:"patient_id"`
	DoctorID       *int64    `json:"doctor_id"`
	Specialization *string   `json:"specialization"`
	VisitType      string    `json:"visit_type"`
	Priority       Priority  `json:"priority"`
	Note           *string   `json:"note"`
	RequestedAt    time.Time `json:"requested_at"`
	Notified       bool      `json:"notified"`
	PatientName    string    `json:"patient_name,omitempty"`
	PatientPhone   string    `json:"patient_phone,omitempty"`
	DoctorName     *string   `json:"doctor_name,omitempty"`
}

type CreateWaitingListDTO struct {
	PatientID      int64    `json:"patient_id" binding:"required"`
	DoctorID       *int64   `json:"doctor_id"`
	Specialization *string  `json:"specialization"`
	VisitType      string   `json:"visit_type" binding:"required"`
	Priority       Priority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Note           *string  `json:"note"`
}

// SortWaitingList orders entries by priority (urgent first) and, within the
// same priority, by submission time (earlier first). The sort is stable so
// entries with identical keys keep their relative order.
func SortWaitingList(entries []WaitingListEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := priorityRank[entries[i].Priority], priorityRank[entries[j].Priority]
		if ri != rj {
			return ri > rj
		}
		return entries[i].RequestedAt.Before(entries[j].RequestedAt)
	})
}
