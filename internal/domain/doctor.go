package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// WeekdaySet is the set of weekdays a doctor receives patients on. It is
// stored as a comma separated abbreviation list ("lun,mar,mer") and parsed
// once at the repository boundary.
type WeekdaySet map[time.Weekday]bool

var weekdayAbbrevs = map[string]time.Weekday{
	"lun": time.Monday,
	"mar": time.Tuesday,
	"mer": time.Wednesday,
	"gio": time.Thursday,
	"ven": time.Friday,
	"sab": time.Saturday,
	"dom": time.Sunday,
}

var abbrevByWeekday = map[time.Weekday]string{
	time.Monday:    "lun",
	time.Tuesday:   "mar",
	time.Wednesday: "mer",
	time.Thursday:  "gio",
	time.Friday:    "ven",
	time.Saturday:  "sab",
	time.Sunday:    "dom",
}

func ParseWeekdaySet(s string) (WeekdaySet, error) {
	set := make(WeekdaySet)
	if strings.TrimSpace(s) == "" {
		return set, nil
	}
	for _, part := range strings.Split(s, ",") {
		day, ok := weekdayAbbrevs[strings.TrimSpace(strings.ToLower(part))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday abbreviation %q", part)
		}
		set[day] = true
	}
	return set, nil
}

func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s[d]
}

// String renders the set in Monday-first order, matching the stored format.
func (s WeekdaySet) String() string {
	days := make([]time.Weekday, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return mondayFirst(days[i]) < mondayFirst(days[j])
	})
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, abbrevByWeekday[d])
	}
	return strings.Join(parts, ",")
}

func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func mondayFirst(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

type Doctor struct {
	ID             int64      `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Specialization string     `json:"specialization"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Phone          string     `json:"phone"`
	WorkdayStart   string     `json:"workday_start"`
	WorkdayEnd     string     `json:"workday_end"`
	AvailableDays  WeekdaySet `json:"available_days"`
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}

type CreateDoctorDTO struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Phone          string `json:"phone"`
	WorkdayStart   string `json:"workday_start" binding:"required"`
	WorkdayEnd     string `json:"workday_end" binding:"required"`
	AvailableDays  string `json:"available_days" binding:"required"`
}
