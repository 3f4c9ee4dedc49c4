// Package timegrid contains the pure time-of-day arithmetic used by slot
// generation and overlap detection. Times of day are "15:04" strings, the
// format they are stored and transported in.
package timegrid

import (
	"errors"
	"fmt"
	"time"
)

const clockLayout = "15:04"

var ErrInvalidRange = errors.New("invalid slot range")

// Slots generates the half-open slots [t, t+granularity) starting at start
// and stepping by granularity minutes. A slot whose start would fall at or
// after end is excluded, even if the slot itself would still fit.
func Slots(start, end string, granularityMinutes int) ([]string, error) {
	if granularityMinutes <= 0 {
		return nil, fmt.Errorf("%w: granularity must be positive, got %d", ErrInvalidRange, granularityMinutes)
	}

	startTime, err := time.Parse(clockLayout, start)
	if err != nil {
		return nil, fmt.Errorf("%w: bad start time %q", ErrInvalidRange, start)
	}
	endTime, err := time.Parse(clockLayout, end)
	if err != nil {
		return nil, fmt.Errorf("%w: bad end time %q", ErrInvalidRange, end)
	}
	if !startTime.Before(endTime) {
		return nil, fmt.Errorf("%w: start %s is not before end %s", ErrInvalidRange, start, end)
	}

	step := time.Duration(granularityMinutes) * time.Minute

	var slots []string
	for current := startTime; current.Before(endTime); current = current.Add(step) {
		slots = append(slots, current.Format(clockLayout))
	}

	return slots, nil
}

// MinutesOfDay converts a "15:04" clock string to minutes from midnight.
func MinutesOfDay(clock string) (int, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("bad clock value %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Arguments are minutes from midnight.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// ValidClock reports whether s parses as a "15:04" time of day.
func ValidClock(s string) bool {
	_, err := time.Parse(clockLayout, s)
	return err == nil
}
