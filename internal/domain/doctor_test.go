package domain

import (
	"testing"
	"time"
)

func TestParseWeekdaySet(t *testing.T) {
	set, err := ParseWeekdaySet("lun,mer,ven")
	if err != nil {
		t.Fatalf("parse should succeed: %v", err)
	}

	for _, day := range []time.Weekday{time.Monday, time.Wednesday, time.Friday} {
		if !set.Contains(day) {
			t.Errorf("expected %s in set", day)
		}
	}
	for _, day := range []time.Weekday{time.Tuesday, time.Thursday, time.Saturday, time.Sunday} {
		if set.Contains(day) {
			t.Errorf("did not expect %s in set", day)
		}
	}
}

func TestParseWeekdaySet_NormalizesInput(t *testing.T) {
	set, err := ParseWeekdaySet(" LUN , Mar ")
	if err != nil {
		t.Fatalf("parse should succeed: %v", err)
	}
	if !set.Contains(time.Monday) || !set.Contains(time.Tuesday) {
		t.Errorf("whitespace and case must be tolerated, got %s", set)
	}
}

func TestParseWeekdaySet_Empty(t *testing.T) {
	set, err := ParseWeekdaySet("")
	if err != nil {
		t.Fatalf("empty input must parse: %v", err)
	}
	if len(set) != 0 {
		t.Errorf("expected empty set, got %s", set)
	}
}

func TestParseWeekdaySet_Unknown(t *testing.T) {
	if _, err := ParseWeekdaySet("lun,monday"); err == nil {
		t.Error("expected error for unknown abbreviation")
	}
}

func TestWeekdaySet_StringMondayFirst(t *testing.T) {
	set, err := ParseWeekdaySet("dom,ven,lun")
	if err != nil {
		t.Fatalf("parse should succeed: %v", err)
	}
	if got := set.String(); got != "lun,ven,dom" {
		t.Errorf("expected lun,ven,dom, got %s", got)
	}
}
