package availability

import (
	"reflect"
	"testing"
	"time"

	"github.com/bookwise/bookwise_backend/internal/timeslot"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestFilterAgainst(t *testing.T) {
	slots := []timeslot.Slot{
		{Start: "09:00", End: "09:30"},
		{Start: "09:30", End: "10:00"},
		{Start: "10:00", End: "10:30"},
	}

	tests := []struct {
		name        string
		bookedStart string
		bookedEnd   string
		want        []timeslot.Slot
	}{
		{
			name:        "exact match removed",
			bookedStart: "09:30",
			bookedEnd:   "10:00",
			want: []timeslot.Slot{
				{Start: "09:00", End: "09:30"},
				{Start: "10:00", End: "10:30"},
			},
		},
		{
			name:        "matching start alone removes slot",
			bookedStart: "09:00",
			bookedEnd:   "11:00",
			want: []timeslot.Slot{
				{Start: "09:30", End: "10:00"},
				{Start: "10:00", End: "10:30"},
			},
		},
		{
			name:        "matching end alone removes slot",
			bookedStart: "08:00",
			bookedEnd:   "10:30",
			want: []timeslot.Slot{
				{Start: "09:00", End: "09:30"},
				{Start: "09:30", End: "10:00"},
			},
		},
		{
			name:        "overlap without shared endpoints keeps slot",
			bookedStart: "09:15",
			bookedEnd:   "09:45",
			want:        slots,
		},
		{
			name:        "no collision keeps all",
			bookedStart: "14:00",
			bookedEnd:   "14:30",
			want:        slots,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterAgainst(slots, tt.bookedStart, tt.bookedEnd)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filterAgainst() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCacheKeyIsDateScoped(t *testing.T) {
	// Keys must differ per day so stale listings never bleed across dates.
	dateA := mustDate(t, "2026-09-14")
	dateB := mustDate(t, "2026-09-15")
	reqA := FreeSlotsRequest{Date: &dateA}
	reqB := FreeSlotsRequest{Date: &dateB}

	if cacheKey(reqA) == cacheKey(reqB) {
		t.Errorf("cacheKey() identical for different dates: %s", cacheKey(reqA))
	}
}

func TestCacheKeyUnfiltered(t *testing.T) {
	if got := cacheKey(FreeSlotsRequest{}); got != "freeslots:any:any:any" {
		t.Errorf("cacheKey() = %q, want freeslots:any:any:any", got)
	}
}
