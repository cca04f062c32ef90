package timeslot

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		duration int
		want     []Slot
		wantErr  error
	}{
		{
			name:     "window splits evenly",
			start:    "09:00",
			end:      "10:00",
			duration: 30,
			want: []Slot{
				{Start: "09:00", End: "09:30"},
				{Start: "09:30", End: "10:00"},
			},
		},
		{
			name:     "partial trailing slot dropped",
			start:    "09:00",
			end:      "10:00",
			duration: 45,
			want:     []Slot{{Start: "09:00", End: "09:45"}},
		},
		{
			name:     "window shorter than duration",
			start:    "09:00",
			end:      "09:10",
			duration: 30,
			want:     []Slot{},
		},
		{
			name:     "inverted window yields no slots",
			start:    "17:00",
			end:      "09:00",
			duration: 30,
			want:     []Slot{},
		},
		{
			name:     "zero length window",
			start:    "09:00",
			end:      "09:00",
			duration: 15,
			want:     []Slot{},
		},
		{
			name:     "crosses noon",
			start:    "11:30",
			end:      "13:00",
			duration: 45,
			want: []Slot{
				{Start: "11:30", End: "12:15"},
				{Start: "12:15", End: "13:00"},
			},
		},
		{
			name:     "zero duration rejected",
			start:    "09:00",
			end:      "10:00",
			duration: 0,
			wantErr:  ErrInvalidDuration,
		},
		{
			name:     "negative duration rejected",
			start:    "09:00",
			end:      "10:00",
			duration: -15,
			wantErr:  ErrInvalidDuration,
		},
		{
			name:     "malformed start rejected",
			start:    "9am",
			end:      "10:00",
			duration: 30,
			wantErr:  ErrInvalidClock,
		},
		{
			name:     "out of range clock rejected",
			start:    "25:00",
			end:      "26:00",
			duration: 30,
			wantErr:  ErrInvalidClock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.start, tt.end, tt.duration)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Generate() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Generate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindowMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    int
		wantErr bool
	}{
		{name: "one hour", start: "09:00", end: "10:00", want: 60},
		{name: "inverted window is negative", start: "17:00", end: "09:00", want: -480},
		{name: "same time", start: "12:00", end: "12:00", want: 0},
		{name: "invalid start", start: "nope", end: "10:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WindowMinutes(tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Fatal("WindowMinutes() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("WindowMinutes() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("WindowMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	if _, err := ParseClock("07:65"); err == nil {
		t.Error("ParseClock(07:65) expected error")
	}
	got, err := ParseClock("23:59")
	if err != nil {
		t.Fatalf("ParseClock() error = %v", err)
	}
	if got != 23*60+59 {
		t.Errorf("ParseClock(23:59) = %d, want %d", got, 23*60+59)
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(9*60 + 5); got != "09:05" {
		t.Errorf("FormatClock() = %q, want %q", got, "09:05")
	}
}

func TestWeekdayName(t *testing.T) {
	// 2026-09-14 is a Monday
	d := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	if got := WeekdayName(d); got != "Monday" {
		t.Errorf("WeekdayName() = %q, want %q", got, "Monday")
	}
}
