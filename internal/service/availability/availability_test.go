package availability

import (
	"errors"
	"testing"
)

func TestCheckWindow(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		duration int
		wantErr  error
	}{
		{name: "window fits several slots", start: "09:00", end: "12:00", duration: 30},
		{name: "window exactly one slot", start: "09:00", end: "09:30", duration: 30},
		{name: "window shorter than duration", start: "09:00", end: "09:20", duration: 30, wantErr: ErrWindowTooShort},
		{name: "inverted window", start: "12:00", end: "09:00", duration: 30, wantErr: ErrWindowTooShort},
		{name: "malformed start", start: "9am", end: "12:00", duration: 30, wantErr: ErrInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkWindow(tt.start, tt.end, tt.duration)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("checkWindow() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("checkWindow() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
