package appointment

import (
	"testing"
	"time"
)

func TestCombine(t *testing.T) {
	date := time.Date(2026, 9, 14, 17, 45, 12, 0, time.UTC)

	got := combine(date, "09:30")
	want := time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("combine() = %v, want %v", got, want)
	}

	// Malformed clock falls back to midnight
	got = combine(date, "not-a-time")
	want = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("combine() with bad clock = %v, want %v", got, want)
	}
}

func TestPastCutoff(t *testing.T) {
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "future appointment modifiable",
			start: now.Add(48 * time.Hour),
			end:   now.Add(49 * time.Hour),
			want:  false,
		},
		{
			name:  "starting in one hour still modifiable",
			start: now.Add(time.Hour),
			end:   now.Add(2 * time.Hour),
			want:  false,
		},
		{
			name:  "ended an hour ago still modifiable",
			start: now.Add(-2 * time.Hour),
			end:   now.Add(-time.Hour),
			want:  false,
		},
		{
			name:  "ended just under a day ago still modifiable",
			start: now.Add(-24 * time.Hour),
			end:   now.Add(-23 * time.Hour),
			want:  false,
		},
		{
			name:  "started over a day ago blocked",
			start: now.Add(-25 * time.Hour),
			end:   now.Add(-24 * time.Hour),
			want:  true,
		},
		{
			name:  "two days old blocked",
			start: now.Add(-49 * time.Hour),
			end:   now.Add(-48 * time.Hour),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pastCutoff(now, tt.start, tt.end); got != tt.want {
				t.Errorf("pastCutoff() = %v, want %v", got, tt.want)
			}
		})
	}
}
