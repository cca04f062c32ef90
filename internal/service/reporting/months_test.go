package reporting

import (
	"reflect"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBucketByMonth(t *testing.T) {
	now := date(2026, time.August, 31)

	tests := []struct {
		name   string
		dates  []time.Time
		months int
		want   []MonthCount
	}{
		{
			name: "three month window zero filled",
			dates: []time.Time{
				date(2026, time.June, 2),
				date(2026, time.August, 15),
				date(2026, time.August, 20),
			},
			months: 3,
			want: []MonthCount{
				{Month: "2026-06", Count: 1},
				{Month: "2026-07", Count: 0},
				{Month: "2026-08", Count: 2},
			},
		},
		{
			name: "dates outside range ignored",
			dates: []time.Time{
				date(2025, time.December, 25),
				date(2026, time.August, 1),
			},
			months: 2,
			want: []MonthCount{
				{Month: "2026-07", Count: 0},
				{Month: "2026-08", Count: 1},
			},
		},
		{
			name:   "window crosses year boundary",
			dates:  []time.Time{date(2025, time.December, 31)},
			months: 10,
			want: []MonthCount{
				{Month: "2025-11", Count: 0},
				{Month: "2025-12", Count: 1},
				{Month: "2026-01", Count: 0},
				{Month: "2026-02", Count: 0},
				{Month: "2026-03", Count: 0},
				{Month: "2026-04", Count: 0},
				{Month: "2026-05", Count: 0},
				{Month: "2026-06", Count: 0},
				{Month: "2026-07", Count: 0},
				{Month: "2026-08", Count: 0},
			},
		},
		{
			name:   "non-positive months clamps to one",
			dates:  []time.Time{date(2026, time.August, 10)},
			months: 0,
			want:   []MonthCount{{Month: "2026-08", Count: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bucketByMonth(tt.dates, tt.months, now)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("bucketByMonth() = %v, want %v", got, tt.want)
			}
		})
	}
}
