package reporting

import "time"

// MonthCount is the appointment volume for one calendar month.
type MonthCount struct {
	Month string `json:"month"` // "2006-01"
	Count int    `json:"count"`
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// bucketByMonth tallies dates into a continuous month series ending at
// now's month, going back the given number of months. Months with no
// dates appear with a zero count; dates outside the range are ignored.
func bucketByMonth(dates []time.Time, months int, now time.Time) []MonthCount {
	if months < 1 {
		months = 1
	}

	counts := make(map[string]int, months)
	order := make([]string, 0, months)

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		key := monthKey(first.AddDate(0, i, 0))
		counts[key] = 0
		order = append(order, key)
	}

	for _, d := range dates {
		key := monthKey(d)
		if _, ok := counts[key]; ok {
			counts[key]++
		}
	}

	out := make([]MonthCount, 0, months)
	for _, key := range order {
		out = append(out, MonthCount{Month: key, Count: counts[key]})
	}
	return out
}
