package booking

import (
	"strconv"
	"strings"
)

// Display buckets for the slot picker. Thresholds are hours of day:
// morning [06,12), afternoon [12,18), evening [18,24).
const (
	morningStartHour   = 6
	afternoonStartHour = 12
	eveningStartHour   = 18
)

type SlotBucket struct {
	Label string   `json:"periodo"`
	Times []string `json:"horarios"`
}

// BucketTimes partitions HH:MM strings into morning/afternoon/evening,
// omitting empty buckets. Times whose hour prefix cannot be parsed, or
// that fall before the morning threshold, are dropped.
func BucketTimes(times []string) []SlotBucket {
	var morning, afternoon, evening []string

	for _, t := range times {
		hourStr, _, ok := strings.Cut(t, ":")
		if !ok {
			continue
		}
		hour, err := strconv.Atoi(hourStr)
		if err != nil {
			continue
		}

		switch {
		case hour >= eveningStartHour && hour < 24:
			evening = append(evening, t)
		case hour >= afternoonStartHour:
			afternoon = append(afternoon, t)
		case hour >= morningStartHour:
			morning = append(morning, t)
		}
	}

	var buckets []SlotBucket
	if len(morning) > 0 {
		buckets = append(buckets, SlotBucket{Label: "Manhã", Times: morning})
	}
	if len(afternoon) > 0 {
		buckets = append(buckets, SlotBucket{Label: "Tarde", Times: afternoon})
	}
	if len(evening) > 0 {
		buckets = append(buckets, SlotBucket{Label: "Noite", Times: evening})
	}
	return buckets
}

// WireDate converts the picker's YYYY-MM-DD value into the DD-MM-YYYY
// format the upstream create endpoint expects.
func WireDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}
