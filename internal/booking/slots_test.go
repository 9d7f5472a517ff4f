package booking

import (
	"reflect"
	"testing"
)

func TestBucketTimes(t *testing.T) {
	tests := []struct {
		name  string
		times []string
		want  []SlotBucket
	}{
		{
			"all periods",
			[]string{"09:00", "10:30", "13:00", "19:00"},
			[]SlotBucket{
				{Label: "Manhã", Times: []string{"09:00", "10:30"}},
				{Label: "Tarde", Times: []string{"13:00"}},
				{Label: "Noite", Times: []string{"19:00"}},
			},
		},
		{
			"boundaries",
			[]string{"06:00", "12:00", "18:00", "23:59"},
			[]SlotBucket{
				{Label: "Manhã", Times: []string{"06:00"}},
				{Label: "Tarde", Times: []string{"12:00"}},
				{Label: "Noite", Times: []string{"18:00", "23:59"}},
			},
		},
		{
			"empty buckets omitted",
			[]string{"08:00", "08:30"},
			[]SlotBucket{{Label: "Manhã", Times: []string{"08:00", "08:30"}}},
		},
		{
			"garbage and pre-dawn dropped",
			[]string{"abc", "05:00", "???", "14:00"},
			[]SlotBucket{{Label: "Tarde", Times: []string{"14:00"}}},
		},
		{"no times", []string{}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BucketTimes(tc.times)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWireDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-09-15", "15-09-2026"},
		{"2026-01-02", "02-01-2026"},
		{"15-09-2026", "2026-09-15"},
		{"20260915", "20260915"},
		{"2026/09/15", "2026/09/15"},
	}
	for _, tc := range tests {
		if got := WireDate(tc.in); got != tc.want {
			t.Fatalf("WireDate(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
