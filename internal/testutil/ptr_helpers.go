package testutil

import "time"

// Float64 returns a pointer to the given float64
func Float64(f float64) *float64 {
	return &f
}

// Int returns a pointer to the given int
func Int(i int) *int {
	return &i
}

// Time returns a pointer to the given time.Time
func Time(t time.Time) *time.Time {
	return &t
}
