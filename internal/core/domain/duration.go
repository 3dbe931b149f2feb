package domain

import (
	"regexp"
	"strconv"
)

// DurationValue is a sortable encoding of a runtime string: the integer part
// holds hours and the two fractional digits hold minutes (3 hr 42 min is 3.42).
// Minute counts are not normalized, so "75 min" encodes as 0.75.
type DurationValue float64

var (
	hoursPattern   = regexp.MustCompile(`(\d+) hr`)
	minutesPattern = regexp.MustCompile(`(\d+) min`)
)

// ParseDuration converts runtime text such as "3 hr 42 min" into a DurationValue.
// A missing or unparseable component counts as zero; the function never fails.
func ParseDuration(text string) DurationValue {
	hours := firstNumber(hoursPattern, text)
	minutes := firstNumber(minutesPattern, text)
	return DurationValue(float64(hours) + float64(minutes)*0.01)
}

// CompareDurations orders two runtime strings by their parsed value.
// It returns -1 if a < b, 0 if they are equal and 1 otherwise.
func CompareDurations(a, b string) int {
	av, bv := ParseDuration(a), ParseDuration(b)
	if av == bv {
		return 0
	}
	if av < bv {
		return -1
	}
	return 1
}

func firstNumber(pattern *regexp.Regexp, text string) int64 {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
