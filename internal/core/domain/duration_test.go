package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wltime/internal/core/domain"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "hours and minutes", text: "3 hr 42 min", want: 3.42},
		{name: "minutes only", text: "45 min", want: 0.45},
		{name: "hours only", text: "2 hr", want: 2.0},
		{name: "empty", text: "", want: 0},
		{name: "no tokens", text: "Length: unknown", want: 0},
		{name: "surrounding text", text: "Length: 12 hrs and 5 mins", want: 12.05},
		{name: "minute overflow is kept", text: "75 min", want: 0.75},
		{name: "first match wins", text: "1 hr 2 min 9 hr", want: 1.02},
		{name: "token without space", text: "3hr 4min", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ParseDuration(tt.text)
			assert.InDelta(t, tt.want, float64(got), 1e-9)
		})
	}
}

func TestCompareDurations(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "hour beats minutes", a: "1 hr", b: "45 min", want: 1},
		{name: "less", a: "45 min", b: "1 hr", want: -1},
		{name: "equal text", a: "2 hr 3 min", b: "2 hr 3 min", want: 0},
		{name: "equal value different text", a: "Length: 2 hr 3 min", b: "2 hr 3 min", want: 0},
		{name: "empty is zero", a: "", b: "1 min", want: -1},
		{name: "both empty", a: "", b: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CompareDurations(tt.a, tt.b))
		})
	}
}

func TestCompareDurations_MatchesParsedOrder(t *testing.T) {
	samples := []string{"", "1 min", "59 min", "1 hr", "1 hr 1 min", "10 hr", "3 hr 42 min", "75 min", "junk"}

	for _, a := range samples {
		for _, b := range samples {
			pa, pb := domain.ParseDuration(a), domain.ParseDuration(b)
			want := 0
			switch {
			case pa < pb:
				want = -1
			case pa > pb:
				want = 1
			}
			assert.Equal(t, want, domain.CompareDurations(a, b), "compare(%q, %q)", a, b)
		}
	}
}
