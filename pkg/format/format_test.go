package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want string
	}{
		{name: "zero", in: 0, want: "0"},
		{name: "below threshold", in: 9999, want: "9999"},
		{name: "exact wan", in: 10000, want: "1w"},
		{name: "round wan", in: 120000, want: "12w"},
		{name: "one decimal", in: 123456, want: "12.3w"},
		{name: "rounded decimal", in: 1234567, want: "123.5w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(tt.in))
		})
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		ts   int64
		want string
	}{
		{name: "future", ts: now.Add(time.Minute).UnixMilli(), want: "just now"},
		{name: "seconds ago", ts: now.Add(-30 * time.Second).UnixMilli(), want: "just now"},
		{name: "one minute", ts: now.Add(-90 * time.Second).UnixMilli(), want: "1 minute ago"},
		{name: "minutes", ts: now.Add(-5 * time.Minute).UnixMilli(), want: "5 minutes ago"},
		{name: "hours", ts: now.Add(-3 * time.Hour).UnixMilli(), want: "3 hours ago"},
		{name: "days", ts: now.Add(-48 * time.Hour).UnixMilli(), want: "2 days ago"},
		{name: "months", ts: now.Add(-80 * 24 * time.Hour).UnixMilli(), want: "2 months ago"},
		{name: "years", ts: now.Add(-800 * 24 * time.Hour).UnixMilli(), want: "2 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(tt.ts))
		})
	}
}
