package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBoundedDuration(t *testing.T) {
	testCases := []struct {
		text   string
		wantMs int64
		wantOK bool
	}{
		{"2h 30m", 9000000, true},
		{"0s", 0, true},
		{"365d", maxDurationMs, true},
		{"366d", 0, false},
		{"200000000000d", 0, false}, // overflows the millisecond sum
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range testCases {
		ms, ok := parseBoundedDuration(c.text)
		assert.Equal(t, c.wantOK, ok, "text %q", c.text)
		assert.Equal(t, c.wantMs, ms, "text %q", c.text)
	}
}
