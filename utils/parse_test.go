package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYouTubeVideoID(t *testing.T) {
	testCases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/live/dQw4w9WgXcQ?feature=share", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"https://example.com/watch?v=dQw4w9WgXcQ", ""},
		{"not a url", ""},
		{"https://youtu.be/tooshort", ""},
		{"", ""},
	}
	for _, c := range testCases {
		assert.Equal(t, c.want, YouTubeVideoID(c.url), "url %q", c.url)
	}
}

func TestParseDHMSDuration(t *testing.T) {
	testCases := []struct {
		text   string
		wantMs int64
		wantOK bool
	}{
		{"1d", 86400000, true},
		{"2h 30m", 9000000, true},
		{"1d2h3m4s", 93784000, true},
		{"  10m  ", 600000, true},
		{"0s", 0, true},
		{"please wait 5m ok", 300000, true},
		{"", 0, false},
		{"abc", 0, false},
		{"m", 0, false},
	}
	for _, c := range testCases {
		ms, ok := ParseDHMSDuration(c.text)
		assert.Equal(t, c.wantOK, ok, "text %q", c.text)
		assert.Equal(t, c.wantMs, ms, "text %q", c.text)
	}
}

func TestParseDHMSDurationSaturates(t *testing.T) {
	// Sums beyond int64 must not wrap negative.
	for _, text := range []string{
		"200000000000d",
		"9223372036854775807d",
		"99999999999999999999999s",
		"9000000000000000000s 9000000000000000000s",
	} {
		ms, ok := ParseDHMSDuration(text)
		assert.True(t, ok, "text %q", text)
		assert.Equal(t, int64(math.MaxInt64), ms, "text %q", text)
	}
}

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		ms   int64
		want string
	}{
		{86400000, "1 Day"},
		{90000000, "1 Day 1 Hour"},
		{9000000, "2 Hours 30 Minutes"},
		{61000, "1 Minute 1 Second"},
		{0, ""},
	}
	for _, c := range testCases {
		assert.Equal(t, c.want, FormatDuration(c.ms))
	}
}
