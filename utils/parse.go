package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|shorts/|live/)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// YouTubeVideoID extracts the 11-character video id from the known YouTube
// URL shapes. Returns "" when the input doesn't contain one.
func YouTubeVideoID(url string) string {
	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}

var (
	durationToken = regexp.MustCompile(`(\d+)([dhms])`)
	durationJunk  = regexp.MustCompile(`[^0-9dhms]`)
)

var durationUnitMs = map[string]int64{
	"d": 24 * 60 * 60 * 1000,
	"h": 60 * 60 * 1000,
	"m": 60 * 1000,
	"s": 1000,
}

// ParseDHMSDuration sums the <n>d, <n>h, <n>m and <n>s tokens found in free
// text into milliseconds. Extraneous characters are ignored. ok is false
// when no token is present at all, which is distinct from a parsed zero
// such as "0s". Sums too large for an int64 saturate at math.MaxInt64
// instead of wrapping negative; callers bound the result anyway.
func ParseDHMSDuration(text string) (ms int64, ok bool) {
	cleaned := durationJunk.ReplaceAllString(text, "")
	for _, match := range durationToken.FindAllStringSubmatch(cleaned, -1) {
		ok = true
		value, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			ms = math.MaxInt64
			continue
		}
		unit := durationUnitMs[match[2]]
		if value > math.MaxInt64/unit {
			ms = math.MaxInt64
			continue
		}
		if product := value * unit; ms > math.MaxInt64-product {
			ms = math.MaxInt64
		} else {
			ms += product
		}
	}
	return ms, ok
}

// FormatDuration renders a millisecond duration as "1 Day 2 Hours ...".
// Returns "" for durations under a second.
func FormatDuration(ms int64) string {
	seconds := ms / 1000
	units := []struct {
		name    string
		seconds int64
	}{
		{"Day", 24 * 60 * 60},
		{"Hour", 60 * 60},
		{"Minute", 60},
		{"Second", 1},
	}

	var parts []string
	for _, unit := range units {
		count := seconds / unit.seconds
		seconds %= unit.seconds
		if count == 0 {
			continue
		}
		name := unit.name
		if count > 1 {
			name += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", count, name))
	}
	return strings.Join(parts, " ")
}
