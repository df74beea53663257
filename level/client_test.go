package level

import (
	"encoding/base64"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levelResponse(fields map[string]string, creators string) string {
	var parts []string
	for key, value := range fields {
		parts = append(parts, key+":"+value)
	}
	return strings.Join(parts, ":") + "#" + creators + "#9999:0:10#hash"
}

func TestParseLevelResponseNotFound(t *testing.T) {
	_, err := ParseLevelResponse("-1")
	assert.ErrorIs(t, err, ErrLevelNotFound)
}

func TestParseLevelResponseGarbage(t *testing.T) {
	for _, raw := range []string{"", "error 1006", "1:abc#x"} {
		_, err := ParseLevelResponse(raw)
		assert.ErrorIs(t, err, ErrServerUnavailable, "raw %q", raw)
	}
}

func TestParseLevelResponseLevel(t *testing.T) {
	description := base64.URLEncoding.EncodeToString([]byte("a nice level"))
	raw := levelResponse(map[string]string{
		"1":  "128",
		"2":  "Stereo Madness",
		"3":  description,
		"6":  "71",
		"15": "0",
		"18": "0",
		"39": "7",
	}, "71:RobTop:16")

	snapshot, err := ParseLevelResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(128), snapshot.ID)
	assert.Equal(t, "Stereo Madness", snapshot.Name)
	assert.Equal(t, "a nice level", snapshot.Description)
	assert.Equal(t, "RobTop", snapshot.UploaderName)
	assert.Equal(t, int64(16), snapshot.UploaderID)
	assert.False(t, snapshot.Platformer)
	assert.False(t, snapshot.Rated)
	assert.Equal(t, 7, snapshot.RequestedStars)
	assert.False(t, snapshot.Demon())
}

func TestParseLevelResponsePlatformerDemon(t *testing.T) {
	raw := levelResponse(map[string]string{
		"1":  "95000000",
		"2":  "Tower",
		"15": "5",
		"18": "0",
		"39": "10",
	}, "")

	snapshot, err := ParseLevelResponse(raw)
	require.NoError(t, err)
	assert.True(t, snapshot.Platformer)
	assert.True(t, snapshot.Demon())
	assert.Equal(t, "", snapshot.UploaderName)
	assert.Equal(t, int64(0), snapshot.UploaderID)
}

func TestParseLevelResponseRated(t *testing.T) {
	raw := levelResponse(map[string]string{
		"1":  "10565740",
		"2":  "Bloodbath",
		"18": "10",
	}, "")

	snapshot, err := ParseLevelResponse(raw)
	require.NoError(t, err)
	assert.True(t, snapshot.Rated)
}

func TestDecodeDescription(t *testing.T) {
	assert.Equal(t, "hello", decodeDescription(base64.RawURLEncoding.EncodeToString([]byte("hello"))))
	assert.Equal(t, "", decodeDescription("!!not base64!!"))

	long := strings.Repeat("x", 600)
	decoded := decodeDescription(base64.URLEncoding.EncodeToString([]byte(long)))
	assert.Len(t, decoded, 512)

	// The cap counts characters, so multi-byte text must not be cut
	// mid-rune.
	wide := strings.Repeat("好", 600)
	decoded = decodeDescription(base64.URLEncoding.EncodeToString([]byte(wide)))
	assert.True(t, utf8.ValidString(decoded))
	assert.Equal(t, 512, utf8.RuneCountInString(decoded))
}
