package level

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrLevelNotFound means the level genuinely does not exist.
	ErrLevelNotFound = errors.New("level does not exist")
	// ErrServerUnavailable means the game server could not be reached or
	// answered garbage. Callers should ask the user to retry later.
	ErrServerUnavailable = errors.New("game server unavailable")
)

// Snapshot is the level metadata fetched once per draft from the game
// server.
type Snapshot struct {
	ID           int64
	Name         string
	Description  string
	UploaderName string
	UploaderID   int64 // 0 when the uploader has no account
	Platformer   bool
	Rated        bool

	// RequestedStars is the uploader's requested star value (0 when
	// absent). 10 marks the level as a demon request.
	RequestedStars int
}

// Demon reports whether the uploader requested a demon rating.
func (s *Snapshot) Demon() bool {
	return s.RequestedStars == 10
}

// Client fetches level metadata from a GD-compatible game server.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
}

// NewClient builds a client for the given game server base URL.
func NewClient(baseURL string) *Client {
	c := retryablehttp.NewClient()
	c.RetryMax = 2
	c.Logger = nil
	return &Client{http: c, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Fetch looks up a level by id.
func (c *Client) Fetch(ctx context.Context, levelID int64) (*Snapshot, error) {
	form := url.Values{
		"secret":        {"Wmfd2893gb7"},
		"type":          {"0"},
		"gameVersion":   {"22"},
		"binaryVersion": {"42"},
		"str":           {strconv.FormatInt(levelID, 10)},
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/getGJLevels21.php", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrServerUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrServerUnavailable
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, ErrServerUnavailable
	}
	return ParseLevelResponse(string(body))
}

// ParseLevelResponse decodes the game server response: '#'-separated
// sections, the first holding '|'-separated levels of ':'-separated
// key/value pairs, the second holding '|'-separated "playerId:name:accountId"
// creator triples. A bare "-1" means no such level.
func ParseLevelResponse(raw string) (*Snapshot, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrServerUnavailable
	}
	if raw == "-1" {
		return nil, ErrLevelNotFound
	}

	sections := strings.Split(raw, "#")
	if len(sections) < 2 {
		return nil, ErrServerUnavailable
	}

	type creator struct {
		name string
		id   int64
	}
	creators := make(map[string]creator)
	for _, entry := range strings.Split(sections[1], "|") {
		parts := strings.Split(entry, ":")
		if len(parts) < 3 {
			continue
		}
		accountID, _ := strconv.ParseInt(parts[2], 10, 64)
		creators[parts[0]] = creator{name: parts[1], id: accountID}
	}

	fields := strings.Split(strings.Split(sections[0], "|")[0], ":")
	kv := make(map[string]string)
	for i := 0; i+1 < len(fields); i += 2 {
		kv[fields[i]] = fields[i+1]
	}

	id, err := strconv.ParseInt(kv["1"], 10, 64)
	if err != nil || id <= 0 {
		return nil, ErrServerUnavailable
	}

	description := decodeDescription(kv["3"])
	ratedStars, _ := strconv.Atoi(kv["18"])
	requestedStars, _ := strconv.Atoi(kv["39"])
	uploader := creators[kv["6"]]

	return &Snapshot{
		ID:             id,
		Name:           kv["2"],
		Description:    description,
		UploaderName:   uploader.name,
		UploaderID:     uploader.id,
		Platformer:     kv["15"] == "5",
		Rated:          ratedStars > 0,
		RequestedStars: requestedStars,
	}, nil
}

// decodeDescription decodes the base64url description field, capped at 512
// characters like the game does.
func decodeDescription(encoded string) string {
	decoded, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(encoded)
	}
	if err != nil {
		return ""
	}
	description := string(decoded)
	if runes := []rune(description); len(runes) > 512 {
		description = string(runes[:512])
	}
	return description
}
