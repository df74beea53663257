package models

// Lifecycle states of a level request. A request leaves StateReady at most
// once and never returns to it.
const (
	StateReady    = 0
	StateRated    = 1
	StateStolen   = 2
	StateNotFound = 3
)

// Review is one moderator's verdict on a request. The store keeps one row
// per (request, reviewer); a reviewer's later verdict overwrites their
// earlier one.
type Review struct {
	ReviewerID string
	Outcome    int
	ReviewedAt int64
	Note       string
	MessageURL string
}

// Request is a persisted level request together with its reviews.
type Request struct {
	ID      int64
	UserID  string
	GuildID string

	LevelID          int64
	LevelName        string
	LevelDescription string
	Difficulties     []int
	Demon            bool
	Platformer       bool
	UploaderName     string
	UploaderID       int64

	// LegacyDifficulty is the single difficulty label carried over for
	// requests migrated from the pre-review-system data.
	LegacyDifficulty string

	VideoID       string
	Note          string
	ExtraQuestion string
	ExtraAnswer   string

	// GDPS marks requests for levels hosted on a private server.
	GDPS bool

	// CheckFilter guards duplicate submissions of the same level id.
	// Cleared by the allow-resubmit command.
	CheckFilter bool

	State     int
	CreatedAt int64

	// Reviews is ordered newest first.
	Reviews []Review
}
