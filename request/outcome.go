package request

import (
	"gdrequest/level"
	"gdrequest/models"
)

// Outcome is a fixed review verdict. The values are singletons; positive
// ids are "sent" verdicts, negative ids rejections. Some rejections carry
// a terminal lifecycle state.
type Outcome struct {
	ID      int
	EmojiID string
	Title   string

	// NextState is the terminal state this outcome moves a Ready request
	// to, or models.StateReady when it carries no transition.
	NextState int
}

var (
	Sent          = &Outcome{ID: 1, EmojiID: "sent_normal", Title: "Sent only"}
	SentFeatured  = &Outcome{ID: 2, EmojiID: "sent_featured", Title: "Sent with Featured"}
	SentEpic      = &Outcome{ID: 3, EmojiID: "sent_epic", Title: "Sent with Epic"}
	SentLegendary = &Outcome{ID: 4, EmojiID: "sent_legendary", Title: "Sent with Legendary"}
	SentMythic    = &Outcome{ID: 5, EmojiID: "sent_mythic", Title: "Sent with Mythic"}

	Reject         = &Outcome{ID: -1, EmojiID: "reject_normal", Title: "Not Sent"}
	RejectSent     = &Outcome{ID: -2, EmojiID: "reject_sent", Title: "Already Sent"}
	RejectRated    = &Outcome{ID: -3, EmojiID: "reject_rated", Title: "Already Rated", NextState: models.StateRated}
	RejectStolen   = &Outcome{ID: -4, EmojiID: "reject_stolen", Title: "Stolen Level", NextState: models.StateStolen}
	RejectNotExist = &Outcome{ID: -5, EmojiID: "reject_none", Title: "Not Exist", NextState: models.StateNotFound}
)

// SentOutcomes and RejectOutcomes drive the two review select menus.
var (
	SentOutcomes   = []*Outcome{Sent, SentFeatured, SentEpic, SentLegendary, SentMythic}
	RejectOutcomes = []*Outcome{Reject, RejectSent, RejectRated, RejectStolen, RejectNotExist}
)

// OutcomeOf resolves a stored outcome id. Unknown ids decode as a plain
// rejection.
func OutcomeOf(id int) *Outcome {
	for _, outcome := range append(append([]*Outcome{}, SentOutcomes...), RejectOutcomes...) {
		if outcome.ID == id {
			return outcome
		}
	}
	return Reject
}

// IsSent reports whether this is a positive verdict.
func (o *Outcome) IsSent() bool {
	return o.ID > 0
}

// Terminal reports whether the outcome carries a lifecycle transition.
func (o *Outcome) Terminal() bool {
	return o.NextState != models.StateReady
}

// Emoji returns the outcome's display emoji.
func (o *Outcome) Emoji() string {
	return level.Emoji(o.EmojiID)
}
