package submission

import (
	"fmt"

	"gdrequest/level"
	"gdrequest/models"
	"gdrequest/utils"
)

// State is the draft's UI editing state.
type State int

const (
	// StateIdle shows the normal editing surface with action buttons.
	StateIdle State = iota
	// StatePickingDifficulty shows the non-demon picker (tiers 1-9).
	StatePickingDifficulty
	// StatePickingDemonDifficulty shows the demon picker (tiers 10-14).
	StatePickingDemonDifficulty
)

// Requirement flags mark what a draft is still missing before it can be
// submitted.
type Requirement uint32

const (
	RequireVideo Requirement = 1 << iota
	RequireDifficulty
	RequireNote
)

// Draft is an in-progress, not-yet-persisted submission. Owned by the
// Store; every mutation must be followed by a Put to re-arm its TTL.
type Draft struct {
	UserID    string
	GuildID   string
	LevelID   int64
	LevelName string

	// Level is the fetched metadata; nil for GDPS submissions.
	Level *level.Snapshot

	VideoID     string
	Note        string
	ExtraAnswer string

	Demon        bool
	Platformer   bool
	Difficulties []int

	State State
	GDPS  bool

	// Config is the guild configuration captured at draft creation. The
	// eligibility gate re-reads a fresh copy at confirm time.
	Config *models.GuildConfig
}

// NewDraft builds a draft from the submit modal input. snapshot is nil in
// GDPS mode; otherwise the demon flag, platformer flag and an initial
// difficulty are prefilled from the level's requested stars.
func NewDraft(userID, guildID string, levelID int64, levelName string, snapshot *level.Snapshot, cfg *models.GuildConfig) *Draft {
	d := &Draft{
		UserID:    userID,
		GuildID:   guildID,
		LevelID:   levelID,
		LevelName: levelName,
		Level:     snapshot,
		GDPS:      snapshot == nil,
		Config:    cfg,
	}
	if snapshot != nil {
		d.Platformer = snapshot.Platformer
		d.Demon = snapshot.Demon()
		if !d.Demon && snapshot.RequestedStars >= 1 {
			d.Difficulties = []int{snapshot.RequestedStars}
		}
	}
	return d
}

// Key identifies the draft in the session store.
func (d *Draft) Key() string {
	return DraftKey(d.GuildID, d.UserID)
}

// DraftKey builds a store key from its parts.
func DraftKey(guildID, userID string) string {
	return fmt.Sprintf("%s-%s", guildID, userID)
}

// Category returns the level category the draft currently targets.
func (d *Draft) Category() *level.Category {
	return level.Classify(d.Platformer, d.Demon)
}

// Rule returns the guild rule for the draft's current category.
func (d *Draft) Rule() *models.CategoryRule {
	return d.Category().Rule(d.Config)
}

// Requirements reports what is still missing before the draft may be
// submitted.
func (d *Draft) Requirements() utils.FlagSet[Requirement] {
	var missing utils.FlagSet[Requirement]
	rule := d.Rule()
	if rule != nil && rule.VideoRequired && d.VideoID == "" {
		missing.Set(RequireVideo)
	}
	if rule != nil && rule.NoteRequired && d.Note == "" {
		missing.Set(RequireNote)
	}
	if len(d.Difficulties) == 0 {
		missing.Set(RequireDifficulty)
	}
	return missing
}

// OpenDifficultyPicker moves the draft into the picker matching its demon
// flag.
func (d *Draft) OpenDifficultyPicker() {
	if d.Demon {
		d.State = StatePickingDemonDifficulty
	} else {
		d.State = StatePickingDifficulty
	}
}

// ToggleDemon switches between the demon and non-demon pickers, clearing
// the chosen difficulty set.
func (d *Draft) ToggleDemon() {
	d.Demon = !d.Demon
	d.Difficulties = nil
	d.OpenDifficultyPicker()
}

// TogglePlatformer flips the level kind. Only offered in GDPS mode, where
// no authoritative metadata exists.
func (d *Draft) TogglePlatformer() {
	d.Platformer = !d.Platformer
}

// SetDifficulties commits a picker selection, replacing the difficulty set
// wholesale, and returns to the idle surface.
func (d *Draft) SetDifficulties(difficulties []int) {
	d.Difficulties = difficulties
	d.State = StateIdle
}

// SetVideo replaces the showcase video id. Field mutation, no state change.
func (d *Draft) SetVideo(videoID string) {
	d.VideoID = videoID
}

// SetNote replaces the moderator note. Field mutation, no state change.
func (d *Draft) SetNote(note string) {
	d.Note = note
}

// VideoURL returns the full watch URL, or "" without a video.
func (d *Draft) VideoURL() string {
	if d.VideoID == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + d.VideoID
}

// VideoThumbnailURL returns the video thumbnail, or "" without a video.
func (d *Draft) VideoThumbnailURL() string {
	if d.VideoID == "" {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", d.VideoID)
}
