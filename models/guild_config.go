package models

// Default templates for the guild-customizable messages. Placeholders are
// substituted at render time: {endTime} and {type}.
const (
	DefaultMessageRequestClosed  = "Level requests are currently closed on this server."
	DefaultMessageDuringCooldown = "You are still on cooldown. You can submit your next request {endTime}."
	DefaultMessageTypeDisabled   = "{type} requests are disabled on this server."
)

// CategoryRule holds a guild's settings for one of the four level categories.
type CategoryRule struct {
	Enabled       bool
	ChannelID     string
	VideoRequired bool
	NoteRequired  bool
}

// GuildConfig is the per-guild configuration document. It is created lazily
// on first access and never deleted.
type GuildConfig struct {
	GuildID              string
	GDPSMode             bool
	ModeratorRoleID      string
	WhitelistRoleID      string
	BlockedRoleID        string
	CooldownBypassRoleID string

	// Window state. OpenUntil is unix milliseconds; 0 means closed and
	// math.MaxInt64 means open with no time bound.
	OpenUntil      int64
	RemainRequests int
	CloseAnnounced bool

	// Cooldown between submissions, in milliseconds.
	Cooldown int64

	ExtraQuestionEnabled  bool
	ExtraQuestionRequired bool
	ExtraQuestionText     string

	NotifyOpenChannelID  string
	NotifyCloseChannelID string
	SentChannelID        string
	RejectChannelID      string

	MessageTypeDisabled   string
	MessageRequestClosed  string
	MessageDuringCooldown string

	// Set by the data migration; blocks submissions until a moderator
	// acknowledges the migrated configuration.
	MigrateCheck bool

	// Rules is keyed by the category rule key ("classic.normal", ...).
	Rules map[string]*CategoryRule
}
