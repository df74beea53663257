package level

var defaultEmoji = map[string]string{
	"auto":           "⚪",
	"easy":           "🟢",
	"normal":         "🔵",
	"hard":           "🟡",
	"harder":         "🟠",
	"insane":         "🟣",
	"easy_demon":     "👿",
	"medium_demon":   "😈",
	"hard_demon":     "👹",
	"insane_demon":   "💀",
	"extreme_demon":  "🔥",
	"star":           "⭐",
	"moon":           "🌙",
	"star_demon":     "🌟",
	"moon_demon":     "🌑",
	"youtube":        "🎬",
	"cp":             "📝",
	"allow":          "✅",
	"deny":           "❌",
	"sent_normal":    "📨",
	"sent_featured":  "✨",
	"sent_epic":      "🌠",
	"sent_legendary": "🏆",
	"sent_mythic":    "💎",
	"reject_normal":  "❌",
	"reject_sent":    "📪",
	"reject_rated":   "⚠️",
	"reject_stolen":  "🕵️",
	"reject_none":    "❓",
}

var emojiOverrides map[string]string

// SetEmojiOverrides installs server-emoji markup (e.g. "<:hard:1234...>")
// loaded from config, replacing the unicode defaults per key.
func SetEmojiOverrides(overrides map[string]string) {
	emojiOverrides = overrides
}

// Emoji resolves an emoji id to its display form. Unknown ids resolve to "".
func Emoji(id string) string {
	if value, ok := emojiOverrides[id]; ok && value != "" {
		return value
	}
	return defaultEmoji[id]
}
