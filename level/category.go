package level

import "gdrequest/models"

// Category is one of the four fixed level categories. The values are
// singletons; compare them by pointer.
type Category struct {
	Name    string
	RuleKey string // selects the guild's CategoryRule
	EmojiID string
}

var (
	Classic         = &Category{Name: "Classic & Non-Demon", RuleKey: "classic.normal", EmojiID: "star"}
	ClassicDemon    = &Category{Name: "Classic & Demon", RuleKey: "classic.demon", EmojiID: "star_demon"}
	Platformer      = &Category{Name: "Platformer & Non-Demon", RuleKey: "platformer.normal", EmojiID: "moon"}
	PlatformerDemon = &Category{Name: "Platformer & Demon", RuleKey: "platformer.demon", EmojiID: "moon_demon"}
)

// Categories lists all four categories in a stable order.
func Categories() []*Category {
	return []*Category{Classic, ClassicDemon, Platformer, PlatformerDemon}
}

// Classify maps the two level flags to their category.
func Classify(isPlatformer, isDemon bool) *Category {
	if isPlatformer {
		if isDemon {
			return PlatformerDemon
		}
		return Platformer
	}
	if isDemon {
		return ClassicDemon
	}
	return Classic
}

// Rule returns the guild rule governing this category.
func (c *Category) Rule(cfg *models.GuildConfig) *models.CategoryRule {
	return cfg.Rules[c.RuleKey]
}

// Emoji returns the category's display emoji.
func (c *Category) Emoji() string {
	return Emoji(c.EmojiID)
}
