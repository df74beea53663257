package level

import (
	"fmt"
	"slices"
	"strings"
)

// TierID maps an ordinal difficulty (1..14) to its tier identifier.
// 1..9 are the non-demon tiers, 10..14 the demon tiers.
func TierID(difficulty int) string {
	switch difficulty {
	case 1:
		return "auto"
	case 2:
		return "easy"
	case 3:
		return "normal"
	case 4, 5:
		return "hard"
	case 6, 7:
		return "harder"
	case 8, 9:
		return "insane"
	case 10:
		return "easy_demon"
	case 11:
		return "medium_demon"
	case 12:
		return "hard_demon"
	case 13:
		return "insane_demon"
	case 14:
		return "extreme_demon"
	default:
		return "unknown"
	}
}

// TierLabel is the human form of a tier id ("easy_demon" -> "Easy Demon").
func TierLabel(difficulty int) string {
	words := strings.Split(TierID(difficulty), "_")
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// DifficultySummary renders the tier icons and star reward for a chosen
// difficulty set. Order-independent; duplicate tiers are rendered once.
// Returns "" for an empty set.
//
// Demon sets always carry the fixed 10-star reward; a single non-demon
// value carries its own value and a multi-value set renders min~max.
func DifficultySummary(isDemon bool, difficulties []int) string {
	if len(difficulties) == 0 {
		return ""
	}

	reward := Emoji("star")
	if isDemon {
		icons := tierIcons(difficulties)
		if icons == "" {
			icons = Emoji("hard_demon")
		}
		return fmt.Sprintf("%s %s10", icons, reward)
	}

	if len(difficulties) == 1 {
		return fmt.Sprintf("%s %s%d", Emoji(TierID(difficulties[0])), reward, difficulties[0])
	}
	return fmt.Sprintf("%s %s%d~%d", tierIcons(difficulties), reward, slices.Min(difficulties), slices.Max(difficulties))
}

// tierIcons joins the distinct tier icons of a difficulty set in ascending
// tier order.
func tierIcons(difficulties []int) string {
	sorted := slices.Clone(difficulties)
	slices.Sort(sorted)

	var b strings.Builder
	seen := make(map[string]bool)
	for _, difficulty := range sorted {
		id := TierID(difficulty)
		if seen[id] {
			continue
		}
		seen[id] = true
		b.WriteString(Emoji(id))
	}
	return b.String()
}
