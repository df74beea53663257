package level

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierID(t *testing.T) {
	testCases := []struct {
		difficulty int
		want       string
	}{
		{1, "auto"},
		{2, "easy"},
		{3, "normal"},
		{4, "hard"},
		{5, "hard"},
		{6, "harder"},
		{7, "harder"},
		{8, "insane"},
		{9, "insane"},
		{10, "easy_demon"},
		{11, "medium_demon"},
		{12, "hard_demon"},
		{13, "insane_demon"},
		{14, "extreme_demon"},
		{0, "unknown"},
		{15, "unknown"},
	}
	for _, c := range testCases {
		assert.Equal(t, c.want, TierID(c.difficulty))
	}
}

func TestTierLabel(t *testing.T) {
	assert.Equal(t, "Hard", TierLabel(4))
	assert.Equal(t, "Easy Demon", TierLabel(10))
	assert.Equal(t, "Extreme Demon", TierLabel(14))
}

func TestDifficultySummaryEmpty(t *testing.T) {
	assert.Equal(t, "", DifficultySummary(false, nil))
	assert.Equal(t, "", DifficultySummary(true, nil))
}

func TestDifficultySummarySingle(t *testing.T) {
	// A single non-demon value carries its own star reward.
	want := fmt.Sprintf("%s %s5", Emoji("hard"), Emoji("star"))
	assert.Equal(t, want, DifficultySummary(false, []int{5}))
}

func TestDifficultySummaryMulti(t *testing.T) {
	want := fmt.Sprintf("%s%s%s %s3~8", Emoji("normal"), Emoji("hard"), Emoji("insane"), Emoji("star"))
	assert.Equal(t, want, DifficultySummary(false, []int{3, 5, 8}))

	// Order-independent, duplicate tiers rendered once.
	assert.Equal(t, DifficultySummary(false, []int{3, 5, 8}), DifficultySummary(false, []int{8, 3, 5}))
	assert.Equal(t, DifficultySummary(false, []int{4, 5}), DifficultySummary(false, []int{5, 4, 4}))
}

func TestDifficultySummaryDemon(t *testing.T) {
	// Demon sets always carry the fixed ten-star reward.
	want := fmt.Sprintf("%s%s %s10", Emoji("easy_demon"), Emoji("extreme_demon"), Emoji("star"))
	assert.Equal(t, want, DifficultySummary(true, []int{14, 10}))

	// Values outside the tier table fall back to the hard demon face.
	want = fmt.Sprintf("%s %s10", Emoji("hard_demon"), Emoji("star"))
	assert.Equal(t, want, DifficultySummary(true, []int{0}))
}

func TestClassify(t *testing.T) {
	assert.Same(t, Classic, Classify(false, false))
	assert.Same(t, ClassicDemon, Classify(false, true))
	assert.Same(t, Platformer, Classify(true, false))
	assert.Same(t, PlatformerDemon, Classify(true, true))
}
