package request

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdrequest/models"
)

func renderedRequest(reviewCount int) *models.Request {
	req := &models.Request{
		ID:           7,
		UserID:       "u1",
		GuildID:      "g1",
		LevelID:      128,
		LevelName:    "Stereo Madness",
		Difficulties: []int{5},
		State:        models.StateReady,
		CreatedAt:    1700000000000,
	}
	for n := reviewCount; n >= 1; n-- {
		req.Reviews = append(req.Reviews, models.Review{
			ReviewerID: fmt.Sprintf("mod%d", n),
			Outcome:    Sent.ID,
			ReviewedAt: int64(n) * 1000,
		})
	}
	return req
}

func embedField(embed *discordgo.MessageEmbed, name string) *discordgo.MessageEmbedField {
	for _, field := range embed.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

func TestReviewLinesCapsAtFiveNewest(t *testing.T) {
	req := renderedRequest(7)

	lines := strings.Split(ReviewLines(req), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "- and 2 reviews more...", lines[5])
	// Newest first; the two oldest reviewers are folded into the counter.
	assert.Contains(t, lines[0], "<@mod7>")
	assert.Contains(t, lines[4], "<@mod3>")
	for _, line := range lines[:5] {
		assert.NotContains(t, line, "<@mod1>")
		assert.NotContains(t, line, "<@mod2>")
	}
}

func TestReviewLinesNoOverflowAtFive(t *testing.T) {
	assert.Equal(t, "", ReviewLines(renderedRequest(0)))

	lines := strings.Split(ReviewLines(renderedRequest(5)), "\n")
	require.Len(t, lines, 5)
	assert.NotContains(t, lines[4], "reviews more")
}

func TestReviewLinesLinksResultMessage(t *testing.T) {
	req := renderedRequest(1)
	req.Reviews[0].MessageURL = "https://discord.com/channels/1/2/3"

	assert.Contains(t, ReviewLines(req), "> https://discord.com/channels/1/2/3")
}

func TestSummaryLegacyDifficultyFallback(t *testing.T) {
	req := renderedRequest(0)
	req.Difficulties = nil
	req.LegacyDifficulty = "Insane"

	field := embedField(Summary(req).Embeds[0], "Difficulty & Type")
	require.NotNil(t, field)
	assert.Equal(t, "Insane (Classic)", field.Value)
}

func TestSummaryReviewMenusOnlyWhileReady(t *testing.T) {
	req := renderedRequest(2)

	data := Summary(req)
	assert.Len(t, data.Components, 2)

	req.State = models.StateRated
	data = Summary(req)
	assert.Empty(t, data.Components)
}
