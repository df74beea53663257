package request

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"gdrequest/level"
	"gdrequest/models"
)

const (
	colorRed    = 0xed4245
	colorGreen  = 0x57f287
	colorYellow = 0xfee75c
)

func stateDescription(state int) string {
	switch state {
	case models.StateRated:
		return "This level has been rated in the meantime."
	case models.StateStolen:
		return "This level was reported as stolen."
	case models.StateNotFound:
		return "This level no longer exists."
	default:
		return ""
	}
}

// ReviewLines renders up to the 5 most recent reviews plus an overflow
// counter, or "" when there are none.
func ReviewLines(req *models.Request) string {
	var lines []string
	for i, review := range req.Reviews {
		if i == 5 {
			break
		}
		line := fmt.Sprintf("- %s <@%s> <t:%d:R>", OutcomeOf(review.Outcome).Emoji(), review.ReviewerID, review.ReviewedAt/1000)
		if review.MessageURL != "" {
			line += " > " + review.MessageURL
		}
		lines = append(lines, line)
	}
	if overflow := len(req.Reviews) - 5; overflow > 0 {
		lines = append(lines, fmt.Sprintf("- and %d reviews more...", overflow))
	}
	return strings.Join(lines, "\n")
}

// Summary renders the moderator-facing request descriptor: the request
// embed plus the review select menus while the request is still Ready.
func Summary(req *models.Request) *discordgo.InteractionResponseData {
	difficulty := level.DifficultySummary(req.Demon, req.Difficulties)
	if difficulty == "" {
		// Migrated pre-review-system requests only carry a single label.
		difficulty = req.LegacyDifficulty
	}
	if difficulty == "" {
		difficulty = "None"
	}
	kind := " (Classic)"
	if req.Platformer {
		kind = " (Platformer)"
	}

	color := colorYellow
	if req.State != models.StateReady {
		color = colorRed
	} else if len(req.Reviews) > 0 {
		color = colorGreen
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s (`%d`)", req.LevelName, req.LevelID),
		Description: stateDescription(req.State),
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Request ID: #%d", req.ID)},
	}
	if !req.GDPS {
		embed.URL = fmt.Sprintf("https://gdbrowser.com/%d", req.LevelID)
	}
	if req.VideoID != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{
			URL: fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", req.VideoID),
		}
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Level ID", Value: fmt.Sprintf("%d", req.LevelID), Inline: true})
	if req.LevelDescription != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Level Description", Value: req.LevelDescription})
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Submitted by", Value: fmt.Sprintf("<@%s>", req.UserID), Inline: true},
		&discordgo.MessageEmbedField{Name: "Difficulty & Type", Value: difficulty + kind, Inline: true},
	)
	if req.VideoID != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Video",
			Value:  fmt.Sprintf("[%s YouTube](https://www.youtube.com/watch?v=%s)", level.Emoji("youtube"), req.VideoID),
			Inline: true,
		})
	}
	if req.Note != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Note", Value: req.Note, Inline: true})
	}
	if req.ExtraAnswer != "" {
		question := req.ExtraQuestion
		if question == "" {
			question = "???"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: question, Value: req.ExtraAnswer, Inline: true})
	}
	reviews := ReviewLines(req)
	if reviews == "" {
		reviews = "None"
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Review(s)", Value: reviews})

	var components []discordgo.MessageComponent
	if req.State == models.StateReady {
		components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				outcomeMenu(fmt.Sprintf("review-sent:%d", req.ID), "⭐ Select your sent type in here...", SentOutcomes),
			}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				outcomeMenu(fmt.Sprintf("review-reject:%d", req.ID), "❌ Select your reject type in here...", RejectOutcomes),
			}},
		}
	}

	return &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}
}

func outcomeMenu(customID, placeholder string, outcomes []*Outcome) discordgo.SelectMenu {
	var options []discordgo.SelectMenuOption
	for _, outcome := range outcomes {
		option := discordgo.SelectMenuOption{
			Label: outcome.Title,
			Value: fmt.Sprintf("%d", outcome.ID),
			Emoji: &discordgo.ComponentEmoji{Name: outcome.Emoji()},
		}
		if outcome.Terminal() {
			option.Description = "Closes the request for everyone."
		}
		options = append(options, option)
	}
	return discordgo.SelectMenu{
		CustomID:    customID,
		Placeholder: placeholder,
		Options:     options,
	}
}
