package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"gdrequest/bot"
	"gdrequest/database"
	"gdrequest/models"
	"gdrequest/request"
	"gdrequest/utils"
)

const (
	msgNoResultChannel      = "No %s channel is configured. Set one with /config result-channel first."
	msgInvalidResultChannel = "The configured %s channel is missing or the bot cannot post there. Fix it with /config result-channel."
)

func resultChannelName(outcome *request.Outcome) string {
	if outcome.IsSent() {
		return "sent results"
	}
	return "reject results"
}

func resultChannelID(cfg *models.GuildConfig, outcome *request.Outcome) string {
	if outcome.IsSent() {
		return cfg.SentChannelID
	}
	return cfg.RejectChannelID
}

// handleReviewSelect validates the chosen verdict and opens the review
// modal. Both the sent and the reject menu land here.
func handleReviewSelect(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		data := i.MessageComponentData()
		parts := customIDParts(data.CustomID)
		if len(parts) < 2 || len(data.Values) == 0 {
			return
		}
		requestID, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return
		}
		outcomeID, err := strconv.Atoi(data.Values[0])
		if err != nil {
			return
		}
		outcome := request.OutcomeOf(outcomeID)

		req, err := database.GetRequest(b.DB, requestID)
		if err != nil {
			utils.Error("review", "load-request", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		if req == nil || req.GuildID != i.GuildID {
			respondEphemeral(s, i, msgRequestNotFound)
			return
		}

		cfg, err := database.GetOrCreateGuildConfig(b.DB, i.GuildID)
		if err != nil {
			utils.Error("review", "load-config", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		if !isModerator(cfg, i.Member) {
			respondEphemeral(s, i, msgModeratorOnly)
			return
		}

		// Another reviewer may have closed the request since the menus were
		// rendered; refresh the message instead of erroring at them.
		if req.State != models.StateReady {
			updateMessage(s, i, request.Summary(req))
			return
		}

		channelID := resultChannelID(cfg, outcome)
		if channelID == "" {
			respondEphemeral(s, i, fmt.Sprintf(msgNoResultChannel, resultChannelName(outcome)))
			return
		}
		if err := channelChecker(s)(channelID); err != nil {
			respondEphemeral(s, i, fmt.Sprintf(msgInvalidResultChannel, resultChannelName(outcome)))
			return
		}

		openModal(s, i, &discordgo.InteractionResponseData{
			CustomID: fmt.Sprintf("review:%d:%d", req.ID, outcome.ID),
			Title:    outcome.Title,
			Components: []discordgo.MessageComponent{
				textInputRow(discordgo.TextInput{
					CustomID:  "note",
					Label:     "Note to the requester",
					Style:     discordgo.TextInputParagraph,
					Required:  false,
					MaxLength: 1024,
				}),
				textInputRow(discordgo.TextInput{
					CustomID:    "image-url",
					Label:       "Image URL",
					Style:       discordgo.TextInputShort,
					Placeholder: "Optional screenshot to attach",
					Required:    false,
					MaxLength:   256,
				}),
			},
		})
	}
}

// handleReviewModal records the verdict, posts the result embed and
// refreshes the request message.
func handleReviewModal(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		data := i.ModalSubmitData()
		parts := customIDParts(data.CustomID)
		if len(parts) < 3 {
			return
		}
		requestID, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return
		}
		outcomeID, err := strconv.Atoi(parts[2])
		if err != nil {
			return
		}
		outcome := request.OutcomeOf(outcomeID)

		req, err := database.GetRequest(b.DB, requestID)
		if err != nil || req == nil {
			utils.Error("review", "load-request", fmt.Sprintf("request %d: %v", requestID, err))
			respondEphemeral(s, i, msgRequestNotFound)
			return
		}
		cfg, err := database.GetOrCreateGuildConfig(b.DB, i.GuildID)
		if err != nil {
			utils.Error("review", "load-config", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		if !isModerator(cfg, i.Member) {
			respondEphemeral(s, i, msgModeratorOnly)
			return
		}

		note := strings.TrimSpace(modalValue(data, "note"))
		imageURL := strings.TrimSpace(modalValue(data, "image-url"))

		messageURL := ""
		channelID := resultChannelID(cfg, outcome)
		if channelID != "" {
			if msg, err := s.ChannelMessageSendEmbed(channelID, resultEmbed(req, outcome, i.Member.User.ID, note, imageURL)); err != nil {
				utils.Warn("review", "post-result", err.Error())
			} else {
				messageURL = fmt.Sprintf("https://discord.com/channels/%s/%s/%s", i.GuildID, msg.ChannelID, msg.ID)
			}
		}

		if _, err := request.AddReview(b.DB, req, i.Member.User.ID, outcome, note, messageURL, time.Now()); err != nil {
			utils.Error("review", "add-review", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}

		updateMessage(s, i, request.Summary(req))
	}
}

func resultEmbed(req *models.Request, outcome *request.Outcome, reviewerID, note, imageURL string) *discordgo.MessageEmbed {
	color := colorSent
	if !outcome.IsSent() {
		color = colorReject
	}
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s %s", outcome.Emoji(), outcome.Title),
		Description: fmt.Sprintf("%s (`%d`) requested by <@%s>", req.LevelName, req.LevelID, req.UserID),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Reviewed by", Value: fmt.Sprintf("<@%s>", reviewerID), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Request ID: #%d", req.ID)},
	}
	if note != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Note", Value: note})
	}
	if imageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: imageURL}
	}
	return embed
}

const (
	colorSent   = 0x57f287
	colorReject = 0xed4245
)
