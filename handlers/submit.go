package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"gdrequest/bot"
	"gdrequest/database"
	"gdrequest/level"
	"gdrequest/request"
	"gdrequest/submission"
	"gdrequest/utils"
	"gdrequest/window"
)

const (
	msgInvalidLevelID    = "Please enter a valid positive level ID."
	msgLevelNotFound     = "No level with that ID exists."
	msgLevelNotFoundGDPS = "No level with that ID exists. IDs below 1,000,000 usually belong to a private server; ask a moderator to enable GDPS mode if this server uses one."
	msgServerDown        = "The Geometry Dash servers did not respond, please try again later."
	msgLevelRated        = "This level is already rated, there is nothing to request."
	msgInvalidVideo      = "That does not look like a YouTube link. Please paste a full video URL."
	msgAnswerRequired    = "Please answer the server's question to submit."
	msgSubmitted         = "Your request has been submitted! Its ID is `#%d`."
)

const gdpsLevelIDThreshold = 1_000_000

// handleSubmitCommand runs the eligibility gate and opens the submit modal.
// It serves both the /request-submit command and the panel button.
func handleSubmitCommand(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Member == nil {
			respondEphemeral(s, i, msgGuildOnly)
			return
		}

		cfg, err := database.GetOrCreateGuildConfig(b.DB, i.GuildID)
		if err != nil {
			utils.Error("submit", "load-config", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		user, err := database.GetOrCreateUser(b.DB, i.Member.User.ID)
		if err != nil {
			utils.Error("submit", "load-user", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}

		if block := submission.CheckEligibility(cfg, user, i.Member.Roles, nil, time.Now(), channelChecker(s)); block != nil {
			respondEphemeral(s, i, block.Message)
			return
		}

		rows := []discordgo.MessageComponent{
			textInputRow(discordgo.TextInput{
				CustomID:    "level-id",
				Label:       "Level ID",
				Style:       discordgo.TextInputShort,
				Placeholder: "e.g. 128",
				Required:    true,
				MaxLength:   16,
			}),
		}
		if cfg.GDPSMode {
			rows = append(rows, textInputRow(discordgo.TextInput{
				CustomID:  "level-name",
				Label:     "Level Name",
				Style:     discordgo.TextInputShort,
				Required:  true,
				MaxLength: 64,
			}))
		}
		if cfg.ExtraQuestionEnabled && cfg.ExtraQuestionText != "" {
			rows = append(rows, textInputRow(discordgo.TextInput{
				CustomID:  "extra-answer",
				Label:     cfg.ExtraQuestionText,
				Style:     discordgo.TextInputParagraph,
				Required:  cfg.ExtraQuestionRequired,
				MaxLength: 512,
			}))
		}

		openModal(s, i, &discordgo.InteractionResponseData{
			CustomID:   "submit-start",
			Title:      "Submit a level request",
			Components: rows,
		})
	}
}

// handleSubmitModal validates the modal input, fetches the level metadata
// and opens the draft editing surface.
func handleSubmitModal(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		data := i.ModalSubmitData()

		cfg, err := database.GetOrCreateGuildConfig(b.DB, i.GuildID)
		if err != nil {
			utils.Error("submit", "load-config", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}

		levelID, err := strconv.ParseInt(strings.TrimSpace(modalValue(data, "level-id")), 10, 64)
		if err != nil || levelID <= 0 {
			respondEphemeral(s, i, msgInvalidLevelID)
			return
		}

		extraAnswer := strings.TrimSpace(modalValue(data, "extra-answer"))
		if cfg.ExtraQuestionEnabled && cfg.ExtraQuestionRequired && extraAnswer == "" {
			respondEphemeral(s, i, msgAnswerRequired)
			return
		}

		if existing, err := database.FindActiveRequest(b.DB, i.GuildID, levelID); err != nil {
			utils.Error("submit", "duplicate-check", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		} else if existing != nil {
			content := fmt.Sprintf("This level was already requested (`#%d`).", existing.ID)
			if existing.UserID == i.Member.User.ID {
				if reviews := request.ReviewLines(existing); reviews != "" {
					content += "\nIts reviews so far:\n" + reviews
				}
			}
			respondEphemeral(s, i, content)
			return
		}

		var snapshot *level.Snapshot
		levelName := strings.TrimSpace(modalValue(data, "level-name"))
		if !cfg.GDPSMode {
			snapshot, err = b.Levels.Fetch(context.Background(), levelID)
			switch {
			case errors.Is(err, level.ErrLevelNotFound):
				if levelID < gdpsLevelIDThreshold {
					respondEphemeral(s, i, msgLevelNotFoundGDPS)
				} else {
					respondEphemeral(s, i, msgLevelNotFound)
				}
				return
			case err != nil:
				utils.Warn("submit", "level-fetch", err.Error())
				respondEphemeral(s, i, msgServerDown)
				return
			}
			if snapshot.Rated {
				respondEphemeral(s, i, msgLevelRated)
				return
			}
			levelName = snapshot.Name
		}
		if levelName == "" {
			levelName = fmt.Sprintf("Level %d", levelID)
		}

		draft := submission.NewDraft(i.Member.User.ID, i.GuildID, levelID, levelName, snapshot, cfg)
		draft.ExtraAnswer = extraAnswer
		b.Drafts.Put(draft)

		respond(s, i, draft.Render(), true)
	}
}

// loadDraft resolves the draft addressed by a component custom id. A nil
// draft means the response has already been sent.
func loadDraft(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, customID string) *submission.Draft {
	parts := customIDParts(customID)
	if len(parts) < 2 {
		return nil
	}
	draft, err := b.Drafts.Get(parts[1])
	if err != nil {
		updateMessage(s, i, &discordgo.InteractionResponseData{
			Content:    msgSessionExpired,
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		})
		return nil
	}
	return draft
}

func rerenderDraft(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, draft *submission.Draft) {
	b.Drafts.Put(draft)
	updateMessage(s, i, draft.Render())
}

func handleDraftTypeToggle(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		draft := loadDraft(b, s, i, i.MessageComponentData().CustomID)
		if draft == nil {
			return
		}
		draft.TogglePlatformer()
		rerenderDraft(b, s, i, draft)
	}
}

// handleDraftDifficulty serves both the idle button (opens the picker) and
// the picker select (commits the chosen tiers); they share a custom id.
func handleDraftDifficulty(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		data := i.MessageComponentData()
		draft := loadDraft(b, s, i, data.CustomID)
		if draft == nil {
			return
		}
		if len(data.Values) == 0 {
			draft.OpenDifficultyPicker()
		} else {
			var difficulties []int
			for _, value := range data.Values {
				if difficulty, err := strconv.Atoi(value); err == nil {
					difficulties = append(difficulties, difficulty)
				}
			}
			draft.SetDifficulties(difficulties)
		}
		rerenderDraft(b, s, i, draft)
	}
}

func handleDraftDifficultyToggle(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		draft := loadDraft(b, s, i, i.MessageComponentData().CustomID)
		if draft == nil {
			return
		}
		draft.ToggleDemon()
		rerenderDraft(b, s, i, draft)
	}
}

func handleDraftVideoButton(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		draft := loadDraft(b, s, i, i.MessageComponentData().CustomID)
		if draft == nil {
			return
		}
		openModal(s, i, &discordgo.InteractionResponseData{
			CustomID: "submit-video:" + draft.Key(),
			Title:    "Showcase video",
			Components: []discordgo.MessageComponent{
				textInputRow(discordgo.TextInput{
					CustomID:    "video-url",
					Label:       "YouTube link",
					Style:       discordgo.TextInputShort,
					Placeholder: "https://youtu.be/...",
					Value:       draft.VideoURL(),
					Required:    false,
					MaxLength:   128,
				}),
			},
		})
	}
}

func handleDraftVideoModal(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		data := i.ModalSubmitData()
		draft := loadDraft(b, s, i, data.CustomID)
		if draft == nil {
			return
		}
		url := strings.TrimSpace(modalValue(data, "video-url"))
		if url == "" {
			draft.SetVideo("")
			rerenderDraft(b, s, i, draft)
			return
		}
		videoID := utils.YouTubeVideoID(url)
		if videoID == "" {
			respondEphemeral(s, i, msgInvalidVideo)
			return
		}
		draft.SetVideo(videoID)
		rerenderDraft(b, s, i, draft)
	}
}

func handleDraftNoteButton(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		draft := loadDraft(b, s, i, i.MessageComponentData().CustomID)
		if draft == nil {
			return
		}
		openModal(s, i, &discordgo.InteractionResponseData{
			CustomID: "submit-note:" + draft.Key(),
			Title:    "Note to the moderators",
			Components: []discordgo.MessageComponent{
				textInputRow(discordgo.TextInput{
					CustomID:  "note",
					Label:     "Note",
					Style:     discordgo.TextInputParagraph,
					Value:     draft.Note,
					Required:  false,
					MaxLength: 512,
				}),
			},
		})
	}
}

func handleDraftNoteModal(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		data := i.ModalSubmitData()
		draft := loadDraft(b, s, i, data.CustomID)
		if draft == nil {
			return
		}
		draft.SetNote(strings.TrimSpace(modalValue(data, "note")))
		rerenderDraft(b, s, i, draft)
	}
}

// handleDraftConfirm re-runs the gate against fresh state, persists the
// request, posts it to the category's channel and consumes one window slot.
func handleDraftConfirm(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		draft := loadDraft(b, s, i, i.MessageComponentData().CustomID)
		if draft == nil {
			return
		}
		if !draft.Requirements().Empty() {
			rerenderDraft(b, s, i, draft)
			return
		}

		now := time.Now()
		cfg, err := database.GetOrCreateGuildConfig(b.DB, draft.GuildID)
		if err != nil {
			utils.Error("submit", "load-config", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		draft.Config = cfg
		user, err := database.GetOrCreateUser(b.DB, draft.UserID)
		if err != nil {
			utils.Error("submit", "load-user", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}

		if block := submission.CheckEligibility(cfg, user, i.Member.Roles, draft.Category(), now, channelChecker(s)); block != nil {
			updateMessage(s, i, &discordgo.InteractionResponseData{
				Content:    block.Message,
				Embeds:     []*discordgo.MessageEmbed{},
				Components: []discordgo.MessageComponent{},
			})
			return
		}

		req, err := request.Create(b.DB, draft, now)
		if err != nil {
			utils.Error("submit", "create-request", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}

		summary := request.Summary(req)
		rule := draft.Rule()
		if _, err := s.ChannelMessageSendComplex(rule.ChannelID, &discordgo.MessageSend{
			Embeds:     summary.Embeds,
			Components: summary.Components,
		}); err != nil {
			utils.Error("submit", "post-request", err.Error())
		}

		if err := window.RecordSubmission(b.DB, cfg, bot.ChannelNotifier(s)); err != nil {
			utils.Error("submit", "record-submission", err.Error())
		}
		if err := database.SetLastSubmit(b.DB, draft.UserID, draft.GuildID, now.UnixMilli()); err != nil {
			utils.Error("submit", "set-last-submit", err.Error())
		}
		b.Drafts.Remove(draft.Key())

		updateMessage(s, i, &discordgo.InteractionResponseData{
			Content:    fmt.Sprintf(msgSubmitted, req.ID),
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		})
	}
}
