package handlers

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"gdrequest/bot"
	"gdrequest/database"
	"gdrequest/utils"
	"gdrequest/window"
)

const (
	msgInvalidDuration = "Could not read that duration. Use something like `2d 12h` or `30m`, up to one year."
	msgWindowClosed    = "The submission window is closed now."
)

// maxDurationMs bounds user-supplied durations (cooldown, window time) to
// one year.
const maxDurationMs = int64(365 * 24 * time.Hour / time.Millisecond)

// parseBoundedDuration parses a user-supplied d/h/m/s duration and rejects
// anything over the one-year bound. A parsed zero (like "0s") is valid;
// callers that need a positive duration check for that themselves.
func parseBoundedDuration(text string) (int64, bool) {
	ms, ok := utils.ParseDHMSDuration(text)
	if !ok || ms < 0 || ms > maxDurationMs {
		return 0, false
	}
	return ms, true
}

// handleOpenCommand opens the submission window with the bounds of the
// chosen subcommand.
func handleOpenCommand(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Member == nil {
			respondEphemeral(s, i, msgGuildOnly)
			return
		}
		cfg, err := database.GetOrCreateGuildConfig(b.DB, i.GuildID)
		if err != nil {
			utils.Error("window", "load-config", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		if !isModerator(cfg, i.Member) {
			respondEphemeral(s, i, msgModeratorOnly)
			return
		}

		sub := i.ApplicationCommandData().Options[0]
		options := optionMap(sub.Options)

		closeAt := window.NoTimeBound
		closeAfter := 0
		if opt, ok := options["count"]; ok {
			closeAfter = int(opt.IntValue())
		}
		if opt, ok := options["duration"]; ok {
			ms, ok := parseBoundedDuration(opt.StringValue())
			if !ok || ms <= 0 {
				respondEphemeral(s, i, msgInvalidDuration)
				return
			}
			closeAt = time.Now().UnixMilli() + ms
		}
		if sub.Name != "manual" && closeAt == window.NoTimeBound && closeAfter <= 0 {
			respondEphemeral(s, i, window.ErrNothingToCloseOn.Error())
			return
		}

		conditions, err := window.Open(b.DB, cfg, closeAt, closeAfter, i.Member.User.ID, bot.ChannelNotifier(s))
		if err != nil {
			utils.Error("window", "open", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		respondEphemeral(s, i, "The submission window is open now. Closes: "+strings.Join(conditions, " or "))
	}
}

// handleCloseCommand closes the window immediately.
func handleCloseCommand(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Member == nil {
			respondEphemeral(s, i, msgGuildOnly)
			return
		}
		cfg, err := database.GetOrCreateGuildConfig(b.DB, i.GuildID)
		if err != nil {
			utils.Error("window", "load-config", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		if !isModerator(cfg, i.Member) {
			respondEphemeral(s, i, msgModeratorOnly)
			return
		}

		if err := window.Close(b.DB, cfg, window.ReasonManual, i.Member.User.ID, bot.ChannelNotifier(s)); err != nil {
			utils.Error("window", "close", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		respondEphemeral(s, i, msgWindowClosed)
	}
}
