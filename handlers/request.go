package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"gdrequest/bot"
	"gdrequest/database"
	"gdrequest/request"
	"gdrequest/utils"
)

// handleRequestCommand serves /request get and /request allow-resubmit.
func handleRequestCommand(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Member == nil {
			respondEphemeral(s, i, msgGuildOnly)
			return
		}
		cfg, err := database.GetOrCreateGuildConfig(b.DB, i.GuildID)
		if err != nil {
			utils.Error("request", "load-config", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		if !isModerator(cfg, i.Member) {
			respondEphemeral(s, i, msgModeratorOnly)
			return
		}

		sub := i.ApplicationCommandData().Options[0]
		requestID := optionMap(sub.Options)["id"].IntValue()

		req, err := database.GetRequest(b.DB, requestID)
		if err != nil {
			utils.Error("request", "load-request", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		if req == nil || req.GuildID != i.GuildID {
			respondEphemeral(s, i, msgRequestNotFound)
			return
		}

		switch sub.Name {
		case "get":
			respond(s, i, request.Summary(req), true)
		case "allow-resubmit":
			if err := database.AllowResubmit(b.DB, req.ID); err != nil {
				utils.Error("request", "allow-resubmit", err.Error())
				respondEphemeral(s, i, msgSomethingWrong)
				return
			}
			respondEphemeral(s, i, fmt.Sprintf("Level `%d` can be submitted again.", req.LevelID))
		}
	}
}
