package handlers

import (
	"github.com/bwmarrin/discordgo"

	"gdrequest/bot"
)

const repositoryURL = "https://github.com/gdrequest/gdrequest"

func aboutResponse(avatarURL string) *discordgo.InteractionResponseData {
	embed := &discordgo.MessageEmbed{
		Title:       "GD Request Helper",
		Description: "Manage your Geometry Dash level requests easily and conveniently!",
	}
	if avatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: avatarURL}
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Style: discordgo.LinkButton,
					URL:   repositoryURL,
					Label: "GitHub Repository",
				},
			}},
		},
	}
}

func helpResponse() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{{
			Title: "Guide for setup",
			Fields: []*discordgo.MessageEmbedField{
				{
					Name: "How to setup",
					Value: "1. Pick the request categories with `/config category` and point each one at a channel.\n" +
						"2. Set the result channels with `/config result-channel` so reviews land somewhere.\n" +
						"3. Post the submit panel with `/setup`, or let members use `/request-submit`.\n" +
						"4. Open submissions with `/request-open`.",
				},
				{
					Name:  "I'm using this bot for my GDPS server.",
					Value: "Turn on `/config gdps` to skip the official server lookup. Members then enter the level name themselves.",
				},
			},
		}},
	}
}

// handleAboutCommand shows static bot information.
func handleAboutCommand(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		avatarURL := ""
		if s.State.User != nil {
			avatarURL = s.State.User.AvatarURL("")
		}
		respond(s, i, aboutResponse(avatarURL), false)
	}
}

// handleHelpCommand shows the setup guide.
func handleHelpCommand(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		respond(s, i, helpResponse(), false)
	}
}
