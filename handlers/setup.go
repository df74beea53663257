package handlers

import (
	"github.com/bwmarrin/discordgo"

	"gdrequest/bot"
	"gdrequest/level"
	"gdrequest/utils"
)

const defaultPanelText = "Press the button below to request your Geometry Dash level."

// handleSetupCommand posts the submission panel to the current channel.
func handleSetupCommand(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Member == nil {
			respondEphemeral(s, i, msgGuildOnly)
			return
		}
		if !canManageGuild(i.Member) {
			respondEphemeral(s, i, msgManageGuildOnly)
			return
		}

		text := defaultPanelText
		if opt, ok := optionMap(i.ApplicationCommandData().Options)["text"]; ok {
			text = opt.StringValue()
		}

		_, err := s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
			Content: text,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{
						CustomID: "submit",
						Label:    "Submit a level request",
						Style:    discordgo.PrimaryButton,
						Emoji:    &discordgo.ComponentEmoji{Name: level.Emoji("star")},
					},
				}},
			},
		})
		if err != nil {
			utils.Error("setup", "post-panel", err.Error())
			respondEphemeral(s, i, "Could not post the panel here. Does the bot have permission to send messages in this channel?")
			return
		}
		respondEphemeral(s, i, "The request panel has been posted.")
	}
}
