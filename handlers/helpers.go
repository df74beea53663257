package handlers

import (
	"github.com/bwmarrin/discordgo"

	"gdrequest/models"
	"gdrequest/submission"
	"gdrequest/utils"
)

const (
	msgGuildOnly       = "This command can only be used inside a server."
	msgModeratorOnly   = "You need the moderator role to do that."
	msgManageGuildOnly = "You need the Manage Server permission to do that."
	msgSomethingWrong  = "Something went wrong, please try again later."
	msgSessionExpired  = "This submission session has expired. Run /request-submit to start over."
	msgRequestNotFound = "No request with that ID exists on this server."
)

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	respond(s, i, &discordgo.InteractionResponseData{Content: content}, true)
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData, ephemeral bool) {
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		utils.Error("handlers", "respond", err.Error())
	}
}

// updateMessage replaces the message the interaction originated from. Only
// valid for component interactions and modals launched from one.
func updateMessage(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: data,
	})
	if err != nil {
		utils.Error("handlers", "update-message", err.Error())
	}
}

func openModal(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: data,
	})
	if err != nil {
		utils.Error("handlers", "open-modal", err.Error())
	}
}

// optionMap indexes a (sub)command's options by name.
func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// modalValue extracts a text input's value by its custom id, "" when absent.
func modalValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			if input, ok := component.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

func textInputRow(input discordgo.TextInput) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{input}}
}

// isModerator reports whether the member may review requests and drive the
// submission window: the configured moderator role, or Manage Server as a
// fallback so a fresh guild is not locked out.
func isModerator(cfg *models.GuildConfig, member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	if cfg.ModeratorRoleID != "" {
		for _, roleID := range member.Roles {
			if roleID == cfg.ModeratorRoleID {
				return true
			}
		}
	}
	return canManageGuild(member)
}

func canManageGuild(member *discordgo.Member) bool {
	return member != nil && member.Permissions&(discordgo.PermissionManageGuild|discordgo.PermissionAdministrator) != 0
}

// channelChecker adapts the Discord session to the eligibility gate's
// destination-channel contract.
func channelChecker(s *discordgo.Session) submission.ChannelChecker {
	return func(channelID string) error {
		channel, err := s.State.Channel(channelID)
		if err != nil {
			channel, err = s.Channel(channelID)
		}
		if err != nil {
			return submission.ErrChannelNotFound
		}
		if channel.Type != discordgo.ChannelTypeGuildText {
			return submission.ErrChannelNotText
		}
		perms, err := s.State.UserChannelPermissions(s.State.User.ID, channelID)
		if err != nil {
			return submission.ErrChannelNotFound
		}
		needed := int64(discordgo.PermissionViewChannel | discordgo.PermissionSendMessages)
		if perms&needed != needed {
			return submission.ErrChannelNoSend
		}
		return nil
	}
}
