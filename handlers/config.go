package handlers

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"gdrequest/bot"
	"gdrequest/database"
	"gdrequest/level"
	"gdrequest/models"
	"gdrequest/submission"
	"gdrequest/utils"
	"gdrequest/window"
)

// configWarning flags mark configuration problems surfaced by /config show.
type configWarning uint32

const (
	warnNoModeratorRole configWarning = 1 << iota
	warnNoCategoryEnabled
	warnBrokenCategoryChannel
	warnNoSentChannel
	warnNoRejectChannel
	warnMigrateCheck
)

// configWarnings inspects the live configuration, including whether the
// enabled categories' channels are actually usable.
func configWarnings(cfg *models.GuildConfig, check submission.ChannelChecker) utils.FlagSet[configWarning] {
	var warnings utils.FlagSet[configWarning]
	if cfg.ModeratorRoleID == "" {
		warnings.Set(warnNoModeratorRole)
	}
	anyEnabled := false
	for _, cat := range level.Categories() {
		rule := cat.Rule(cfg)
		if rule == nil || !rule.Enabled {
			continue
		}
		anyEnabled = true
		if rule.ChannelID == "" || check(rule.ChannelID) != nil {
			warnings.Set(warnBrokenCategoryChannel)
		}
	}
	if !anyEnabled {
		warnings.Set(warnNoCategoryEnabled)
	}
	if cfg.SentChannelID == "" {
		warnings.Set(warnNoSentChannel)
	}
	if cfg.RejectChannelID == "" {
		warnings.Set(warnNoRejectChannel)
	}
	if cfg.MigrateCheck {
		warnings.Set(warnMigrateCheck)
	}
	return warnings
}

func warningLines(warnings utils.FlagSet[configWarning]) []string {
	ordered := []struct {
		flag configWarning
		text string
	}{
		{warnMigrateCheck, "The migrated configuration has not been acknowledged; submissions are blocked until /config acknowledge-migration."},
		{warnNoModeratorRole, "No moderator role is set; only members with Manage Server can review requests."},
		{warnNoCategoryEnabled, "No category is enabled, so nothing can be submitted."},
		{warnBrokenCategoryChannel, "An enabled category has a missing or unusable request channel."},
		{warnNoSentChannel, "No sent-results channel is set; sent verdicts cannot be reviewed."},
		{warnNoRejectChannel, "No reject-results channel is set; reject verdicts cannot be reviewed."},
	}
	var lines []string
	for _, entry := range ordered {
		if warnings.Has(entry.flag) {
			lines = append(lines, entry.text)
		}
	}
	return lines
}

// handleConfigCommand dispatches the /config subcommands. Everything here
// requires Manage Server, so a guild without a moderator role can still be
// configured.
func handleConfigCommand(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Member == nil {
			respondEphemeral(s, i, msgGuildOnly)
			return
		}
		if !canManageGuild(i.Member) {
			respondEphemeral(s, i, msgManageGuildOnly)
			return
		}
		cfg, err := database.GetOrCreateGuildConfig(b.DB, i.GuildID)
		if err != nil {
			utils.Error("config", "load-config", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}

		sub := i.ApplicationCommandData().Options[0]
		options := optionMap(sub.Options)

		if sub.Name == "show" {
			respond(s, i, &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{configEmbed(cfg, channelChecker(s))}}, true)
			return
		}

		confirmation, ok := applyConfigChange(cfg, sub.Name, options, s, i)
		if !ok {
			return
		}
		if err := database.SaveGuildConfig(b.DB, cfg); err != nil {
			utils.Error("config", "save-config", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		respondEphemeral(s, i, confirmation)
	}
}

// applyConfigChange mutates cfg in place and returns the confirmation
// message. ok is false when the handler already responded with an error.
func applyConfigChange(cfg *models.GuildConfig, sub string, options map[string]*discordgo.ApplicationCommandInteractionDataOption, s *discordgo.Session, i *discordgo.InteractionCreate) (string, bool) {
	switch sub {
	case "cooldown":
		ms, ok := parseBoundedDuration(options["duration"].StringValue())
		if !ok {
			respondEphemeral(s, i, msgInvalidDuration)
			return "", false
		}
		cfg.Cooldown = ms
		if ms == 0 {
			return "The submission cooldown is disabled.", true
		}
		return "The submission cooldown is now " + utils.FormatDuration(ms) + ".", true

	case "role":
		roleID := ""
		if opt, ok := options["role"]; ok {
			roleID = opt.RoleValue(s, i.GuildID).ID
		}
		kind := options["type"].StringValue()
		switch kind {
		case "moderator":
			cfg.ModeratorRoleID = roleID
		case "whitelist":
			cfg.WhitelistRoleID = roleID
		case "blacklist":
			cfg.BlockedRoleID = roleID
		case "bypass":
			cfg.CooldownBypassRoleID = roleID
		}
		if roleID == "" {
			return fmt.Sprintf("The %s role has been cleared.", kind), true
		}
		return fmt.Sprintf("The %s role is now <@&%s>.", kind, roleID), true

	case "category":
		key := options["category"].StringValue()
		rule := cfg.Rules[key]
		if rule == nil {
			rule = &models.CategoryRule{}
			if cfg.Rules == nil {
				cfg.Rules = make(map[string]*models.CategoryRule)
			}
			cfg.Rules[key] = rule
		}
		if opt, ok := options["channel"]; ok {
			rule.ChannelID = opt.ChannelValue(s).ID
		}
		if opt, ok := options["enabled"]; ok {
			rule.Enabled = opt.BoolValue()
		}
		if opt, ok := options["video-required"]; ok {
			rule.VideoRequired = opt.BoolValue()
		}
		if opt, ok := options["note-required"]; ok {
			rule.NoteRequired = opt.BoolValue()
		}
		return fmt.Sprintf("The `%s` category has been updated.", key), true

	case "result-channel":
		channelID := ""
		if opt, ok := options["channel"]; ok {
			channelID = opt.ChannelValue(s).ID
		}
		kind := options["type"].StringValue()
		if kind == "sent" {
			cfg.SentChannelID = channelID
		} else {
			cfg.RejectChannelID = channelID
		}
		if channelID == "" {
			return fmt.Sprintf("The %s results channel has been cleared.", kind), true
		}
		return fmt.Sprintf("The %s results channel is now <#%s>.", kind, channelID), true

	case "notify-channel":
		channelID := ""
		if opt, ok := options["channel"]; ok {
			channelID = opt.ChannelValue(s).ID
		}
		kind := options["type"].StringValue()
		if kind == "open" {
			cfg.NotifyOpenChannelID = channelID
		} else {
			cfg.NotifyCloseChannelID = channelID
		}
		if channelID == "" {
			return fmt.Sprintf("The window-%s announcement channel has been cleared.", kind), true
		}
		return fmt.Sprintf("The window-%s announcement channel is now <#%s>.", kind, channelID), true

	case "message":
		text := options["text"].StringValue()
		switch options["type"].StringValue() {
		case "closed":
			cfg.MessageRequestClosed = text
		case "cooldown":
			cfg.MessageDuringCooldown = text
		case "disabled":
			cfg.MessageTypeDisabled = text
		}
		return "The message has been updated.", true

	case "question":
		cfg.ExtraQuestionEnabled = options["enabled"].BoolValue()
		if opt, ok := options["required"]; ok {
			cfg.ExtraQuestionRequired = opt.BoolValue()
		}
		if opt, ok := options["text"]; ok {
			cfg.ExtraQuestionText = opt.StringValue()
		}
		if cfg.ExtraQuestionEnabled && cfg.ExtraQuestionText == "" {
			respondEphemeral(s, i, "Set a question text before enabling the question.")
			return "", false
		}
		if !cfg.ExtraQuestionEnabled {
			return "The extra question is disabled.", true
		}
		return "The extra question is enabled.", true

	case "gdps":
		cfg.GDPSMode = options["enabled"].BoolValue()
		if cfg.GDPSMode {
			return "GDPS mode is enabled; level lookups are skipped.", true
		}
		return "GDPS mode is disabled.", true

	case "acknowledge-migration":
		cfg.MigrateCheck = false
		return "The migrated configuration is confirmed. Requests can be accepted again.", true
	}
	return "", true
}

func configEmbed(cfg *models.GuildConfig, check submission.ChannelChecker) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{Title: "Request system configuration"}

	windowState := "Closed"
	if cfg.OpenUntil > 0 {
		windowState = "Open"
		var bounds []string
		if cfg.OpenUntil != window.NoTimeBound {
			bounds = append(bounds, fmt.Sprintf("until <t:%d:f>", cfg.OpenUntil/1000))
		}
		if cfg.RemainRequests > 0 {
			bounds = append(bounds, fmt.Sprintf("%d requests remaining", cfg.RemainRequests))
		}
		if len(bounds) > 0 {
			windowState += " (" + strings.Join(bounds, ", ") + ")"
		}
	}
	cooldown := "Disabled"
	if cfg.Cooldown > 0 {
		cooldown = utils.FormatDuration(cfg.Cooldown)
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Window", Value: windowState, Inline: true},
		&discordgo.MessageEmbedField{Name: "Cooldown", Value: cooldown, Inline: true},
		&discordgo.MessageEmbedField{Name: "GDPS mode", Value: onOff(cfg.GDPSMode), Inline: true},
		&discordgo.MessageEmbedField{Name: "Roles", Value: roleLines(cfg)},
	)

	var categories []string
	for _, cat := range level.Categories() {
		rule := cat.Rule(cfg)
		line := fmt.Sprintf("%s **%s**: ", cat.Emoji(), cat.Name)
		switch {
		case rule == nil || !rule.Enabled:
			line += "disabled"
		case rule.ChannelID == "":
			line += "enabled, no channel"
		default:
			line += "enabled, <#" + rule.ChannelID + ">"
			if rule.VideoRequired {
				line += ", video required"
			}
			if rule.NoteRequired {
				line += ", note required"
			}
		}
		categories = append(categories, line)
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Categories", Value: strings.Join(categories, "\n")},
		&discordgo.MessageEmbedField{Name: "Result channels", Value: fmt.Sprintf("Sent: %s\nReject: %s", channelMention(cfg.SentChannelID), channelMention(cfg.RejectChannelID)), Inline: true},
		&discordgo.MessageEmbedField{Name: "Announcements", Value: fmt.Sprintf("Open: %s\nClose: %s", channelMention(cfg.NotifyOpenChannelID), channelMention(cfg.NotifyCloseChannelID)), Inline: true},
	)
	question := "Disabled"
	if cfg.ExtraQuestionEnabled {
		question = cfg.ExtraQuestionText
		if cfg.ExtraQuestionRequired {
			question += " (required)"
		}
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Extra question", Value: question})

	if lines := warningLines(configWarnings(cfg, check)); len(lines) > 0 {
		embed.Color = 0xfee75c
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  ":warning: Warnings",
			Value: "- " + strings.Join(lines, "\n- "),
		})
	} else {
		embed.Color = 0x57f287
	}
	return embed
}

func onOff(enabled bool) string {
	if enabled {
		return "On"
	}
	return "Off"
}

func channelMention(channelID string) string {
	if channelID == "" {
		return "None"
	}
	return "<#" + channelID + ">"
}

func roleLines(cfg *models.GuildConfig) string {
	return strings.Join([]string{
		"Moderator: " + roleMention(cfg.ModeratorRoleID),
		"Whitelist: " + roleMention(cfg.WhitelistRoleID),
		"Blacklist: " + roleMention(cfg.BlockedRoleID),
		"Cooldown bypass: " + roleMention(cfg.CooldownBypassRoleID),
	}, "\n")
}

func roleMention(roleID string) string {
	if roleID == "" {
		return "None"
	}
	return "<@&" + roleID + ">"
}
