package command

import "github.com/bwmarrin/discordgo"

func requestIDOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Name:        "id",
		Description: "Request ID",
		Type:        discordgo.ApplicationCommandOptionInteger,
		Required:    true,
	}
}

func categoryChoices() []*discordgo.ApplicationCommandOptionChoice {
	return []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Classic & Non-Demon", Value: "classic.normal"},
		{Name: "Classic & Demon", Value: "classic.demon"},
		{Name: "Platformer & Non-Demon", Value: "platformer.normal"},
		{Name: "Platformer & Demon", Value: "platformer.demon"},
	}
}

// AboutCommand shows the bot's information.
func AboutCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "about",
		Description: "Shows the bot's information",
	}
}

// HelpCommand shows the setup guide.
func HelpCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "help",
		Description: "Show the guide for setting up the bot",
	}
}

// SubmitCommand starts a level request submission.
func SubmitCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "request-submit",
		Description: "Send your level request to the moderators of this server",
	}
}

// RequestCommand inspects or unlocks persisted requests.
func RequestCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "request",
		Description: "Check a level request",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "get",
				Description: "Show a request by its ID",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options:     []*discordgo.ApplicationCommandOption{requestIDOption()},
			},
			{
				Name:        "allow-resubmit",
				Description: "Allow the request's level to be submitted again",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options:     []*discordgo.ApplicationCommandOption{requestIDOption()},
			},
		},
	}
}

// OpenCommand opens the submission window.
func OpenCommand() *discordgo.ApplicationCommand {
	countOption := &discordgo.ApplicationCommandOption{
		Name:        "count",
		Description: "Close after this many requests",
		Type:        discordgo.ApplicationCommandOptionInteger,
		Required:    true,
	}
	durationOption := &discordgo.ApplicationCommandOption{
		Name:        "duration",
		Description: "Close after this much time, e.g. \"2d 12h\" or \"30m\"",
		Type:        discordgo.ApplicationCommandOptionString,
		Required:    true,
	}
	return &discordgo.ApplicationCommand{
		Name:        "request-open",
		Description: "Open the submission window",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "by-requests",
				Description: "Close the window after a number of requests",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options:     []*discordgo.ApplicationCommandOption{countOption},
			},
			{
				Name:        "by-time",
				Description: "Close the window after a duration",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options:     []*discordgo.ApplicationCommandOption{durationOption},
			},
			{
				Name:        "by-time-requests",
				Description: "Close the window on whichever bound trips first",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options:     []*discordgo.ApplicationCommandOption{durationOption, countOption},
			},
			{
				Name:        "manual",
				Description: "Keep the window open until closed manually",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
		},
	}
}

// CloseCommand closes the submission window immediately.
func CloseCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "request-close",
		Description: "Close the submission window now",
	}
}

// ConfigCommand mutates the guild configuration.
func ConfigCommand() *discordgo.ApplicationCommand {
	roleTypeChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Moderator", Value: "moderator"},
		{Name: "Whitelist", Value: "whitelist"},
		{Name: "Blacklist", Value: "blacklist"},
		{Name: "Cooldown Bypass", Value: "bypass"},
	}
	resultTypeChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Sent", Value: "sent"},
		{Name: "Reject", Value: "reject"},
	}
	messageTypeChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Request Closed", Value: "closed"},
		{Name: "During Cooldown", Value: "cooldown"},
		{Name: "Category Disabled", Value: "disabled"},
	}
	notifyTypeChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Window Opened", Value: "open"},
		{Name: "Window Closed", Value: "close"},
	}

	return &discordgo.ApplicationCommand{
		Name:        "config",
		Description: "Configure the request system",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "show",
				Description: "Show the current configuration and its health warnings",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "cooldown",
				Description: "Set the submission cooldown",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "duration",
						Description: "Cooldown duration, e.g. \"1d\" or \"2h 30m\"; \"0s\" disables it",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
					},
				},
			},
			{
				Name:        "role",
				Description: "Set or clear one of the special roles",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "type",
						Description: "Which role to change",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
						Choices:     roleTypeChoices,
					},
					{
						Name:        "role",
						Description: "The role; omit to clear",
						Type:        discordgo.ApplicationCommandOptionRole,
					},
				},
			},
			{
				Name:        "category",
				Description: "Configure a level category",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "category",
						Description: "Which category to change",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
						Choices:     categoryChoices(),
					},
					{
						Name:        "channel",
						Description: "Destination channel for this category's requests",
						Type:        discordgo.ApplicationCommandOptionChannel,
					},
					{
						Name:        "enabled",
						Description: "Accept requests for this category",
						Type:        discordgo.ApplicationCommandOptionBoolean,
					},
					{
						Name:        "video-required",
						Description: "Require a showcase video",
						Type:        discordgo.ApplicationCommandOptionBoolean,
					},
					{
						Name:        "note-required",
						Description: "Require a moderator note",
						Type:        discordgo.ApplicationCommandOptionBoolean,
					},
				},
			},
			{
				Name:        "result-channel",
				Description: "Set where review results are posted",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "type",
						Description: "Which result channel to change",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
						Choices:     resultTypeChoices,
					},
					{
						Name:        "channel",
						Description: "The channel; omit to clear",
						Type:        discordgo.ApplicationCommandOptionChannel,
					},
				},
			},
			{
				Name:        "notify-channel",
				Description: "Set where window open/close announcements are posted",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "type",
						Description: "Which announcement to change",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
						Choices:     notifyTypeChoices,
					},
					{
						Name:        "channel",
						Description: "The channel; omit to clear",
						Type:        discordgo.ApplicationCommandOptionChannel,
					},
				},
			},
			{
				Name:        "message",
				Description: "Customize a user-facing message",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "type",
						Description: "Which message to change",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
						Choices:     messageTypeChoices,
					},
					{
						Name:        "text",
						Description: "The message; {endTime} and {type} are substituted",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
					},
				},
			},
			{
				Name:        "question",
				Description: "Configure the extra submission question",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "enabled",
						Description: "Ask the extra question",
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Required:    true,
					},
					{
						Name:        "required",
						Description: "Make the answer mandatory",
						Type:        discordgo.ApplicationCommandOptionBoolean,
					},
					{
						Name:        "text",
						Description: "The question text",
						Type:        discordgo.ApplicationCommandOptionString,
					},
				},
			},
			{
				Name:        "gdps",
				Description: "Toggle private-server mode (skips the level lookup)",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "enabled",
						Description: "Enable GDPS mode",
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Required:    true,
					},
				},
			},
			{
				Name:        "acknowledge-migration",
				Description: "Confirm the migrated configuration and accept requests again",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
		},
	}
}

// DeleteDataCommand starts the user data deletion flow.
func DeleteDataCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "delete-data",
		Description: "Delete every level request you have submitted",
	}
}

// SetupCommand posts the submit button embed to the current channel.
func SetupCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "setup",
		Description: "Post the level request panel in this channel",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "text",
				Description: "Optional text shown above the submit button",
				Type:        discordgo.ApplicationCommandOptionString,
			},
		},
	}
}
