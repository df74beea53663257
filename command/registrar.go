package command

import "github.com/bwmarrin/discordgo"

// Definitions returns every slash command the bot registers on startup.
func Definitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		AboutCommand(),
		HelpCommand(),
		SubmitCommand(),
		RequestCommand(),
		OpenCommand(),
		CloseCommand(),
		ConfigCommand(),
		DeleteDataCommand(),
		SetupCommand(),
	}
}
