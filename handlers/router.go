package handlers

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

var (
	commandHandlers   = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
	componentHandlers = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
	modalHandlers     = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
)

func addCommandHandler(name string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	commandHandlers[name] = handler
}

func addComponentHandler(customID string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	componentHandlers[customID] = handler
}

func addModalHandler(customID string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	modalHandlers[customID] = handler
}

// customIDParts splits an interaction custom id into its handler key and
// arguments, e.g. "review:12:-3" -> ["review", "12", "-3"].
func customIDParts(customID string) []string {
	return strings.Split(customID, ":")
}

// onInteractionCreate is the main interaction router. Component and modal
// custom ids are routed by their first ":"-separated segment.
func onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if handler, ok := commandHandlers[i.ApplicationCommandData().Name]; ok {
			handler(s, i)
		}
	case discordgo.InteractionMessageComponent:
		if handler, ok := componentHandlers[customIDParts(i.MessageComponentData().CustomID)[0]]; ok {
			handler(s, i)
		}
	case discordgo.InteractionModalSubmit:
		if handler, ok := modalHandlers[customIDParts(i.ModalSubmitData().CustomID)[0]]; ok {
			handler(s, i)
		}
	}
}
