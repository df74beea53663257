package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"gdrequest/bot"
)

// Register wires every interaction handler to the bot.
func Register(b *bot.Bot) {
	addCommandHandler("about", handleAboutCommand(b))
	addCommandHandler("help", handleHelpCommand(b))
	addCommandHandler("request-submit", handleSubmitCommand(b))
	addCommandHandler("request", handleRequestCommand(b))
	addCommandHandler("request-open", handleOpenCommand(b))
	addCommandHandler("request-close", handleCloseCommand(b))
	addCommandHandler("config", handleConfigCommand(b))
	addCommandHandler("delete-data", handleDeleteDataCommand(b))
	addCommandHandler("setup", handleSetupCommand(b))

	addComponentHandler("submit", handleSubmitCommand(b))
	addComponentHandler("submit-type", handleDraftTypeToggle(b))
	addComponentHandler("submit-difficulty", handleDraftDifficulty(b))
	addComponentHandler("submit-difficulty-toggle", handleDraftDifficultyToggle(b))
	addComponentHandler("submit-video", handleDraftVideoButton(b))
	addComponentHandler("submit-note", handleDraftNoteButton(b))
	addComponentHandler("submit-confirm", handleDraftConfirm(b))
	addComponentHandler("review-sent", handleReviewSelect(b))
	addComponentHandler("review-reject", handleReviewSelect(b))
	addComponentHandler("delete-confirm", handleDeleteDataConfirm(b))

	addModalHandler("submit-start", handleSubmitModal(b))
	addModalHandler("submit-video", handleDraftVideoModal(b))
	addModalHandler("submit-note", handleDraftNoteModal(b))
	addModalHandler("review", handleReviewModal(b))

	b.Session.AddHandler(onInteractionCreate)

	// Log when the bot is connected.
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
}
