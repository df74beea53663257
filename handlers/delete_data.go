package handlers

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"gdrequest/bot"
	"gdrequest/database"
	"gdrequest/models"
	"gdrequest/submission"
	"gdrequest/utils"
)

// deletionCooldown throttles full data deletions per user, in milliseconds.
const deletionCooldown = int64(14 * 24 * time.Hour / time.Millisecond)

const msgDeleteWarning = "This deletes **every** level request you have ever submitted, on every server, including their reviews. " +
	"This cannot be undone, and you cannot do it again for 14 days."

// deletionBlockedUntil returns when the user may delete again, or 0.
func deletionBlockedUntil(user *models.User, nowMs int64) int64 {
	if user.LastDeletion != 0 && nowMs-user.LastDeletion < deletionCooldown {
		return user.LastDeletion + deletionCooldown
	}
	return 0
}

func handleDeleteDataCommand(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		userID := interactionUserID(i)
		user, err := database.GetOrCreateUser(b.DB, userID)
		if err != nil {
			utils.Error("delete-data", "load-user", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		if until := deletionBlockedUntil(user, time.Now().UnixMilli()); until != 0 {
			respondEphemeral(s, i, fmt.Sprintf("You already deleted your data recently. You can do it again <t:%d:R>.", until/1000))
			return
		}

		respond(s, i, &discordgo.InteractionResponseData{
			Content: msgDeleteWarning,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{
						CustomID: "delete-confirm",
						Label:    "Delete everything",
						Style:    discordgo.DangerButton,
					},
				}},
			},
		}, true)
	}
}

func handleDeleteDataConfirm(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		userID := interactionUserID(i)
		now := time.Now()
		user, err := database.GetOrCreateUser(b.DB, userID)
		if err != nil {
			utils.Error("delete-data", "load-user", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		if until := deletionBlockedUntil(user, now.UnixMilli()); until != 0 {
			updateMessage(s, i, &discordgo.InteractionResponseData{
				Content:    fmt.Sprintf("You already deleted your data recently. You can do it again <t:%d:R>.", until/1000),
				Components: []discordgo.MessageComponent{},
			})
			return
		}

		count, err := database.DeleteUserRequests(b.DB, userID)
		if err != nil {
			utils.Error("delete-data", "delete-requests", err.Error())
			respondEphemeral(s, i, msgSomethingWrong)
			return
		}
		if err := database.SetLastDeletion(b.DB, userID, now.UnixMilli()); err != nil {
			utils.Error("delete-data", "set-last-deletion", err.Error())
		}
		if i.GuildID != "" {
			b.Drafts.Remove(submission.DraftKey(i.GuildID, userID))
		}

		utils.Info("delete-data", "deleted", fmt.Sprintf("user %s removed %d requests", userID, count))
		updateMessage(s, i, &discordgo.InteractionResponseData{
			Content:    fmt.Sprintf("Deleted %d of your requests.", count),
			Components: []discordgo.MessageComponent{},
		})
	}
}

// interactionUserID works in both guild and DM interactions.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil {
		return i.Member.User.ID
	}
	return i.User.ID
}
