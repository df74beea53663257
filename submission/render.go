package submission

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"gdrequest/level"
)

const (
	msgCorrectContents     = "Please double-check the contents below before submitting."
	msgNoLevelDescription  = "(no description)"
	msgRequireVideo        = "A showcase video is required for this category."
	msgRequireNote         = "A note to the moderators is required for this category."
	msgRequireDifficulty   = "Choose at least one difficulty."
	requirementsFieldTitle = ":warning: Requirements to submit"
)

// RequirementContexts lists the user-facing lines for every missing
// requirement, in display order.
func (d *Draft) RequirementContexts() []string {
	missing := d.Requirements()
	var contexts []string
	if missing.Has(RequireDifficulty) {
		contexts = append(contexts, msgRequireDifficulty)
	}
	if missing.Has(RequireVideo) {
		contexts = append(contexts, msgRequireVideo)
	}
	if missing.Has(RequireNote) {
		contexts = append(contexts, msgRequireNote)
	}
	return contexts
}

// Render produces the draft's reply descriptor: the level embed plus the
// interactive controls for the draft's current UI state.
func (d *Draft) Render() *discordgo.InteractionResponseData {
	missing := d.Requirements()

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s `#%d`", d.LevelName, d.LevelID),
		Description: msgNoLevelDescription,
	}
	if d.Level != nil && d.Level.Description != "" {
		embed.Description = d.Level.Description
	}
	if !d.GDPS {
		embed.URL = fmt.Sprintf("https://gdbrowser.com/%d", d.LevelID)
	}
	if d.VideoID != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: d.VideoThumbnailURL()}
	}

	if d.Level != nil && d.Level.UploaderName != "" {
		uploader := d.Level.UploaderName
		if d.Level.UploaderID != 0 {
			uploader = fmt.Sprintf("[%s](https://gdbrowser.com/u/%d)", d.Level.UploaderName, d.Level.UploaderID)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Uploader", Value: uploader, Inline: true})
	}

	video := "None"
	if d.VideoID != "" {
		video = fmt.Sprintf("[YouTube](%s)", d.VideoURL())
	}
	difficulty := level.DifficultySummary(d.Demon, d.Difficulties)
	if difficulty == "" {
		difficulty = "None"
	}
	kind := " (Classic)"
	if d.Platformer {
		kind = " (Platformer)"
	}
	note := d.Note
	if note == "" {
		note = "None"
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Showcase Video", Value: video, Inline: true},
		&discordgo.MessageEmbedField{Name: "Difficulty & Type", Value: difficulty + kind, Inline: true},
		&discordgo.MessageEmbedField{Name: "Note", Value: note},
	)
	if d.ExtraAnswer != "" {
		question := d.Config.ExtraQuestionText
		if question == "" {
			question = "???"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: question, Value: d.ExtraAnswer})
	}
	if contexts := d.RequirementContexts(); len(contexts) > 0 {
		value := ""
		for _, context := range contexts {
			value += "- " + context + "\n"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: requirementsFieldTitle, Value: value})
	}

	var components []discordgo.MessageComponent
	switch d.State {
	case StateIdle:
		components = d.idleComponents(missing.Has(RequireDifficulty), missing.Has(RequireVideo), missing.Has(RequireNote), missing.Empty())
	case StatePickingDifficulty:
		components = d.pickerComponents(1, 9, "Choose difficulty here...", "Change to Demon Difficulty", "hard_demon")
	case StatePickingDemonDifficulty:
		components = d.pickerComponents(10, 14, "Choose demon difficulty here...", "Change to Non-Demon Difficulty", "hard")
	}

	return &discordgo.InteractionResponseData{
		Content:    msgCorrectContents,
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}
}

func buttonStyle(highlight bool) discordgo.ButtonStyle {
	if highlight {
		return discordgo.PrimaryButton
	}
	return discordgo.SecondaryButton
}

func (d *Draft) idleComponents(needDifficulty, needVideo, needNote, complete bool) []discordgo.MessageComponent {
	key := d.Key()
	var components []discordgo.MessageComponent

	if d.Config.GDPSMode {
		label := "Change to Platformer Level"
		emoji := "moon"
		if d.Platformer {
			label = "Change to Classic Level"
			emoji = "star"
		}
		components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: "submit-type:" + key,
				Label:    label,
				Style:    discordgo.SecondaryButton,
				Emoji:    &discordgo.ComponentEmoji{Name: level.Emoji(emoji)},
			},
		}})
	}

	rewardEmoji := "star"
	if d.Platformer {
		rewardEmoji = "moon"
	}
	components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			CustomID: "submit-difficulty:" + key,
			Label:    "Change Difficulty",
			Style:    buttonStyle(needDifficulty),
			Emoji:    &discordgo.ComponentEmoji{Name: level.Emoji(rewardEmoji)},
		},
		discordgo.Button{
			CustomID: "submit-video:" + key,
			Label:    "Update Video Link",
			Style:    buttonStyle(needVideo),
			Emoji:    &discordgo.ComponentEmoji{Name: level.Emoji("youtube")},
		},
		discordgo.Button{
			CustomID: "submit-note:" + key,
			Label:    "Update Note",
			Style:    buttonStyle(needNote),
			Emoji:    &discordgo.ComponentEmoji{Name: level.Emoji("cp")},
		},
	}})
	components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			CustomID: "submit-confirm:" + key,
			Label:    "Submit",
			Style:    discordgo.SuccessButton,
			Disabled: !complete,
		},
	}})
	return components
}

func (d *Draft) pickerComponents(from, to int, placeholder, toggleLabel, toggleEmoji string) []discordgo.MessageComponent {
	key := d.Key()

	var options []discordgo.SelectMenuOption
	for difficulty := from; difficulty <= to; difficulty++ {
		label := level.TierLabel(difficulty)
		if difficulty < 10 {
			label = fmt.Sprintf("%s - %d", label, difficulty)
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: label,
			Value: fmt.Sprintf("%d", difficulty),
			Emoji: &discordgo.ComponentEmoji{Name: level.Emoji(level.TierID(difficulty))},
		})
	}

	minValues := 1
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    "submit-difficulty:" + key,
				Placeholder: placeholder,
				MinValues:   &minValues,
				MaxValues:   len(options),
				Options:     options,
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: "submit-difficulty-toggle:" + key,
				Label:    toggleLabel,
				Style:    discordgo.DangerButton,
				Emoji:    &discordgo.ComponentEmoji{Name: level.Emoji(toggleEmoji)},
			},
		}},
	}
}
