package bot

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"

	"gdrequest/utils"
	"gdrequest/window"
)

var c *cron.Cron

// startScheduler starts the periodic window-close sweep.
func startScheduler(s *discordgo.Session, db *sql.DB) {
	log.Println("Initializing scheduler...")
	c = cron.New()
	_, err := c.AddFunc("@every 30s", func() {
		if err := window.Sweep(db, time.Now(), ChannelNotifier(s)); err != nil {
			utils.Error("scheduler", "window-sweep", err.Error())
		}
	})
	if err != nil {
		log.Fatalf("Could not set up cron job: %v", err)
	}
	c.Start()
	log.Println("Window sweep scheduled every 30 seconds.")
}

// stopScheduler stops the cron jobs.
func stopScheduler() {
	if c != nil {
		c.Stop()
		log.Println("Scheduler stopped.")
	}
}

// ChannelNotifier adapts the Discord session to the window Notify
// contract: announcements go to plain text channels only.
func ChannelNotifier(s *discordgo.Session) window.Notify {
	return func(channelID, content string) error {
		channel, err := s.State.Channel(channelID)
		if err != nil {
			channel, err = s.Channel(channelID)
		}
		if err != nil {
			return fmt.Errorf("channel %s not found: %w", channelID, err)
		}
		if channel.Type != discordgo.ChannelTypeGuildText {
			return errors.New("notify channel is not a text channel")
		}
		_, err = s.ChannelMessageSend(channelID, content)
		return err
	}
}
