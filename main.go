package main

import (
	"log"

	"github.com/spf13/viper"

	"gdrequest/bot"
	"gdrequest/command"
	"gdrequest/config"
	"gdrequest/database"
	"gdrequest/handlers"
	"gdrequest/utils"
)

func main() {
	config.LoadConfig()

	db, err := database.InitDB(viper.GetString("bot.databasePath"))
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.Close()

	bot.Run(db, func(b *bot.Bot) {
		utils.InitLogger(b.Session)
		handlers.Register(b)
	}, command.Definitions())
}
