package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"gdrequest/level"
)

// LoadConfig loads configuration from multiple sources, later ones merged
// over earlier ones:
// 1. .env file (environment variables)
// 2. config.yaml (base configuration)
// 3. config/emoji.json (server emoji overrides)
// Environment variables override same-named settings from the files.
func LoadConfig() {
	// Load environment variables from .env; ignore a missing file.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, skipping.")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("bot.databasePath", "./data/gdrequest.db")
	viper.SetDefault("bot.gameServerUrl", "http://www.boomlings.com/database")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("No config.yaml found, using environment variables and defaults.")
		} else {
			panic(fmt.Errorf("fatal error reading config file: %w", err))
		}
	}

	// Merge the emoji override file (config/emoji.json) when present.
	viper.SetConfigName("emoji")
	viper.SetConfigType("json")
	viper.AddConfigPath("./config")

	if err := viper.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("No emoji override file (config/emoji.json) found, using defaults.")
		} else {
			panic(fmt.Errorf("fatal error merging emoji config: %w", err))
		}
	}

	if overrides := viper.GetStringMapString("emoji"); len(overrides) > 0 {
		level.SetEmojiOverrides(overrides)
	}
}
