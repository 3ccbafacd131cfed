package config

import (
	"os"
	"strings"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	LogLevel           string
	ReminderChannelID  string
	ReminderTime       string // HH:MM, host local time
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./attendance.db"),
		Port:               getEnv("PORT", "3000"),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		ReminderChannelID:  getEnv("REMINDER_CHANNEL_ID", ""),
		ReminderTime:       getEnv("REMINDER_TIME", "17:00"),
	}
}

// RemindersEnabled reports whether the daily reminder has somewhere to post.
func (c *Config) RemindersEnabled() bool {
	return c.ReminderChannelID != "" && c.SlackBotToken != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
