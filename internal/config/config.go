package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port               string `mapstructure:"PORT"`
	Env                string `mapstructure:"ENV"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	DatabasePath       string `mapstructure:"DATABASE_PATH"`
	SlackBotToken      string `mapstructure:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string `mapstructure:"SLACK_SIGNING_SECRET"`
	MetricsEnabled     bool   `mapstructure:"METRICS_ENABLED"`

	// Defaults for the stateless generate endpoint.
	UTCOffset           string `mapstructure:"UTC_OFFSET"`
	DefaultRoster       string `mapstructure:"DEFAULT_ROSTER"`
	WeekendOffEmployees string `mapstructure:"WEEKEND_OFF_EMPLOYEES"`
}

// Load reads config.yaml from the working directory or ./config when
// present; environment variables always win.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_PATH", "./roster.db")
	v.SetDefault("SLACK_BOT_TOKEN", "")
	v.SetDefault("SLACK_SIGNING_SECRET", "")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("UTC_OFFSET", "+09:00")
	v.SetDefault("DEFAULT_ROSTER", "")
	v.SetDefault("WEEKEND_OFF_EMPLOYEES", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Roster returns DEFAULT_ROSTER as an ordered list.
func (c *Config) Roster() []string {
	return splitList(c.DefaultRoster)
}

func (c *Config) WeekendOff() []string {
	return splitList(c.WeekendOffEmployees)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
