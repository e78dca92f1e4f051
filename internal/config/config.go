package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Runtime
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Data files
	DataDir          string `mapstructure:"DATA_DIR"`
	PoolArtifact     string `mapstructure:"POOL_ARTIFACT"`
	TranscriptDir    string `mapstructure:"TRANSCRIPT_DIR"`
	FantasyPointsCSV string `mapstructure:"FANTASY_POINTS_CSV"`

	// Offense scoring weights
	PassFriendlyPassWeight  float64 `mapstructure:"PASS_FRIENDLY_PASS_WEIGHT"`
	PassFriendlyTotalWeight float64 `mapstructure:"PASS_FRIENDLY_TOTAL_WEIGHT"`
	RushFriendlyRushWeight  float64 `mapstructure:"RUSH_FRIENDLY_RUSH_WEIGHT"`
	RushFriendlyTotalWeight float64 `mapstructure:"RUSH_FRIENDLY_TOTAL_WEIGHT"`
	QualityTotalWeight      float64 `mapstructure:"QUALITY_TOTAL_WEIGHT"`
	QualityScoringWeight    float64 `mapstructure:"QUALITY_SCORING_WEIGHT"`

	// Defense tiering
	DefenseTierCount int `mapstructure:"DEFENSE_TIER_COUNT"`

	// Schedule rating thresholds (descending)
	ScheduleVeryFavorable float64 `mapstructure:"SCHEDULE_VERY_FAVORABLE"`
	ScheduleFavorable     float64 `mapstructure:"SCHEDULE_FAVORABLE"`
	ScheduleAverage       float64 `mapstructure:"SCHEDULE_AVERAGE"`
	ScheduleDifficult     float64 `mapstructure:"SCHEDULE_DIFFICULT"`

	// Draft
	MaxRounds int `mapstructure:"MAX_ROUNDS"`

	// Selector (LLM) integration
	AnthropicAPIKey   string        `mapstructure:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL  string        `mapstructure:"ANTHROPIC_BASE_URL"`
	SelectorModel     string        `mapstructure:"SELECTOR_MODEL"`
	SelectorMaxTokens int           `mapstructure:"SELECTOR_MAX_TOKENS"`
	SelectorTimeout   time.Duration `mapstructure:"SELECTOR_TIMEOUT"`
	SelectorRetries   int           `mapstructure:"SELECTOR_RETRIES"`
	SelectorRateLimit int           `mapstructure:"SELECTOR_RATE_LIMIT"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("POOL_ARTIFACT", "final_rankings_with_schedule.json")
	viper.SetDefault("TRANSCRIPT_DIR", "transcripts")
	viper.SetDefault("FANTASY_POINTS_CSV", "")

	viper.SetDefault("PASS_FRIENDLY_PASS_WEIGHT", 0.7)
	viper.SetDefault("PASS_FRIENDLY_TOTAL_WEIGHT", 0.3)
	viper.SetDefault("RUSH_FRIENDLY_RUSH_WEIGHT", 0.7)
	viper.SetDefault("RUSH_FRIENDLY_TOTAL_WEIGHT", 0.3)
	viper.SetDefault("QUALITY_TOTAL_WEIGHT", 0.4)
	viper.SetDefault("QUALITY_SCORING_WEIGHT", 0.6)

	viper.SetDefault("DEFENSE_TIER_COUNT", 5)

	viper.SetDefault("SCHEDULE_VERY_FAVORABLE", 80.0)
	viper.SetDefault("SCHEDULE_FAVORABLE", 60.0)
	viper.SetDefault("SCHEDULE_AVERAGE", 40.0)
	viper.SetDefault("SCHEDULE_DIFFICULT", 20.0)

	viper.SetDefault("MAX_ROUNDS", 9)

	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com/v1")
	viper.SetDefault("SELECTOR_MODEL", "claude-sonnet-4-20250514")
	viper.SetDefault("SELECTOR_MAX_TOKENS", 1500)
	viper.SetDefault("SELECTOR_TIMEOUT", "60s")
	viper.SetDefault("SELECTOR_RETRIES", 3)
	viper.SetDefault("SELECTOR_RATE_LIMIT", 1) // requests per second

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Try to read config file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.DefenseTierCount < 1 {
		return fmt.Errorf("DEFENSE_TIER_COUNT must be at least 1, got %d", c.DefenseTierCount)
	}
	if c.MaxRounds < 1 {
		return fmt.Errorf("MAX_ROUNDS must be at least 1, got %d", c.MaxRounds)
	}
	if c.SelectorRetries < 1 {
		return fmt.Errorf("SELECTOR_RETRIES must be at least 1, got %d", c.SelectorRetries)
	}
	return nil
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
