package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// CurrentVersion is the expected version of the config file.
const CurrentVersion = 1

// Config represents the entire application configuration.
type Config struct {
	// Version of the config file.
	Version      int          `koanf:"version"`
	Debug        Debug        `koanf:"debug"`
	PostgreSQL   PostgreSQL   `koanf:"postgresql"`
	OpenAI       OpenAI       `koanf:"openai"`
	API          API          `koanf:"api"`
	Moderation   Moderation   `koanf:"moderation"`
	Notification Notification `koanf:"notification"`
}

// Debug contains logging configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Maximum number of log session directories to keep.
	MaxLogsToKeep int `koanf:"max_logs_to_keep"`
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	User         string `koanf:"user"`
	Password     string `koanf:"password"`
	DBName       string `koanf:"db_name"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	// Connection lifetimes in minutes.
	MaxLifetime int `koanf:"max_lifetime"`
	MaxIdleTime int `koanf:"max_idle_time"`
}

// OpenAI contains remote classifier provider configuration. An empty API key
// disables remote classification entirely.
type OpenAI struct {
	// Base URL for the OpenAI-compatible API.
	BaseURL string `koanf:"base_url"`
	// API key for authentication.
	APIKey string `koanf:"api_key"`
	// Model to use for comment classification.
	CommentModel string `koanf:"comment_model"`
	// Maximum concurrent requests.
	MaxConcurrent int64 `koanf:"max_concurrent"`
	// Request timeout in milliseconds.
	RequestTimeout int `koanf:"request_timeout"`
}

// API contains REST server configuration.
type API struct {
	Server Server `koanf:"server"`
}

// Server contains HTTP server settings.
type Server struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// Moderation contains the pipeline tunables. Defaults preserve the documented
// behavior; deployments may override any of them.
type Moderation struct {
	// Prefer the remote classifier for new submissions when configured.
	PreferRemote bool `koanf:"prefer_remote"`
	// Remote classification timeout in milliseconds.
	RemoteTimeout int `koanf:"remote_timeout"`
	// Number of distinct reports that escalates a comment to reported.
	ReportThreshold int `koanf:"report_threshold"`
	// Lexical rule overrides. Empty lists keep the defaults.
	BannedTerms    []string `koanf:"banned_terms"`
	ProfanityTerms []string `koanf:"profanity_terms"`
	// Penalty weight overrides. Zero keeps the defaults.
	BannedTermPenalty int `koanf:"banned_term_penalty"`
	ProfanityPenalty  int `koanf:"profanity_penalty"`
}

// Notification contains the outbound notification dispatcher configuration.
type Notification struct {
	// Webhook endpoint receiving user notifications. Empty disables dispatch.
	WebhookURL string `koanf:"webhook_url"`
	// Request timeout in milliseconds.
	RequestTimeout int `koanf:"request_timeout"`
}

// RemoteTimeoutDuration returns the remote classification timeout with the
// documented default when unset.
func (m *Moderation) RemoteTimeoutDuration() time.Duration {
	if m.RemoteTimeout <= 0 {
		return 5 * time.Second
	}
	return time.Duration(m.RemoteTimeout) * time.Millisecond
}

// Threshold returns the report escalation threshold with the documented
// default when unset.
func (m *Moderation) Threshold() int {
	if m.ReportThreshold <= 0 {
		return 3
	}
	return m.ReportThreshold
}

// LoadConfig loads the configuration from the first config.toml found in the
// search paths and returns it along with the path that was used.
func LoadConfig() (*Config, string, error) {
	k := koanf.New(".")

	// Get user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// List search paths
	configPaths := []string{
		".maqala",
		homeDir + "/.maqala/config",
		"/etc/maqala/config",
		"/app/config",
		"config",
		".",
	}

	var usedConfigPath string
	for _, path := range configPaths {
		configPath := fmt.Sprintf("%s/config.toml", path)
		if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
			usedConfigPath = path
			break
		}
	}

	if usedConfigPath == "" {
		return nil, "", fmt.Errorf("%w: config.toml", ErrConfigFileNotFound)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Check config version
	if config.Version == 0 {
		return nil, "", ErrConfigVersionMissing
	}
	if config.Version != CurrentVersion {
		return nil, "", fmt.Errorf("%w: found version %d, expected %d",
			ErrConfigVersionMismatch, config.Version, CurrentVersion)
	}

	return &config, usedConfigPath, nil
}
