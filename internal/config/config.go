// Load envs from .env
// Load YAML (or JSON) config
// Validate config
// Provide default values

package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const placeholderMarker = "YOUR_"

type Config struct {
	TelegramToken  string `yaml:"telegram_bot_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID string `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Search criteria
	Roles              []string `yaml:"roles"`
	KeywordsInclude    []string `yaml:"keywords_include"`
	KeywordsExclude    []string `yaml:"keywords_exclude"`
	Regions            []string `yaml:"regions"`
	EnforceUSALocation bool     `yaml:"enforce_usa_location"`
	//Loop
	ScanIntervalMinutes int    `yaml:"scan_interval_minutes" env:"JOBBOT_SCAN_INTERVAL_MINUTES"`
	Delays              Delays `yaml:"delays"`
	//Paths
	SeenJobsPath string `yaml:"seen_jobs_path"`
	LogPath      string `yaml:"log_path"`
	//Optional status endpoint, e.g. ":8080"
	StatusAddr string `yaml:"status_addr"`

	Endpoints Endpoints `yaml:"endpoints"`
}

// Delays holds every fixed wait used by the bot.
type Delays struct {
	InterSend       time.Duration `yaml:"inter_send"`
	BatchCooldown   time.Duration `yaml:"batch_cooldown"`
	BatchSize       int           `yaml:"batch_size"`
	InterQuery      time.Duration `yaml:"inter_query"`
	ErrorBackoff    time.Duration `yaml:"error_backoff"`
	UpdatePoll      time.Duration `yaml:"update_poll"`
	LongPollTimeout time.Duration `yaml:"long_poll_timeout"`
}

// Endpoints are the external base URLs. Overridden in tests.
type Endpoints struct {
	// Telegram is a tgbotapi endpoint format: "https://host/bot%s/%s".
	Telegram   string `yaml:"telegram"`
	GoogleNews string `yaml:"google_news"`
	RemoteOK   string `yaml:"remoteok"`
	WWR        string `yaml:"weworkremotely"`
}

func DefaultDelays() Delays {
	return Delays{
		InterSend:       time.Second,
		BatchCooldown:   time.Minute,
		BatchSize:       10,
		InterQuery:      time.Second,
		ErrorBackoff:    time.Minute,
		UpdatePoll:      time.Second,
		LongPollTimeout: 100 * time.Second,
	}
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Telegram:   "https://api.telegram.org/bot%s/%s",
		GoogleNews: "https://news.google.com/rss/search",
		RemoteOK:   "https://remoteok.com/api",
		WWR:        "https://weworkremotely.com/remote-jobs.rss",
	}
}

// Default returns a config with every optional field set.
func Default() *Config {
	return &Config{
		Regions:             []string{RegionIndia, RegionUSA},
		ScanIntervalMinutes: 30,
		Delays:              DefaultDelays(),
		SeenJobsPath:        "seen_jobs.json",
		LogPath:             "bot.log",
		Endpoints:           DefaultEndpoints(),
	}
}

// Load reads .env, the config file at path and env overrides, then fills
// defaults and validates.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	//config.json is often saved with a BOM on Windows
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		c.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		c.TelegramChatID = chatID
	}
	if interval := os.Getenv("JOBBOT_SCAN_INTERVAL_MINUTES"); interval != "" {
		n, err := strconv.Atoi(interval)
		if err != nil {
			return fmt.Errorf("invalid JOBBOT_SCAN_INTERVAL_MINUTES: %w", err)
		}
		c.ScanIntervalMinutes = n
	}
	return nil
}

func (c *Config) fillDefaults() {
	d := DefaultDelays()
	if c.Delays.BatchSize <= 0 {
		c.Delays.BatchSize = d.BatchSize
	}
	if c.Delays.LongPollTimeout <= 0 {
		c.Delays.LongPollTimeout = d.LongPollTimeout
	}
	if c.ScanIntervalMinutes == 0 {
		c.ScanIntervalMinutes = 30
	}
	if len(c.Regions) == 0 {
		c.Regions = []string{RegionIndia, RegionUSA}
	}

	e := DefaultEndpoints()
	if c.Endpoints.Telegram == "" {
		c.Endpoints.Telegram = e.Telegram
	}
	if c.Endpoints.GoogleNews == "" {
		c.Endpoints.GoogleNews = e.GoogleNews
	}
	if c.Endpoints.RemoteOK == "" {
		c.Endpoints.RemoteOK = e.RemoteOK
	}
	if c.Endpoints.WWR == "" {
		c.Endpoints.WWR = e.WWR
	}

	//titles are lower-cased before matching
	for i, r := range c.Roles {
		c.Roles[i] = strings.ToLower(strings.TrimSpace(r))
	}

	if c.TokenIsPlaceholder() {
		log.Printf("⚠️ telegram_bot_token looks like a placeholder, messages will not be sent")
	}
}

// Validate checks the required fields.
func (c *Config) Validate() error {
	var errs []error
	if c.TelegramToken == "" {
		errs = append(errs, errors.New("telegram_bot_token is required"))
	}
	if c.TelegramChatID == "" {
		errs = append(errs, errors.New("telegram_chat_id is required"))
	}
	if len(c.Roles) == 0 {
		errs = append(errs, errors.New("roles must not be empty"))
	}
	if c.ScanIntervalMinutes < 0 {
		errs = append(errs, fmt.Errorf("scan_interval_minutes must be positive, got %d", c.ScanIntervalMinutes))
	}
	for _, r := range c.Regions {
		if _, ok := regions[r]; !ok {
			errs = append(errs, fmt.Errorf("unknown region %q", r))
		}
	}
	return errors.Join(errs...)
}

// TokenIsPlaceholder reports a token copied unchanged from the sample config.
func (c *Config) TokenIsPlaceholder() bool {
	return strings.Contains(c.TelegramToken, placeholderMarker)
}

// ChatID parses the configured chat id.
func (c *Config) ChatID() (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.TelegramChatID), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid telegram_chat_id %q: %w", c.TelegramChatID, err)
	}
	return id, nil
}

// ScanInterval is the sleep between poll cycles.
func (c *Config) ScanInterval() time.Duration {
	return time.Duration(c.ScanIntervalMinutes) * time.Minute
}
