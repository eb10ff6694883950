package config

import (
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix maps CPUCATALOG_SERVER_PORT style variables onto config keys.
const envPrefix = "CPUCATALOG_"

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Storage  StorageConfig  `koanf:"storage"`
	Redis    RedisConfig    `koanf:"redis"`
	Queue    QueueConfig    `koanf:"queue"`
	Auth     AuthConfig     `koanf:"auth"`
	Watcher  WatcherConfig  `koanf:"watcher"`
	Notifier NotifierConfig `koanf:"notifier"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
}

type StorageConfig struct {
	DSN string `koanf:"dsn"`
}

type RedisConfig struct {
	Addr string `koanf:"addr"`
}

type QueueConfig struct {
	Brokers []string `koanf:"brokers"`
	Topic   string   `koanf:"topic"`
	GroupID string   `koanf:"group_id"`
}

type AuthConfig struct {
	// Secret signs API tokens. AdminPassword gates the login endpoint;
	// AdminToken, when set, is accepted directly as a bearer credential.
	Secret        string        `koanf:"secret"`
	AdminPassword string        `koanf:"admin_password"`
	AdminToken    string        `koanf:"admin_token"`
	TokenTTL      time.Duration `koanf:"token_ttl"`
}

type WatcherConfig struct {
	Feeds    []FeedConfig  `koanf:"feeds"`
	Interval time.Duration `koanf:"interval"`
}

// FeedConfig is one vendor newsroom feed. Family biases classification of
// announcements from that feed.
type FeedConfig struct {
	Name   string `koanf:"name"`
	URL    string `koanf:"url"`
	Family string `koanf:"family"`
}

type NotifierConfig struct {
	TelegramToken   string   `koanf:"telegram_token"`
	TelegramChatIDs []string `koanf:"telegram_chat_ids"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = ":8000"
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 7 * 24 * time.Hour
	}
	if c.Watcher.Interval == 0 {
		c.Watcher.Interval = 15 * time.Minute
	}
	if c.Queue.Topic == "" {
		c.Queue.Topic = "cpu-announcements"
	}
	if c.Queue.GroupID == "" {
		c.Queue.GroupID = "cpucatalog-consumer"
	}
}
