package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"
	tokenTelegramENV  = "TELEGRAM_TOKEN"
	chatTelegramENV   = "TELEGRAM_CHAT_ID"
	databaseDSN       = "DATABASE_DSN"
)

// Config ...
type Config struct {
	Feed struct {
		Mode      string `yaml:"mode"` // ws | replay
		URL       string `yaml:"url"`
		InstID    string `yaml:"inst_id"`
		Timeframe string `yaml:"timeframe"`
	} `yaml:"feed"`

	// Параметры EMA. Window и Smoothing фиксируются на старте:
	// оба движка получают один и тот же alpha, менять его на лету нельзя.
	EMA struct {
		Window    int     `yaml:"window"`
		Smoothing float64 `yaml:"smoothing"`
	} `yaml:"ema"`

	// Нотификация один раз при каждом выходе |fast-windowed| за порог.
	// 0 — алерты выключены.
	AlertThreshold float64 `yaml:"alert_threshold"`

	Replay struct {
		Interval time.Duration // env REPLAY_INTERVAL, e.g. 100ms
		Series   []float64     `yaml:"series"`
	} `yaml:"replay"`

	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`

	DB string `yaml:"db_dsn"`

	Jaeger struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"jaeger"`
}

func NewConfig() (*Config, error) {
	config := Config{}

	config.Feed.Mode = getenvDefault("FEED_MODE", "ws")
	config.Feed.URL = getenvDefault("FEED_URL", "wss://ws.okx.com:8443/ws/v5/business")
	config.Feed.InstID = getenvDefault("FEED_INST_ID", "BTC-USDT")
	config.Feed.Timeframe = getenvDefault("FEED_TIMEFRAME", "1m")
	config.EMA.Window = intFromEnv("EMA_WINDOW", 30)
	config.EMA.Smoothing = floatFromEnv("EMA_SMOOTHING", 2.0)
	config.AlertThreshold = floatFromEnv("ALERT_THRESHOLD", 0)
	config.Replay.Interval = durationFromEnv("REPLAY_INTERVAL", "100ms")

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	if file, err := os.Open("configs/" + configFileName); err == nil {
		decoder := yaml.NewDecoder(file)
		err = decoder.Decode(&config)
		_ = file.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode config file %s", configFileName)
		}
	}

	if token := os.Getenv(tokenTelegramENV); token != "" {
		config.Telegram.Token = token
	}
	if chat := os.Getenv(chatTelegramENV); chat != "" {
		if id, err := strconv.ParseInt(chat, 10, 64); err == nil {
			config.Telegram.ChatID = id
		}
	}
	if dsn := os.Getenv(databaseDSN); dsn != "" {
		config.DB = dsn
	}

	return &config, nil
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func floatFromEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationFromEnv(key, def string) time.Duration {
	val := getenvDefault(key, def)
	d, err := time.ParseDuration(val)
	if err != nil {
		d, _ = time.ParseDuration(def)
	}
	return d
}
