package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Log     Logger       `mapstructure:"logger"`
	API     API          `mapstructure:"api"`
	Binance Binance      `mapstructure:"binance"`
	Scanner Scanner      `mapstructure:"scanner"`
	Warmup  WarmupConfig `mapstructure:"warmup"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port               int     `mapstructure:"port"`
	RateLimitPerSecond float64 `mapstructure:"rate_limit_per_second"`
	RateLimitBurst     int     `mapstructure:"rate_limit_burst"`
}

type Binance struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

type Scanner struct {
	DefaultInterval   string        `mapstructure:"default_interval"`
	CandleLimit       int           `mapstructure:"candle_limit"`
	MaxConcurrency    int           `mapstructure:"max_concurrency"`
	StrongThreshold   int           `mapstructure:"strong_threshold"`
	ModerateThreshold int           `mapstructure:"moderate_threshold"`
	ScanTTL           time.Duration `mapstructure:"scan_ttl"`
	CandleTTL         time.Duration `mapstructure:"candle_ttl"`
}

type WarmupConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	CronSpec string   `mapstructure:"cron_spec"`
	Symbols  []string `mapstructure:"symbols"`
	Interval string   `mapstructure:"interval"`
}

func Load() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.rate_limit_per_second", 10)
	viper.SetDefault("api.rate_limit_burst", 30)
	viper.SetDefault("binance.base_url", "https://api.binance.com")
	viper.SetDefault("binance.timeout", 10*time.Second)
	viper.SetDefault("binance.max_request_per_minute", 1200)
	viper.SetDefault("scanner.default_interval", "1h")
	viper.SetDefault("scanner.candle_limit", 200)
	viper.SetDefault("scanner.max_concurrency", 10)
	viper.SetDefault("scanner.strong_threshold", 12)
	viper.SetDefault("scanner.moderate_threshold", 6)
	viper.SetDefault("scanner.scan_ttl", 90*time.Second)
	viper.SetDefault("scanner.candle_ttl", 25*time.Second)
	viper.SetDefault("warmup.enabled", false)
	viper.SetDefault("warmup.cron_spec", "*/2 * * * *")
	viper.SetDefault("warmup.interval", "1h")
}
