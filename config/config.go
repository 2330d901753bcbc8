package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var ErrMissingCredential = errors.New("[Config] YOUTUBE_API_KEY is not set")

type Config struct {
	// YouTube Data API
	YouTubeAPIKey  string        `mapstructure:"YOUTUBE_API_KEY"`
	YouTubeBaseURL string        `mapstructure:"YOUTUBE_API_BASE_URL" validate:"required,url"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT" validate:"gt=0"`

	// Pipeline
	MaxComments          int     `mapstructure:"MAX_COMMENTS" validate:"min=1,max=1000"`
	PageSize             int     `mapstructure:"PAGE_SIZE" validate:"min=1,max=100"`
	ScriptRatioThreshold float64 `mapstructure:"SCRIPT_RATIO_THRESHOLD" validate:"gt=0,lt=1"`
	TopK                 int     `mapstructure:"TOP_K" validate:"min=1"`

	// Optional comment cache
	Cache CacheConfig `mapstructure:",squash"`

	// HTTP API
	ServerPort int `mapstructure:"SERVER_PORT" validate:"min=1,max=65535"`
}

type CacheConfig struct {
	Address  string        `mapstructure:"CACHE_ADDRESS"`
	Password string        `mapstructure:"CACHE_PASSWORD"`
	TLS      bool          `mapstructure:"CACHE_TLS"`
	TTL      time.Duration `mapstructure:"CACHE_TTL" validate:"gt=0"`
}

// Enabled reports whether a cache address was configured.
func (c CacheConfig) Enabled() bool {
	return strings.TrimSpace(c.Address) != ""
}

// LogValue keeps secrets out of logs.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("api_key_set", c.YouTubeAPIKey != ""),
		slog.String("base_url", c.YouTubeBaseURL),
		slog.Int("max_comments", c.MaxComments),
		slog.Int("page_size", c.PageSize),
		slog.Float64("script_ratio_threshold", c.ScriptRatioThreshold),
		slog.Int("top_k", c.TopK),
		slog.Bool("cache_enabled", c.Cache.Enabled()),
		slog.Int("server_port", c.ServerPort),
	)
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c any) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Nested structs are squashed into the flat env namespace.
		if field.Type.Kind() == reflect.Struct && strings.HasSuffix(tag, ",squash") {
			bindEnv(val.Field(i).Interface())
			continue
		}

		if tag != "" {
			_ = viper.BindEnv(tag)
		}
	}
}

func setDefaults() {
	viper.SetDefault("YOUTUBE_API_BASE_URL", "https://www.googleapis.com/youtube/v3")
	viper.SetDefault("REQUEST_TIMEOUT", 15*time.Second)
	viper.SetDefault("MAX_COMMENTS", 300)
	viper.SetDefault("PAGE_SIZE", 100)
	viper.SetDefault("SCRIPT_RATIO_THRESHOLD", 0.3)
	viper.SetDefault("TOP_K", 5)
	viper.SetDefault("CACHE_TTL", 10*time.Minute)
	viper.SetDefault("SERVER_PORT", 8080)
}

// LoadConfig reads configuration from the environment (and any flags bound
// into viper beforehand), applies defaults and validates the result.
// A missing API key is reported as ErrMissingCredential.
func LoadConfig(ctx context.Context) (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()
	setDefaults()

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("[Config] unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.YouTubeAPIKey) == "" {
		return nil, ErrMissingCredential
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("[Config] validate config: %w", err)
	}

	slog.InfoContext(ctx, "[Config] Loaded configuration", slog.Any("config", cfg))
	return &cfg, nil
}
