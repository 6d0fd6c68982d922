// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL         string `mapstructure:"url"`
		AutoMigrate bool   `mapstructure:"auto_migrate"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		// SingleUser の場合は表示名で絞り込まず、全ての単語を対象にします
		SingleUser bool   `mapstructure:"single_user"`
		Timezone   string `mapstructure:"timezone"` // 日付グループの基準タイムゾーン
	} `mapstructure:"app"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Profile struct {
		Path string `mapstructure:"path"` // ターミナル版の表示名ファイル
	} `mapstructure:"profile"`
}

var Cfg Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.url", "")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("app.single_user", false)
	v.SetDefault("app.timezone", DefaultTimezone)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "X-Display-Name"})
	v.SetDefault("cors.exposed_headers", []string{})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("profile.path", "")
}

// LoadConfig は .env、config.yaml、環境変数の順に設定を読み込み Cfg に格納します。
// 環境変数は APP_ 接頭辞 (例: APP_LOG_LEVEL) で、DATABASE_URL だけは接頭辞なしでも読みます。
func LoadConfig(paths ...string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", slog.Any("error", err))
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("LoadConfig: reading config file: %w", err)
		}
		slog.Debug("Config file not found, using defaults and environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("LoadConfig: unmarshalling config: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return fmt.Errorf("LoadConfig: %w", err)
	}
	if cfg.Database.URL == "" {
		slog.Warn("Database URL is not set in config")
	}

	Cfg = cfg
	slog.Debug("Config loaded",
		slog.String("port", Cfg.Server.Port),
		slog.Bool("single_user", Cfg.App.SingleUser),
		slog.String("timezone", Cfg.App.Timezone),
	)
	return nil
}

// Location は日付グループの基準タイムゾーンを返します
func (c *Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid app.timezone %q: %w", c.App.Timezone, err)
	}
	return loc, nil
}
