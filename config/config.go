package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	MySQL MySQLConfig

	// Auth
	JWT JWTConfig

	// Mall specifics
	Ark     ArkConfig
	Chat    ChatConfig
	Cleanup CleanupConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type MySQLConfig struct {
	User     string
	Password string
	Host     string
	Port     int
	Database string
}

// DSN returns the go-sql-driver/mysql connection string.
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// ArkConfig holds configuration for the Volcengine Ark completion provider.
type ArkConfig struct {
	APIKey       string
	BaseURL      string
	DefaultModel string
	Timeout      time.Duration
}

// ChatConfig holds tunables of the chat augmentation pipeline.
type ChatConfig struct {
	UserDedupWindow      time.Duration
	AssistantDedupWindow time.Duration
	MaxCandidates        int
	MaxKeywords          int
	RateLimitPerMin      int
}

type CleanupConfig struct {
	Interval time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.MySQL.User = viper.GetString("mysql.user")
	cfg.MySQL.Password = viper.GetString("mysql.password")
	cfg.MySQL.Host = viper.GetString("mysql.host")
	cfg.MySQL.Port = viper.GetInt("mysql.port")
	cfg.MySQL.Database = viper.GetString("mysql.database")
	if dbUser := viper.GetString("db_user"); dbUser != "" {
		cfg.MySQL.User = dbUser
	}
	if dbPassword := viper.GetString("db_password"); dbPassword != "" {
		cfg.MySQL.Password = dbPassword
	}
	if dbHost := viper.GetString("db_host"); dbHost != "" {
		cfg.MySQL.Host = dbHost
	}

	// Auth
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	cfg.JWT.TokenTTL = viper.GetDuration("jwt.token_ttl")
	if secret := viper.GetString("jwt_secret_key"); secret != "" {
		cfg.JWT.Secret = secret
	}

	// Ark completion provider
	cfg.Ark.APIKey = viper.GetString("ark.api_key")
	cfg.Ark.BaseURL = viper.GetString("ark.base_url")
	cfg.Ark.DefaultModel = viper.GetString("ark.default_model")
	cfg.Ark.Timeout = viper.GetDuration("ark.timeout")
	if arkKey := viper.GetString("ark_api_key"); arkKey != "" {
		cfg.Ark.APIKey = arkKey
	}
	if arkBase := viper.GetString("ark_base_url"); arkBase != "" {
		cfg.Ark.BaseURL = arkBase
	}

	// Chat pipeline
	cfg.Chat.UserDedupWindow = viper.GetDuration("chat.user_dedup_window")
	cfg.Chat.AssistantDedupWindow = viper.GetDuration("chat.assistant_dedup_window")
	cfg.Chat.MaxCandidates = viper.GetInt("chat.max_candidates")
	cfg.Chat.MaxKeywords = viper.GetInt("chat.max_keywords")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	// Cleanup job
	cfg.Cleanup.Interval = viper.GetDuration("cleanup.interval")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("mysql.user", "root")
	viper.SetDefault("mysql.password", "")
	viper.SetDefault("mysql.host", "127.0.0.1")
	viper.SetDefault("mysql.port", 3306)
	viper.SetDefault("mysql.database", "mall")

	viper.SetDefault("jwt.secret", "jwt_secret_key")
	viper.SetDefault("jwt.token_ttl", 24*time.Hour)

	viper.SetDefault("ark.base_url", "https://ark.cn-beijing.volces.com/api/v3")
	viper.SetDefault("ark.default_model", "doubao-seed-1-6-250615")
	viper.SetDefault("ark.timeout", 60*time.Second)

	viper.SetDefault("chat.user_dedup_window", 5*time.Second)
	viper.SetDefault("chat.assistant_dedup_window", 3*time.Second)
	viper.SetDefault("chat.max_candidates", 10)
	viper.SetDefault("chat.max_keywords", 5)
	viper.SetDefault("chat.rate_limit_per_min", 60)

	viper.SetDefault("cleanup.interval", time.Hour)
}
