package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Session  SessionConfig  `mapstructure:"session"`
	Audit    AuditConfig    `mapstructure:"audit"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release / test
}

// BackendConfig 店铺后端 (REST 协作方)
type BackendConfig struct {
	URL           string        `mapstructure:"url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RatePerMinute int           `mapstructure:"rate_per_minute"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite / postgres
	DSN    string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret    string        `mapstructure:"secret"`
	AccessTTL time.Duration `mapstructure:"access_ttl"`
	Issuer    string        `mapstructure:"issuer"`
}

type SessionConfig struct {
	TTL         time.Duration `mapstructure:"ttl"`
	CleanupCron string        `mapstructure:"cleanup_cron"`
}

type AuditConfig struct {
	RetentionDays int    `mapstructure:"retention_days"`
	CleanupCron   string `mapstructure:"cleanup_cron"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// setDefaults 默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("backend.url", "http://localhost:4000")
	v.SetDefault("backend.timeout", 30*time.Second)
	v.SetDefault("backend.rate_per_minute", 30)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "phonewraps_admin.db")

	v.SetDefault("jwt.secret", "phonewraps-admin-secret-change-in-production")
	v.SetDefault("jwt.access_ttl", 12*time.Hour)
	v.SetDefault("jwt.issuer", "phonewraps-admin")

	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.cleanup_cron", "0 */10 * * * *")

	v.SetDefault("audit.retention_days", 90)
	v.SetDefault("audit.cleanup_cron", "0 30 3 * * *")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load 加载配置
// 优先级: 环境变量 (PWA_ 前缀) > config 文件 > 默认值
// configPath 为空时只在工作目录下查找 config.yaml
func Load(configPath string) (*Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PWA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.Backend.URL = strings.TrimRight(cfg.Backend.URL, "/")
	return &cfg, nil
}
