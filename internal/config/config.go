package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	envPrefix        = "POSTBOARD"
	defaultJWTSecret = "dev-secret-change-in-production"
)

// Config is the full runtime configuration of the API.
type Config struct {
	Env    string       `mapstructure:"env"`
	Port   string       `mapstructure:"port"`
	Log    LogConfig    `mapstructure:"log"`
	DB     DBConfig     `mapstructure:"db"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Feed   FeedConfig   `mapstructure:"feed"`
	Server ServerConfig `mapstructure:"server"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"` // console | json
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expire     time.Duration `mapstructure:"expire"`
	CookieName string        `mapstructure:"cookie_name"`
}

type FeedConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Limit    int           `mapstructure:"limit"`
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// IsProduction reports whether the API runs in production mode.
func (c *Config) IsProduction() bool { return c.Env == EnvProduction }

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("port", "5000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("jwt.secret", defaultJWTSecret)
	v.SetDefault("jwt.expire", 30*24*time.Hour)
	v.SetDefault("jwt.cookie_name", "token")
	v.SetDefault("feed.interval", time.Second)
	v.SetDefault("feed.limit", 20)
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// Load reads config.yml from dir (a missing file is fine), applies
// POSTBOARD_* environment overrides and validates the result.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(dir) // <dir>/config.yml
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvDevelopment, EnvProduction, "test":
	default:
		return fmt.Errorf("invalid env %q", c.Env)
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret must be set")
	}
	if c.IsProduction() && c.JWT.Secret == defaultJWTSecret {
		return errors.New("jwt.secret must be changed in production")
	}
	if c.JWT.Expire <= 0 {
		return fmt.Errorf("jwt.expire must be positive, got %s", c.JWT.Expire)
	}
	if c.Feed.Limit <= 0 {
		return fmt.Errorf("feed.limit must be positive, got %d", c.Feed.Limit)
	}
	return nil
}
