// Package config loads server settings from defaults, an optional config
// file and the environment.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	SiteName        string        `mapstructure:"site_name"`
	SiteURL         string        `mapstructure:"site_url"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:            8080,
		Mode:            gin.ReleaseMode,
		SiteName:        "Mitchell Klein",
		ShutdownTimeout: 5 * time.Second,
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Bind registers defaults and environment variables on v. PORT, GIN_MODE,
// SITE_NAME and SITE_URL are read as-is, everything else under the
// PORTFOLIO_ prefix.
func Bind(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("port", d.Port)
	v.SetDefault("mode", d.Mode)
	v.SetDefault("site_name", d.SiteName)
	v.SetDefault("site_url", d.SiteURL)
	v.SetDefault("shutdown_timeout", d.ShutdownTimeout)

	v.SetEnvPrefix("portfolio")
	v.AutomaticEnv()
	_ = v.BindEnv("port", "PORTFOLIO_PORT", "PORT")
	_ = v.BindEnv("mode", "PORTFOLIO_MODE", "GIN_MODE")
	_ = v.BindEnv("site_name", "PORTFOLIO_SITE_NAME", "SITE_NAME")
	_ = v.BindEnv("site_url", "PORTFOLIO_SITE_URL", "SITE_URL")
}

// Load reads the optional config file set on v, then unmarshals and
// validates the result.
func Load(v *viper.Viper) (Config, error) {
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("invalid mode %q (want debug, release or test)", c.Mode)
	}
	if c.SiteName == "" {
		return fmt.Errorf("site name must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout %s", c.ShutdownTimeout)
	}
	return nil
}
