package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Data      DataConfig      `mapstructure:"data"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// DataConfig names the two raw inputs and the prepared artifact shared
// between the prepare and serve commands.
type DataConfig struct {
	Events  string `mapstructure:"events"`
	Catalog string `mapstructure:"catalog"`
	Output  string `mapstructure:"output"`
}

type DashboardConfig struct {
	DefaultContinents []string `mapstructure:"default_continents"`
	FunnelStages      []string `mapstructure:"funnel_stages"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// A missing config file is not an error; the defaults below apply.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.merchdash/")
	v.AddConfigPath("/etc/merchdash/")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("data.events", "data/events.csv")
	v.SetDefault("data.catalog", "data/items.csv")
	v.SetDefault("data.output", "data/preprocessed_data.csv")
	v.SetDefault("dashboard.default_continents", []string{"Europe"})
	v.SetDefault("dashboard.funnel_stages", []string{"view", "add_to_cart", "purchase"})
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("MERCHDASH")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
