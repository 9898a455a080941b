package commands

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Records string `mapstructure:"records"`
	Format  string `mapstructure:"format"`
	Output  string `mapstructure:"output"`
	Top     int    `mapstructure:"top"`
	RunDir  string `mapstructure:"run_dir"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".evalvault")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func resolveString(value string, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func resolveInt(value int, fallback int, def int) int {
	if value > 0 {
		return value
	}
	if fallback > 0 {
		return fallback
	}
	return def
}
