package config

import (
	"errors"
	"fmt"
	"strings"

	"go-bank-console/common"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Storage struct {
		DataFile        string `mapstructure:"data_file" validate:"required"`
		AtomicWrite     bool   `mapstructure:"atomic_write"`
		SaveOnRejection bool   `mapstructure:"save_on_rejection"`
	} `mapstructure:"storage"`
	Log struct {
		Level  string `mapstructure:"level" validate:"oneof=panic fatal error warn warning info debug trace"`
		Format string `mapstructure:"format" validate:"oneof=text json"`
	} `mapstructure:"log"`
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"data-file":  "storage.data_file",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Flags returns the command-line flags understood by LoadConfig.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("bank", pflag.ContinueOnError)
	fs.String("config", ".", "directory containing config.yml")
	fs.String("data-file", "", "path of the accounts file")
	fs.String("log-level", "", "log level (trace, debug, info, warn, error)")
	fs.String("log-format", "", "log format (text or json)")
	return fs
}

// LoadConfig reads config.yml from path if present, then BANK_* environment
// variables, then any flags that were set. Later sources win.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("storage.data_file", "accounts.txt")
	v.SetDefault("storage.atomic_write", true)
	v.SetDefault("storage.save_on_rejection", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix("BANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("unable to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if appErr := common.ValidateStruct(&cfg); appErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", appErr)
	}
	return &cfg, nil
}
