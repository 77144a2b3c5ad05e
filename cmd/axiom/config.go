// Config loading for the axiom CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/axiom/internal/repo"
)

const (
	configName = ".axiom"
	configType = "yaml"

	// Config keys.
	cfgKeyMarker    = "marker"
	cfgKeyListLimit = "list_limit"
)

// cfg holds the loaded configuration. Set by the root command's
// PersistentPreRunE so every subcommand can read it.
var cfg *viper.Viper

// loadConfig reads the optional .axiom.yaml from the current directory or the
// user's home directory, or from an explicit --config path. A missing default
// config file is not an error; a missing explicit one is.
func loadConfig(configFile string) error {
	v := viper.New()
	v.SetDefault(cfgKeyMarker, repo.DefaultMarker)
	v.SetDefault(cfgKeyListLimit, 0)
	v.SetEnvPrefix("AXIOM")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configFile, err)
		}
		cfg = v
		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg = v
	return nil
}

// configMarker returns the version-control marker directory name to search for.
func configMarker() string {
	if cfg == nil {
		return repo.DefaultMarker
	}
	return cfg.GetString(cfgKeyMarker)
}

// configListLimit returns the maximum rows the list command prints (0 = all).
func configListLimit() int {
	if cfg == nil {
		return 0
	}
	return cfg.GetInt(cfgKeyListLimit)
}
