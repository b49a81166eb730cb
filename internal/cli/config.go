package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/cowbox/pkg/types"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix maps config keys to COWBOX_FORMAT, COWBOX_TRACE, COWBOX_HISTORY_FILE.
	envPrefix = "COWBOX"

	cfgKeyFormat      = "format"
	cfgKeyTrace       = "trace"
	cfgKeyDataDir     = "data_dir"
	cfgKeyHistoryFile = "history_file"
)

// loadConfig reads config.yaml from configDir using Viper, with defaults and
// COWBOX_* environment overrides applied. A missing config.yaml or config
// directory is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyFormat, types.DefaultFormat)
	v.SetDefault(cfgKeyTrace, false)
	v.SetDefault(cfgKeyDataDir, "")
	v.SetDefault(cfgKeyHistoryFile, "")
	v.SetEnvPrefix(envPrefix)
	// data_dir is left to paths.ResolveDataDir so the file wins over COWBOX_DATA_DIR.
	for _, key := range []string{cfgKeyFormat, cfgKeyTrace, cfgKeyHistoryFile} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// configFromViper copies the loaded settings into a types.Config.
func configFromViper(v *viper.Viper) types.Config {
	return types.Config{
		Format:      v.GetString(cfgKeyFormat),
		Trace:       v.GetBool(cfgKeyTrace),
		DataDir:     v.GetString(cfgKeyDataDir),
		HistoryFile: v.GetString(cfgKeyHistoryFile),
	}
}

// writeConfigIfMissing creates config.yaml with cfg's values if the file
// does not exist. If it already exists, the function reports false.
func writeConfigIfMissing(configDir string, cfg types.Config) (bool, error) {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
