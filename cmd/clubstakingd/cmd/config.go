package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/productscience/clubstaking/app"
)

const (
	configFileName = "config.yaml"
	envPrefix      = "CLUBSTAKING_"
)

// Config is the host's config.yaml. Any key can be overridden from the
// environment, e.g. CLUBSTAKING_BOOKKEEPING__DOUBLE_ENTRY=true.
type Config struct {
	// From is the default signer when --from is not given
	From        string        `koanf:"from"`
	LogLevel    string        `koanf:"log_level"`
	LogJSON     bool          `koanf:"log_json"`
	ListenAddr  string        `koanf:"listen_addr"`
	Bookkeeping app.LogConfig `koanf:"bookkeeping"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		ListenAddr:  ":8080",
		Bookkeeping: app.DefaultLogConfig(),
	}
}

func configPath(home string) string {
	return filepath.Join(home, configFileName)
}

// readConfig layers the config file, when present, and the environment over
// the defaults.
func readConfig(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("error loading defaults: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error loading config %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("error loading env: %w", err)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return config, nil
}

func writeConfig(path string, config Config) error {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(config, "koanf"), nil); err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	output, err := k.Marshal(yaml.Parser())
	if err != nil {
		return fmt.Errorf("error marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, output, 0o644)
}
