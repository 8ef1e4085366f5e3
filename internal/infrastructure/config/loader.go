package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/doeshing/aish-go/assets"
	"github.com/doeshing/aish-go/internal/domain"
	"github.com/doeshing/aish-go/internal/pkg/filesystem"
	"github.com/doeshing/aish-go/internal/ports"
)

const (
	// EnvConfigPath points the loader at a config file other than ~/.aish/config.yaml.
	EnvConfigPath = "AISH_CONFIG"
	envPrefix     = "AISH"
)

// FileLoader layers configuration sources, lowest precedence first:
// embedded defaults, the YAML file, AISH_* environment variables and bound flags.
type FileLoader struct {
	overridePath string
	flags        map[string]*pflag.Flag
}

// NewFileLoader builds a new loader. An empty path resolves through AISH_CONFIG
// and then ~/.aish/config.yaml.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{
		overridePath: path,
		flags:        map[string]*pflag.Flag{},
	}
}

// BindFlag lets a command-line flag override a config key such as
// "preferences.timeout". The flag only wins when it was set explicitly.
func (l *FileLoader) BindFlag(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	l.flags[key] = flag
}

// Path returns the config file location the loader reads.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.AishDir(), "config.yaml")
}

// Load implements ports.ConfigProvider. A missing config file is not an
// error; the embedded defaults apply on their own.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(assets.DefaultConfigYAML)); err != nil {
		return domain.Config{}, fmt.Errorf("read embedded defaults: %w", err)
	}

	path := l.Path()
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return domain.Config{}, &domain.ConfigError{Field: path, Err: err}
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return domain.Config{}, &domain.ConfigError{Field: path, Err: err}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range l.flags {
		if err := v.BindPFlag(key, flag); err != nil {
			return domain.Config{}, fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
	}

	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.Config{}, &domain.ConfigError{Field: path, Err: err}
	}

	return hydrateDefaults(cfg), nil
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Preferences.DefaultModel == "" && len(cfg.Models) > 0 {
		cfg.Preferences.DefaultModel = cfg.Models[0].Name
	}
	cfg.Security.RulesFile = filesystem.ExpandPath(cfg.Security.RulesFile)
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
