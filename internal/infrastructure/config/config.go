// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tesso57/headlines/internal/application/settings"
	"gopkg.in/yaml.v3"
)

const appName = "headlines"

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// DefaultPath returns $HOME/.config/headlines/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.yaml"), nil
}

// Load loads the configuration from the specified path or default location.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := settings.Settings{}
	store := &Store{Settings: cfg, configPath: configPath}

	var options []kong.Option
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse([]string{}); err != nil {
		return nil, err
	}

	store.Settings = normalize(cfg)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.configPath
}

func normalize(cfg settings.Settings) settings.Settings {
	cfg.NewsAPI.APIKey = strings.TrimSpace(cfg.NewsAPI.APIKey)
	cfg.NewsAPI.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.NewsAPI.BaseURL), "/")
	cfg.NewsAPI.Country = strings.ToLower(strings.TrimSpace(cfg.NewsAPI.Country))
	cfg.NewsAPI.Language = strings.ToLower(strings.TrimSpace(cfg.NewsAPI.Language))
	cfg.NewsAPI.Query = strings.Join(strings.Fields(cfg.NewsAPI.Query), " ")
	cfg.NewsAPI.FixtureFile = strings.TrimSpace(cfg.NewsAPI.FixtureFile)
	if cfg.NewsAPI.RequestsPerSecond < 0 {
		cfg.NewsAPI.RequestsPerSecond = 0
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(defaultDataHome(), appName, appName+".log")
	}
	return cfg
}

func defaultDataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome != "" {
		return dataHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return resolvedValue(v), nil
			}

			parts := strings.Split(name, ".")
			if len(parts) > 1 {
				curr := values
				for i, part := range parts {
					if i == len(parts)-1 {
						if v, ok := curr[part]; ok {
							return resolvedValue(v), nil
						}
					} else {
						if nextMap, ok := curr[part].(map[string]any); ok {
							curr = nextMap
						} else {
							break
						}
					}
				}
			}
		}
		return nil, nil
	}
	return f, nil
}

// resolvedValue hands numbers to kong as strings so ints and floats decode into either field kind.
func resolvedValue(v any) any {
	switch n := v.(type) {
	case int, int64, float64:
		return fmt.Sprint(n)
	default:
		return v
	}
}

// SetAPIKey updates the key and saves the configuration.
func (s *Store) SetAPIKey(key string) error {
	s.Settings.NewsAPI.APIKey = strings.TrimSpace(key)
	return s.Save()
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.OpenFile(s.configPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}
