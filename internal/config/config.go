package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	EnvConfigPath         = "DONELIST_CONFIG"
	appDirName            = "donelist"
)

type Keymap struct {
	Quit      string `toml:"quit"`
	Add       string `toml:"add"`
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Toggle    string `toml:"toggle"`
	Delete    string `toml:"delete"`
	Confirm   string `toml:"confirm"`
	Cancel    string `toml:"cancel"`
	Backspace string `toml:"backspace"`
}

type Config struct {
	LogPath   string `toml:"log_path"`
	LogLevel  string `toml:"log_level"`
	AltScreen bool   `toml:"alt_screen"`
	Keys      Keymap `toml:"keys"`
}

// ResolveConfigPath picks the config file location: $DONELIST_CONFIG if set,
// otherwise config.toml under the user's config directory. It falls back to
// the working directory when no config directory is known.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults first when the
// file does not exist yet. Keys missing from the file keep their defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// fillDefaults restores keys that a config file explicitly set to "".
func (c *Config) fillDefaults() {
	def := Default()
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = def.LogLevel
	}
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&c.Keys.Quit, def.Keys.Quit)
	fill(&c.Keys.Add, def.Keys.Add)
	fill(&c.Keys.Up, def.Keys.Up)
	fill(&c.Keys.Down, def.Keys.Down)
	fill(&c.Keys.Toggle, def.Keys.Toggle)
	fill(&c.Keys.Delete, def.Keys.Delete)
	fill(&c.Keys.Confirm, def.Keys.Confirm)
	fill(&c.Keys.Cancel, def.Keys.Cancel)
	fill(&c.Keys.Backspace, def.Keys.Backspace)
}

// Binding is one action and every key that triggers it: the configured key
// first, then the keys that are always bound.
type Binding struct {
	Action string
	Keys   []string
}

// BrowseBindings lists the Browse mode actions. Arrow keys always navigate
// and ctrl+c always quits.
func (k Keymap) BrowseBindings() []Binding {
	return []Binding{
		{"quit", []string{k.Quit, "ctrl+c"}},
		{"add", []string{k.Add}},
		{"up", []string{k.Up, "up"}},
		{"down", []string{k.Down, "down"}},
		{"toggle", []string{k.Toggle}},
		{"delete", []string{k.Delete}},
	}
}

// ComposeBindings lists the Compose mode actions. ctrl+h always erases, as
// terminals that send ^H for backspace deliver it.
func (k Keymap) ComposeBindings() []Binding {
	return []Binding{
		{"confirm", []string{k.Confirm}},
		{"cancel", []string{k.Cancel}},
		{"backspace", []string{k.Backspace, "ctrl+h"}},
	}
}

// Validate rejects configs where a key would trigger two actions of the same
// mode, the always-bound keys included, and unknown log levels.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	for _, group := range [][]Binding{c.Keys.BrowseBindings(), c.Keys.ComposeBindings()} {
		seen := map[string]string{}
		for _, b := range group {
			if b.Keys[0] == "" {
				return fmt.Errorf("key %q is empty", b.Action)
			}
			for _, key := range b.Keys {
				other, ok := seen[key]
				if ok && other != b.Action {
					return fmt.Errorf("key %q bound to both %s and %s", key, other, b.Action)
				}
				seen[key] = b.Action
			}
		}
	}
	return nil
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		AltScreen: true,
		Keys: Keymap{
			Quit:      "q",
			Add:       "a",
			Up:        "k",
			Down:      "j",
			Toggle:    " ",
			Delete:    "d",
			Confirm:   "enter",
			Cancel:    "esc",
			Backspace: "backspace",
		},
	}
}
