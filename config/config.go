package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/jauhararifin/go-tetris"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath     = "TETRIS_CONFIG"
	DefaultConfigPath = "tetris.yaml"
)

type Config struct {
	LogFile string              `yaml:"log_file"`
	Seed    int64               `yaml:"seed"`
	Keys    map[string][]string `yaml:"keys"`
}

func Default() Config {
	return Config{
		Keys: map[string][]string{
			tetris.ActionMoveLeft.String():  {"left"},
			tetris.ActionMoveRight.String(): {"right"},
			tetris.ActionSoftDrop.String():  {"down"},
			tetris.ActionRotate.String():    {"up"},
			tetris.ActionHardDrop.String():  {"space"},
			tetris.ActionRestart.String():   {"r"},
		},
	}
}

// ResolvePath picks the config file: the explicit flag value first, then
// TETRIS_CONFIG (which may come from a .env file), then DefaultConfigPath.
func ResolvePath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("cannot load .env: %w", err)
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	return DefaultConfigPath, nil
}

// Load reads the YAML file at path on top of Default. A missing file yields the
// defaults; keys listed in the file replace the default keys of that action,
// and a key the file binds is taken away from the defaults of every action the
// file does not mention.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	file := Config{}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("cannot parse config %s: %w", path, err)
	}

	if file.LogFile != "" {
		cfg.LogFile = file.LogFile
	}
	if file.Seed != 0 {
		cfg.Seed = file.Seed
	}
	cfg.Keys = mergeKeys(cfg.Keys, file.Keys)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func mergeKeys(defaults, overrides map[string][]string) map[string][]string {
	rebound := make(map[string]bool)
	for _, keys := range overrides {
		for _, key := range keys {
			rebound[strings.ToLower(key)] = true
		}
	}

	merged := make(map[string][]string, len(defaults)+len(overrides))
	for action, keys := range defaults {
		kept := make([]string, 0, len(keys))
		for _, key := range keys {
			if !rebound[strings.ToLower(key)] {
				kept = append(kept, key)
			}
		}
		merged[action] = kept
	}
	for action, keys := range overrides {
		merged[action] = keys
	}
	return merged
}

func (c Config) Validate() error {
	seen := make(map[string]string)
	for _, name := range c.actionNames() {
		action, err := tetris.ParseAction(name)
		if err != nil {
			return err
		}
		if action == tetris.ActionTick {
			return fmt.Errorf("action %q cannot be bound to a key", name)
		}
		for _, key := range c.Keys[name] {
			key = strings.ToLower(key)
			if !IsKeyName(key) {
				return fmt.Errorf("action %s: unknown key %q", name, key)
			}
			if other, ok := seen[key]; ok {
				return fmt.Errorf("key %q bound to both %s and %s", key, other, name)
			}
			seen[key] = name
		}
	}
	return nil
}

func (c Config) actionNames() []string {
	names := make([]string, 0, len(c.Keys))
	for name := range c.Keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bindings maps key names to actions. Call it on a validated Config.
func (c Config) Bindings() map[string]tetris.Action {
	bindings := make(map[string]tetris.Action)
	for name, keys := range c.Keys {
		action, err := tetris.ParseAction(name)
		if err != nil {
			continue
		}
		for _, key := range keys {
			bindings[strings.ToLower(key)] = action
		}
	}
	return bindings
}

// KeysFor lists the keys bound to action in a stable order.
func (c Config) KeysFor(action tetris.Action) []string {
	keys := make([]string, 0, len(c.Keys[action.String()]))
	for _, key := range c.Keys[action.String()] {
		keys = append(keys, strings.ToLower(key))
	}
	sort.Strings(keys)
	return keys
}

// Logger opens the configured log file for appending. Without a log file the
// logger discards everything, since the terminal adapter owns the screen.
func (c Config) Logger(prefix string) (*log.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return log.New(io.Discard, prefix, log.LstdFlags), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", c.LogFile, err)
	}
	return log.New(f, prefix, log.LstdFlags), f, nil
}
