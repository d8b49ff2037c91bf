package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type PromptOptions struct {
	Separator    string `toml:"separator"`
	Forbidden    string `toml:"forbidden"`
	HistorySize  int    `toml:"history-size"`
	KillRingSize int    `toml:"kill-ring-size"`
}

type LedgerOptions struct {
	Currency   string `toml:"currency"`
	MaxAgeDays int    `toml:"max-age-days"`
}

type Config struct {
	Prompt PromptOptions     `toml:"prompt"`
	Ledger LedgerOptions     `toml:"ledger"`
	Keymap map[string]string `toml:"keymap"`
}

func Default() Config {
	return Config{
		Prompt: PromptOptions{
			Separator:    ":",
			Forbidden:    " ",
			HistorySize:  100,
			KillRingSize: 5,
		},
		Ledger: LedgerOptions{
			Currency:   "£",
			MaxAgeDays: 180,
		},
		Keymap: map[string]string{},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Prompt.Separator != "" {
		cfg.Prompt.Separator = userCfg.Prompt.Separator
	}
	if userCfg.Prompt.Forbidden != "" {
		cfg.Prompt.Forbidden = userCfg.Prompt.Forbidden
	}
	if userCfg.Prompt.HistorySize > 0 {
		cfg.Prompt.HistorySize = userCfg.Prompt.HistorySize
	}
	if userCfg.Prompt.KillRingSize > 0 {
		cfg.Prompt.KillRingSize = userCfg.Prompt.KillRingSize
	}
	if userCfg.Ledger.Currency != "" {
		cfg.Ledger.Currency = userCfg.Ledger.Currency
	}
	if userCfg.Ledger.MaxAgeDays > 0 {
		cfg.Ledger.MaxAgeDays = userCfg.Ledger.MaxAgeDays
	}
	if userCfg.Keymap != nil {
		for k, v := range userCfg.Keymap {
			cfg.Keymap[k] = v
		}
	}

	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("PATHDO_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "pathdo"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pathdo"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
