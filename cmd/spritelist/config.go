package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultInput  = "sprite_data.bin"
	defaultOutput = "sprite_data.asm"
)

type fileConfig struct {
	Input       string `toml:"input"`
	Output      string `toml:"output"`
	MetricsFile string `toml:"metrics_file"`
	Quiet       bool   `toml:"quiet"`
}

type toolConfig struct {
	Input       string
	Output      string
	MetricsFile string
	Quiet       bool
}

func defaultToolConfig() toolConfig {
	return toolConfig{
		Input:  defaultInput,
		Output: defaultOutput,
	}
}

func loadToolConfig(path string) (toolConfig, error) {
	cfg := defaultToolConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return toolConfig{}, fmt.Errorf("load spritelist config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return toolConfig{}, fmt.Errorf("load spritelist config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("input") {
		if v := strings.TrimSpace(raw.Input); v != "" {
			cfg.Input = v
		}
	}

	if meta.IsDefined("output") {
		if v := strings.TrimSpace(raw.Output); v != "" {
			cfg.Output = v
		}
	}

	if meta.IsDefined("metrics_file") {
		cfg.MetricsFile = strings.TrimSpace(raw.MetricsFile)
	}

	if meta.IsDefined("quiet") {
		cfg.Quiet = raw.Quiet
	}

	return cfg, nil
}
