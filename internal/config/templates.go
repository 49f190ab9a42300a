package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "tool":
		return toolTemplate, nil
	case "server":
		return serverTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const toolTemplate = `input = "sprite_data.bin"
output = "sprite_data.asm"
metrics_file = ""
quiet = false
`

const serverTemplate = `name = "spritelistd"
addr = ":9300"
cors_origins = ["http://localhost:3000"]
max_body_bytes = 1048576
`

var toolKeys = map[string]bool{
	"input":        true,
	"output":       true,
	"metrics_file": true,
	"quiet":        true,
}

// ValidateToolFile checks that path parses as TOML and only uses keys the
// spritelist CLI understands.
func ValidateToolFile(path string) error {
	raw := map[string]any{}
	if err := loadToml(path, &raw); err != nil {
		return err
	}
	for key := range raw {
		if !toolKeys[key] {
			return fmt.Errorf("tool config has unknown key %q", key)
		}
	}
	return nil
}
