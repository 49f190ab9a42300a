package main

import (
	"flag"
	"fmt"

	"github.com/danmuck/spritelist/internal/config"
	"github.com/danmuck/spritelist/internal/observability"
	"github.com/rs/zerolog/log"
)

func defaultPath(kind string) (string, error) {
	switch kind {
	case "tool":
		return "cmd/spritelist/config.toml", nil
	case "server":
		return "cmd/spritelistd/config.toml", nil
	default:
		return "", fmt.Errorf("unknown kind: %s", kind)
	}
}

func main() {
	observability.InitLogger("configgen")

	kind := flag.String("kind", "tool", "config kind: tool|server")
	output := flag.String("output", "", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "", "config path for validation (defaults to per-kind cmd path)")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			p, err := defaultPath(*kind)
			if err != nil {
				log.Fatal().Err(err).Msg("validate")
			}
			path = p
		}

		switch *kind {
		case "server":
			if _, err := config.LoadServerConfig(path); err != nil {
				log.Fatal().Err(err).Msg("validate")
			}
		case "tool":
			if err := config.ValidateToolFile(path); err != nil {
				log.Fatal().Err(err).Msg("validate")
			}
		default:
			log.Fatal().Str("kind", *kind).Msg("unknown kind")
		}
		log.Info().Str("kind", *kind).Str("path", path).Msg("validated config")
		return
	}

	target := *output
	if target == "" {
		p, err := defaultPath(*kind)
		if err != nil {
			log.Fatal().Err(err).Msg("write template")
		}
		target = p
	}

	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal().Err(err).Msg("write template")
	}
	log.Info().Str("kind", *kind).Str("path", target).Msg("wrote config template")
}
