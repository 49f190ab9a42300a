package main

import (
	"errors"
	"flag"
	"io/fs"

	"github.com/danmuck/spritelist/internal/config"
	"github.com/danmuck/spritelist/internal/observability"
	"github.com/danmuck/spritelist/internal/server"
	"github.com/rs/zerolog/log"
)

func main() {
	observability.InitLogger("spritelistd")
	configPath := flag.String("config", "cmd/spritelistd/config.toml", "server config path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.LoadServerConfig(*configPath)
	switch {
	case err == nil:
		log.Info().Str("path", *configPath).Msg("loaded server config")
	case errors.Is(err, fs.ErrNotExist):
		cfg = config.DefaultServerConfig()
		log.Warn().Str("path", *configPath).Msg("config not found, using defaults")
	default:
		log.Fatal().Err(err).Msg("failed to load server config")
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	srv := server.New(cfg)
	if err := srv.Serve(); err != nil {
		log.Fatal().Err(err).Msg("listing server stopped")
	}
}
