// Package server exposes the byte-listing converter over HTTP.
package server

import (
	"time"

	"github.com/danmuck/spritelist/internal/config"
	"github.com/danmuck/spritelist/internal/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Server struct {
	ID           string
	Addr         string
	MaxBodyBytes int64
	Appeared     time.Time

	router *gin.Engine
}

func New(cfg config.ServerConfig) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	if len(cfg.CorsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CorsOrigins,
			AllowMethods:  []string{"GET", "POST"},
			AllowHeaders:  []string{"Origin", "Content-Type"},
			ExposeHeaders: []string{headerBytes, headerRecords},
			MaxAge:        12 * time.Hour,
		}))
	}
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = config.DefaultMaxBodyBytes
	}

	s := &Server{
		ID:           cfg.Name,
		Addr:         cfg.Addr,
		MaxBodyBytes: maxBody,
		Appeared:     time.Now(),
		router:       r,
	}
	s.registerRoutes()
	return s
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

func (s *Server) Serve() error {
	log.Info().Str("id", s.ID).Str("addr", s.Addr).Msg("listing server started")
	return s.router.Run(s.Addr)
}
