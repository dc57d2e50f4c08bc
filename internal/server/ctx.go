package server

import (
	"github.com/rs/zerolog/log"

	"github.com/navikit/coordpad/assets"
	"github.com/navikit/coordpad/internal/config"
	"github.com/navikit/coordpad/internal/coord"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config    *config.Config
	Registry  *coord.Registry
	IndexHTML []byte
}

// NewServerContext initializes the context around the converter registry.
func NewServerContext(cfg *config.Config) *ServerContext {
	registry := coord.NewRegistry()

	log.Info().
		Int("formats", registry.Len()).
		Int("map_links", len(cfg.MapLinks)).
		Msg("Initializing server context")

	for _, link := range cfg.MapLinks {
		log.Debug().
			Str("name", link.Name).
			Str("url", link.URL).
			Msg("Map link registered")
	}

	return &ServerContext{
		Config:    cfg,
		Registry:  registry,
		IndexHTML: assets.Index,
	}
}
