package main

import (
	"context"

	"codeberg.org/flamesblue/server/api/rest/diagnostics"
	"codeberg.org/flamesblue/server/internal/config"
	"codeberg.org/flamesblue/server/internal/database"
	"codeberg.org/flamesblue/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) *Server {
	var store *database.Store

	// the database is an optional capability: the /test probe reports its
	// absence, nothing else depends on it
	if cfg.DatabaseURL != "" {
		s, err := database.Connect(context.Background(), cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			logger.ErrorErr(err, "database unavailable, continuing without it")
		} else {
			store = s
			logger.Info("database connected", "name", s.Name())
		}
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		config: cfg,
		store:  store,
		router: router,
	}

	RegisterRoutes(router, server)

	return server
}

// returns the probe's view of the optional database handle; a nil *Store must
// become a nil interface, not a typed nil
func (s *Server) collectionLister() diagnostics.CollectionLister {
	if s.store == nil {
		return nil
	}

	return s.store
}
