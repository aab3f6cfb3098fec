package main

import (
	"codeberg.org/flamesblue/server/internal/config"
	"codeberg.org/flamesblue/server/internal/database"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config *config.Config
	store  *database.Store
	router *gin.Engine
}
