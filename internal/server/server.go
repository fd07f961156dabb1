package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/api"
	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/config"
	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/store"
)

// Server je HTTP poslužitelj aplikacije.
type Server struct {
	router *gin.Engine
	store  *store.MemoryStore
	api    *api.Handler
}

// NewServer stvara poslužitelj nad svježim in-memory storeom.
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	memStore := store.NewMemoryStore()

	downloadTTL := time.Duration(cfg.Export.DownloadTTLMinutes) * time.Minute
	if downloadTTL <= 0 {
		downloadTTL = 10 * time.Minute
	}
	apiHandler := api.NewHandler(memStore, downloadTTL)

	router := gin.Default()
	if cfg.Import.MaxArchiveMB > 0 {
		router.MaxMultipartMemory = int64(cfg.Import.MaxArchiveMB) << 20
	}

	s := &Server{
		router: router,
		store:  memStore,
		api:    apiHandler,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes postavlja rute.
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API rute
	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	if devMode {
		// razvojni mod: frontend dev server vrti rutu
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		s.router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "nepoznata ruta"})
		})
	}
}

// Run pokreće poslužitelj.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// GetStore vraća store (za testove).
func (s *Server) GetStore() *store.MemoryStore {
	return s.store
}
