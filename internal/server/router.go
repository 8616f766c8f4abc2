// Package server assembles the HTTP and gRPC front ends.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-invoice-service/config"
	"github.com/fekuna/omnipos-invoice-service/internal/health"
	"github.com/fekuna/omnipos-invoice-service/internal/httpresp"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/storage"
	"github.com/gin-gonic/gin"
)

const maxMultipartMemory = 8 << 20

type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// NewRouter mounts every registrar under /api next to /health and, for local
// storage, the uploaded images.
func NewRouter(cfg *config.Config, log logger.ZapLogger, db health.Pinger, registrars ...RouteRegistrar) *gin.Engine {
	if cfg.Server.AppEnv != "development" && cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = maxMultipartMemory
	r.Use(gin.Recovery(), RequestID(), RequestLogger(log), CORS(cfg.Server.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpresp.ErrorBody{Error: "Database unavailable", Details: []string{err.Error()}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Storage.Driver == storage.DriverLocal {
		r.Static(cfg.Storage.URLPrefix, cfg.Storage.UploadDir)
	}

	r.NoRoute(func(c *gin.Context) {
		httpresp.NotFound(c, "Route not found")
	})

	api := r.Group("/api")
	for _, reg := range registrars {
		reg.RegisterRoutes(api)
	}
	return r
}
