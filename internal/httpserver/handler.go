package httpserver

import (
	"context"
	"time"

	catalogHTTP "catalog-srv/internal/catalog/delivery/http"
	"catalog-srv/internal/catalog/repository"
	catalogPostgre "catalog-srv/internal/catalog/repository/postgre"
	catalogRedis "catalog-srv/internal/catalog/repository/redis"
	catalogUsecase "catalog-srv/internal/catalog/usecase"
	"catalog-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	srv.setupCatalogDomain(context.Background())

	return nil
}

// setupCatalogDomain initializes the catalog domain (repo -> usecase -> delivery).
func (srv *HTTPServer) setupCatalogDomain(ctx context.Context) {
	repo := catalogPostgre.New(srv.l, srv.postgresDB)

	var cacheRepo repository.CacheRepository
	if srv.redisClient != nil {
		cacheRepo = catalogRedis.New(srv.l, srv.redisClient, catalogRedis.Config{
			ResultTTL: time.Duration(srv.config.Catalog.ResultCacheTTL) * time.Second,
			FacetTTL:  time.Duration(srv.config.Catalog.FacetCacheTTL) * time.Second,
		})
	}

	uc := catalogUsecase.New(repo, cacheRepo, srv.l, catalogUsecase.Config{
		CacheEnabled: srv.config.Catalog.CacheEnabled && cacheRepo != nil,
	})

	handler := catalogHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(srv.gin.Group(""))

	srv.l.Infof(ctx, "Catalog domain registered")
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	// Log CORS mode for visibility
	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive)", srv.environment)
	}

	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.Metrics())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
