package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sharpfade/barbershop-api/internal/cache"
	"github.com/sharpfade/barbershop-api/internal/config"
	dbpkg "github.com/sharpfade/barbershop-api/internal/db"
	"github.com/sharpfade/barbershop-api/internal/logging"
	"github.com/sharpfade/barbershop-api/internal/routes"
)

func main() {

	cfg := config.Load()

	logger := logging.Init(cfg.IsProduction())
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)
	rdb := cache.New(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	zap.L().Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zap.L().Fatal("server exited", zap.Error(err))
	}
}
