package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gabrielcaixeta01/barber-agenda/internal/cache"
	"github.com/gabrielcaixeta01/barber-agenda/internal/config"
	"github.com/gabrielcaixeta01/barber-agenda/internal/db"
	"github.com/gabrielcaixeta01/barber-agenda/internal/middleware"
	"github.com/gabrielcaixeta01/barber-agenda/internal/routes"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	database := db.NewDB(cfg)

	viewCache := cache.New(cfg.RedisURL)
	if viewCache == nil {
		log.Info().Msg("redis not configured, view cache disabled")
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, viewCache, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("starting server")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
