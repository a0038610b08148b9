package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mindspace-care/mindspace-api/internal/appctx"
	"github.com/mindspace-care/mindspace-api/internal/config"
	dbpkg "github.com/mindspace-care/mindspace-api/internal/db"
	"github.com/mindspace-care/mindspace-api/internal/routes"
)

func main() {

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	db := dbpkg.NewDB(cfg)
	rdb := newRedis(cfg)

	app := appctx.New(cfg, db, rdb)
	app.Start(context.Background())

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, app)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// newRedis connects with a short ping timeout; nil means the app runs
// without state persistence rather than refusing to start.
func newRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable")
		return nil
	}
	return client
}
