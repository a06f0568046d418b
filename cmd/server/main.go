package main

import (
	"context"
	"os"
	"time"

	"github.com/biochemsafety/site/internal/auth"
	"github.com/biochemsafety/site/internal/config"
	"github.com/biochemsafety/site/internal/content"
	"github.com/biochemsafety/site/internal/db"
	"github.com/biochemsafety/site/internal/handler"
	"github.com/biochemsafety/site/internal/router"
	"github.com/biochemsafety/site/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal().Err(err).Msg("initialize database")
	}

	if cfg.AdminUserName != "" && cfg.AdminPassword != "" {
		if err := db.EnsureAdmin(cfg.AdminUserName, cfg.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("ensure admin account")
		}
	}

	defaults, err := content.LoadDefaults()
	if err != nil {
		log.Fatal().Err(err).Msg("load fallback content")
	}

	store, err := buildStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize upload storage")
	}

	api := handler.NewAPI(db.DB, defaults, handler.Options{
		Store:       store,
		Notifier:    auth.NewNotifier(),
		Logger:      log,
		SiteBaseURL: cfg.SiteBaseURL,
		LegacyHosts: cfg.LegacyHosts,
	})
	defer api.Close()

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, serving without cache")
		} else {
			api.ContentService().SetCache(client)
			log.Info().Str("addr", cfg.RedisAddr).Msg("content cache enabled")
		}
	}

	r := router.Setup(api, cfg.SessionSecret)

	log.Info().Str("addr", cfg.ListenAddr).Msg("server listening")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("run server")
	}
}

func buildStore(cfg config.AppConfig, log zerolog.Logger) (storage.ObjectStore, error) {
	if cfg.StorageDriver == config.StorageS3 {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Bucket:        cfg.S3Bucket,
			UseSSL:        cfg.S3UseSSL,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
	}
	log.Info().Str("dir", cfg.UploadDir).Msg("using local upload storage")
	return &storage.LocalStore{Dir: cfg.UploadDir, URLPath: cfg.UploadURLPath}, nil
}
