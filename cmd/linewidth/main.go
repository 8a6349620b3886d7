package main

import (
	"context"
	"log"

	"fyne.io/fyne/v2/app"
	"github.com/KirkDiggler/linewidth/internal/common/clock"
	"github.com/KirkDiggler/linewidth/internal/common/uuid"
	"github.com/KirkDiggler/linewidth/internal/config"
	"github.com/KirkDiggler/linewidth/internal/dice"
	"github.com/KirkDiggler/linewidth/internal/handlers/desktop"
	"github.com/KirkDiggler/linewidth/internal/obslog"
	"github.com/KirkDiggler/linewidth/internal/repositories/session"
	"github.com/KirkDiggler/linewidth/internal/services/messaging"
	"github.com/KirkDiggler/linewidth/internal/services/render"
	"github.com/KirkDiggler/linewidth/internal/services/round"
	"github.com/KirkDiggler/linewidth/internal/services/share"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const appID = "io.github.kirkdiggler.linewidth"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := obslog.L()
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// Session storage: Redis when configured, memory otherwise
	sessionRepo := session.NewMemory()
	if cfg.UseRedis() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()

		sessionRepo, err = session.NewRedis(&session.Config{
			RedisClient: redisClient,
			TTL:         cfg.SessionTTL,
		})
		if err != nil {
			logger.Fatal("Failed to create session repository", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		logger.Info("using redis session storage", zap.String("addr", cfg.RedisAddr))
	}

	messagingSvc := messaging.New(nil)

	roundSvc, err := round.New(&round.Config{
		MinThickness:     cfg.StrokeMin,
		MaxThickness:     cfg.StrokeMax,
		MaxGuesses:       cfg.MaxGuesses,
		SessionRepo:      sessionRepo,
		MessagingService: messagingSvc,
		DiceRoller:       dice.New(&dice.Config{}),
		Clock:            clock.New(),
		UUIDGenerator:    uuid.New(),
	})
	if err != nil {
		logger.Fatal("Failed to create round service", zap.Error(err))
	}

	exporter, err := render.New(&render.Config{
		Label:    cfg.ExportLabel,
		Filename: cfg.ExportFilename,
		Quality:  cfg.ExportQuality,
	})
	if err != nil {
		logger.Fatal("Failed to create export service", zap.Error(err))
	}

	fyneApp := app.NewWithID(appID)

	downloader := share.NewFileDownloader(cfg.ExportDir)
	var sharer share.Sharer
	if cfg.ShareViaOS {
		sharer = desktop.NewOSSharer(fyneApp, downloader)
	}

	shareSvc, err := share.New(&share.Config{
		Exporter:   exporter,
		Sharer:     sharer,
		Downloader: downloader,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("Failed to create share service", zap.Error(err))
	}

	handler, err := desktop.New(&desktop.Config{
		App:              fyneApp,
		RoundService:     roundSvc,
		MessagingService: messagingSvc,
		ShareService:     shareSvc,
		MinThickness:     cfg.StrokeMin,
		MaxThickness:     cfg.StrokeMax,
		CanvasWidth:      cfg.CanvasWidth,
		CanvasHeight:     cfg.CanvasHeight,
		Logger:           logger,
	})
	if err != nil {
		logger.Fatal("Failed to create desktop handler", zap.Error(err))
	}

	if err := handler.Start(ctx); err != nil {
		logger.Fatal("Failed to start game", zap.Error(err))
	}

	handler.Run()

	if err := handler.Stop(ctx); err != nil {
		logger.Error("Error stopping game", zap.Error(err))
	}

	logger.Info("Game has been shut down")
}
