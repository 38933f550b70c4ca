package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/cache"
	"github.com/mamadbah2/khamar/internal/config"
	"github.com/mamadbah2/khamar/internal/domain/models"
	"github.com/mamadbah2/khamar/internal/repository/mongodb"
	"github.com/mamadbah2/khamar/internal/repository/sheets"
	"github.com/mamadbah2/khamar/internal/scheduler"
	"github.com/mamadbah2/khamar/internal/server/handlers"
	"github.com/mamadbah2/khamar/internal/server/router"
	"github.com/mamadbah2/khamar/internal/service/auth"
	"github.com/mamadbah2/khamar/internal/service/insights"
	"github.com/mamadbah2/khamar/internal/service/narrative"
	"github.com/mamadbah2/khamar/internal/service/records"
	"github.com/mamadbah2/khamar/internal/service/reporting"
	"github.com/mamadbah2/khamar/pkg/clients/anthropic"
	"github.com/mamadbah2/khamar/pkg/clients/gemini"
	"github.com/mamadbah2/khamar/pkg/clients/recordstore"
	"github.com/mamadbah2/khamar/pkg/clients/whatsapp"
	"github.com/mamadbah2/khamar/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)
	gin.SetMode(gin.ReleaseMode)

	// Validate already checked the zone.
	location, _ := time.LoadLocation(cfg.Reporting.Timezone)
	lang := models.ParseLanguage(cfg.DefaultLang, models.LanguageEnglish)

	ctx := context.Background()

	var store records.Store
	if cfg.Store.URL != "" {
		store = recordstore.NewClient(cfg.Store.URL, cfg.Auth.Username, cfg.Auth.Password)
		baseLogger.Info("using remote record store", zap.String("url", cfg.Store.URL))
	} else {
		mongoRepo, err := mongodb.NewRecordRepository(ctx, cfg.MongoDB.URI, cfg.MongoDB.DBName, baseLogger.Named("repo.mongodb"))
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		store = mongoRepo
	}

	requester := narrative.NewRequester(newProvider(cfg, baseLogger), newCache(ctx, cfg, baseLogger), baseLogger.Named("svc.narrative"))

	var notifier records.Notifier
	if cfg.WhatsAppEnabled() {
		notifier = whatsapp.NewClient(cfg.WhatsApp)
		baseLogger.Info("whatsapp owner notifications enabled")
	}

	var summaryWriter scheduler.SummaryWriter
	if cfg.SheetsEnabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		summaryWriter = sheetsRepo
	}

	board := insights.NewBoard()
	authSvc := auth.NewService(cfg.Auth)
	recordSvc := records.NewService(store, requester, baseLogger.Named("svc.records"),
		records.WithPublisher(board),
		records.WithNotifier(notifier))
	reportingSvc := reporting.NewService(store, baseLogger.Named("svc.reporting"))

	engine := router.New(router.Handlers{
		Auth:      handlers.NewAuthHandler(authSvc, lang, baseLogger.Named("handlers.auth")),
		Records:   handlers.NewRecordHandler(recordSvc, lang, baseLogger.Named("handlers.records")),
		Analytics: handlers.NewAnalyticsHandler(reportingSvc, lang, location, baseLogger.Named("handlers.analytics")),
		Insights:  handlers.NewInsightHandler(requester, board, lang, location, baseLogger.Named("handlers.insights")),
	}, authSvc, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting.CronSchedule, location, lang, reportingSvc, summaryWriter, notifier, baseLogger.Named("scheduler"))
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-sigCtx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newProvider(cfg *config.Config, log *zap.Logger) narrative.Provider {
	if !cfg.NarrativeEnabled() {
		log.Warn("narrative api key missing, ai insights disabled", zap.String("provider", cfg.Narrative.Provider))
		return nil
	}

	n := cfg.Narrative
	profiles := narrative.DefaultProfiles(n.DailyModel, n.AnomalyModel, n.MarketModel)

	if n.Provider == config.ProviderAnthropic {
		log.Info("anthropic narrative provider enabled")
		return narrative.NewAnthropicProvider(anthropic.NewClient(n.AnthropicKey, n.AnthropicURL, n.AnthropicModel), profiles)
	}
	log.Info("gemini narrative provider enabled")
	return narrative.NewGeminiProvider(gemini.NewClient(n.GeminiKey, n.GeminiBaseURL), profiles)
}

func newCache(ctx context.Context, cfg *config.Config, log *zap.Logger) narrative.Cache {
	if cfg.Cache.RedisURL == "" {
		return nil
	}
	c, err := cache.NewInsightCache(ctx, cfg.Cache.RedisURL, cfg.Cache.MarketTTL, log.Named("cache.redis"))
	if err != nil {
		log.Warn("market insight cache disabled", zap.Error(err))
		return nil
	}
	return c
}
