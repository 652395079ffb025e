package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"plantscan/config"
	"plantscan/database"
	"plantscan/pkg/ai"
	"plantscan/pkg/logger"
	"plantscan/pkg/middleware"
	"plantscan/router"

	// Identify
	identifyCtrlImp "plantscan/pkg/identify/controllerImp"
	identifySvcImp "plantscan/pkg/identify/serviceImp"

	// Guide
	guideCtrlImp "plantscan/pkg/guide/controllerImp"
	guideRepoImp "plantscan/pkg/guide/repositoryImp"
	"plantscan/pkg/guide/seed"
	guideSvcImp "plantscan/pkg/guide/serviceImp"

	// Community
	communityCtrlImp "plantscan/pkg/community/controllerImp"
	communityRepoImp "plantscan/pkg/community/repositoryImp"
	communitySvcImp "plantscan/pkg/community/serviceImp"

	// Theme + Health
	healthCtrlImp "plantscan/pkg/health/controllerImp"
	themeCtrlImp "plantscan/pkg/theme/controllerImp"
)

func main() {
	// 1) Config + logging
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.For("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2) DB (in-memory sqlite) + seed
	db, err := database.OpenSQLite(cfg.DBDSN)
	if err != nil {
		log.WithError(err).Fatal("database")
	}
	plants := database.DefaultPlants()
	if cfg.GuideSeedPath != "" {
		loaded, err := seed.LoadFromFile(cfg.GuideSeedPath)
		if err != nil {
			log.WithError(err).Warn("guide seed file ignored, using built-in catalog")
		} else {
			plants = loaded
		}
	}
	if err := database.Seed(db, plants, time.Now()); err != nil {
		log.WithError(err).Fatal("seed")
	}

	// 3) Model (mock fallback)
	var llm ai.Client
	if cfg.GeminiAPIKey != "" {
		llm, err = ai.NewGemini(ctx, ai.GeminiOptions{
			APIKey:           cfg.GeminiAPIKey,
			Model:            cfg.GeminiModel,
			StructuredOutput: cfg.StructuredOutput,
		})
		if err != nil {
			log.WithError(err).Fatal("gemini client")
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, identification uses the mock model")
		llm = ai.NewMock()
	}

	// 4) Services + controllers
	ctl := router.Controllers{
		Identify:  identifyCtrlImp.New(identifySvcImp.NewIdentifyService(llm, cfg.IdentifyStrict)),
		Guide:     guideCtrlImp.New(guideSvcImp.NewGuideService(guideRepoImp.New(db))),
		Community: communityCtrlImp.New(communitySvcImp.NewCommunityService(communityRepoImp.New(db))),
		Theme:     themeCtrlImp.New(),
		Health:    healthCtrlImp.NewHealthCtrl(db, llm.Name()),
	}

	// 5) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit))
	r := router.New(e, ctl, database.CurrentMemberID, cfg.StaticDir)

	// 6) Start, stop on SIGINT/SIGTERM
	go func() {
		log.WithField("port", cfg.Port).WithField("model", llm.Name()).Info("listening")
		if err := r.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
	log.Info("bye")
}
