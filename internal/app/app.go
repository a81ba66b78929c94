package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kalaconnect/craft-backend/config"
	"github.com/kalaconnect/craft-backend/internal/controller/restapi"
	"github.com/kalaconnect/craft-backend/internal/infrastructure/gemini"
	"github.com/kalaconnect/craft-backend/internal/infrastructure/openrouter"
	"github.com/kalaconnect/craft-backend/internal/infrastructure/processor"
	"github.com/kalaconnect/craft-backend/internal/repo"
	"github.com/kalaconnect/craft-backend/internal/repo/persistent"
	"github.com/kalaconnect/craft-backend/internal/usecase/advisor"
	"github.com/kalaconnect/craft-backend/internal/usecase/story"
	"github.com/kalaconnect/craft-backend/internal/usecase/studio"
	"github.com/kalaconnect/craft-backend/pkg/httpserver"
	"github.com/kalaconnect/craft-backend/pkg/logger"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// Repository

	// firestore; a missing or broken credential set degrades persistence
	// instead of blocking startup
	var stories repo.StoryRepo = persistent.NewDisabledStoryRepo()

	if cfg.Firebase.Available() {
		creds, err := cfg.Firebase.ServiceAccountJSON()
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - cfg.Firebase.ServiceAccountJSON: %w", err))
		}

		storyRepo, err := persistent.NewStoryRepo(ctx, cfg.Firebase.ProjectID, creds, cfg.Firebase.Collection)
		if err != nil {
			l.Warn("app - Run - persistent.NewStoryRepo: %s, running without persistence", err)
		} else {
			stories = storyRepo
			defer storyRepo.Close()

			l.Info("app - Run - firestore connected, collection %s", cfg.Firebase.Collection)
		}
	} else {
		l.Warn("app - Run - firebase credentials absent, running without persistence")
	}

	// static dir
	files, err := persistent.NewStaticDirRepo(cfg.Static.Dir)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - persistent.NewStaticDirRepo: %w", err))
	}

	// Providers
	textProvider := gemini.New(gemini.Options{
		APIKey:      cfg.Gemini.APIKey,
		BaseURL:     cfg.Gemini.BaseURL,
		APIVersion:  cfg.Gemini.APIVersion,
		TextModel:   cfg.Gemini.TextModel,
		VisionModel: cfg.Gemini.VisionModel,
		Timeout:     cfg.Gemini.Timeout,
	})

	imageProvider := openrouter.New(openrouter.Options{
		APIKey:  cfg.OpenRouter.APIKey,
		BaseURL: cfg.OpenRouter.BaseURL,
		Model:   cfg.OpenRouter.ImageModel,
		Timeout: cfg.OpenRouter.Timeout,
	})

	// Use-Case
	storyUseCase := story.New(textProvider, stories, l)
	advisorUseCase := advisor.New(textProvider)
	studioUseCase := studio.New(imageProvider, processor.New(), files, l)

	// HTTP Server
	httpServer := httpserver.New(l, httpserver.Port(cfg.HTTP.Port), httpserver.Prefork(cfg.HTTP.UsePreforkMode))
	restapi.NewRouter(httpServer.App, cfg, storyUseCase, advisorUseCase, studioUseCase, l)

	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
