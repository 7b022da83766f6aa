package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"caretask/config"
	_ "caretask/docs" // Swagger docs
	"caretask/internal/contact"
	contactUC "caretask/internal/contact/usecase"
	"caretask/internal/extraction"
	"caretask/internal/extraction/remote"
	extractionUC "caretask/internal/extraction/usecase"
	"caretask/internal/httpserver"
	"caretask/internal/task/repository"
	"caretask/internal/task/repository/memory"
	"caretask/internal/task/repository/postgre"
	taskUC "caretask/internal/task/usecase"
	"caretask/pkg/datemath"
	"caretask/pkg/gcalendar"
	"caretask/pkg/llmprovider"
	"caretask/pkg/log"
	"caretask/pkg/postgres"
)

// @title       Caretask API
// @description Turns patient speech into caregiver tasks and manages the caregiver task list.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server exited with error: ", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting caretask...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date parser
	dates, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 4. Task store
	repo, cleanup, err := newRepository(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	// 5. Google Calendar (optional)
	var calendar gcalendar.IClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar export enabled")
		}
	}

	// 6. Remote extraction collaborator (optional)
	rc := cfg.Extraction.Remote
	chain := make([]llmprovider.ProviderConfig, len(rc.Providers))
	for i, p := range rc.Providers {
		chain[i] = llmprovider.ProviderConfig{
			Name:     p.Name,
			Enabled:  p.Enabled,
			Priority: p.Priority,
			APIKey:   p.APIKey,
			BaseURL:  p.BaseURL,
			Model:    p.Model,
		}
	}
	rem, err := remote.New(remote.Config{
		Provider:        rc.Provider,
		WebhookURL:      rc.WebhookURL,
		APIKey:          rc.APIKey,
		Model:           rc.Model,
		BaseURL:         rc.BaseURL,
		Providers:       chain,
		FallbackEnabled: rc.FallbackEnabled,
		RetryAttempts:   rc.RetryAttempts,
		RetryDelay:      rc.RetryDelay,
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("remote extraction: %w", err)
	}
	if rem == nil {
		logger.Info(ctx, "No remote provider configured, extraction runs locally")
	} else {
		logger.Infof(ctx, "Remote extraction provider: %s", rem.Name())
	}

	// 7. UseCases
	extractUC := extractionUC.New(logger, rem, extraction.Options{
		RemoteTimeout: rc.Timeout,
		MaxTasks:      cfg.Extraction.MaxTasks,
	})
	tasksUC := taskUC.New(logger, repo, dates, calendar, cfg.GoogleCalendar.CalendarID)

	entries := make([]contact.Entry, len(cfg.Contacts))
	for i, c := range cfg.Contacts {
		entries[i] = contact.Entry{Name: c.Name, Number: c.Number, Type: c.Type}
	}
	contactsUC := contactUC.New(logger, entries)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		Location:        dates.Location(),
		ExtractionUC:    extractUC,
		TaskUC:          tasksUC,
		ContactUC:       contactsUC,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 9. Run
	return httpServer.Run(ctx)
}

func newRepository(ctx context.Context, cfg config.StoreConfig, logger log.Logger) (repository.Repository, func(), error) {
	if cfg.Driver != "postgres" {
		logger.Info(ctx, "Task store: in-memory")
		return memory.New(logger), func() {}, nil
	}

	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.DSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, err
	}

	repo, err := postgre.New(ctx, db, logger)
	if err != nil {
		_ = postgres.Close(db)
		return nil, nil, err
	}

	logger.Info(ctx, "Task store: postgres")
	return repo, func() {
		if err := postgres.Close(db); err != nil {
			logger.Warnf(ctx, "postgres close: %v", err)
		}
	}, nil
}
