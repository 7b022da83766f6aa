package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"caretask/internal/contact"
	"caretask/internal/extraction"
	"caretask/internal/task"
	"caretask/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	startedAt   time.Time

	rateLimitPerMin int
	location        *time.Location

	extractionUC extraction.UseCase
	taskUC       task.UseCase
	contactUC    contact.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// RateLimitPerMin throttles POST /api/v1/extractions per client; 0 disables it.
	RateLimitPerMin int
	// Location is the timezone calendar dates are read in.
	Location *time.Location

	ExtractionUC extraction.UseCase
	TaskUC       task.UseCase
	ContactUC    contact.UseCase
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		startedAt:       time.Now(),
		rateLimitPerMin: cfg.RateLimitPerMin,
		location:        cfg.Location,
		extractionUC:    cfg.ExtractionUC,
		taskUC:          cfg.TaskUC,
		contactUC:       cfg.ContactUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.extractionUC == nil {
		return errors.New("extraction usecase is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.contactUC == nil {
		return errors.New("contact usecase is required")
	}
	return nil
}
