package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	contactHTTP "caretask/internal/contact/delivery/http"
	extractionHTTP "caretask/internal/extraction/delivery/http"
	"caretask/internal/middleware"
	"caretask/internal/model"
	taskHTTP "caretask/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, middleware.Config{RateLimitPerMin: srv.rateLimitPerMin})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires each domain's handler under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	extractionHTTP.RegisterRoutes(api, extractionHTTP.New(srv.l, srv.extractionUC, srv.taskUC), mw.RateLimit())
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC, srv.location))
	contactHTTP.RegisterRoutes(api, contactHTTP.New(srv.l, srv.contactUC))

	if srv.rateLimitPerMin > 0 {
		srv.l.Infof(ctx, "Extraction rate limit: %d requests/min per client", srv.rateLimitPerMin)
	} else {
		srv.l.Info(ctx, "Extraction rate limit disabled")
	}
}
