package httpserver

import (
	"context"
	"fmt"

	"diagnosis-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.config.JWT.CookieName)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	api := srv.gin.Group("/api/v1")

	if err := srv.setupReportDomain(ctx, api, mw); err != nil {
		return fmt.Errorf("failed to setup report domain: %w", err)
	}
	if err := srv.setupExportDomain(ctx, api, mw); err != nil {
		return fmt.Errorf("failed to setup export domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
