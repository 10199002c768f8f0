package httpserver

import (
	"context"

	"diagnosis-srv/internal/middleware"
	"diagnosis-srv/internal/report"
	reportHTTP "diagnosis-srv/internal/report/delivery/http"
	reportPostgre "diagnosis-srv/internal/report/repository/postgre"
	reportRedis "diagnosis-srv/internal/report/repository/redis"
	reportUsecase "diagnosis-srv/internal/report/usecase"
	"diagnosis-srv/internal/visualization"
	visualizationUsecase "diagnosis-srv/internal/visualization/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	resourceCfg := srv.config.Resource

	client := visualizationUsecase.NewFetchClient(resourceCfg.Timeout, resourceCfg.MaxImageBytes)
	visUC := visualizationUsecase.New(client, srv.l, visualization.Config{
		BaseURL:       resourceCfg.BaseURL,
		MaxImageBytes: resourceCfg.MaxImageBytes,
	})

	loc, err := srv.config.Report.Location()
	if err != nil {
		return err
	}

	repo := reportPostgre.New(srv.postgresDB, srv.l)
	cache := reportRedis.New(srv.redisClient, srv.l, srv.config.Redis.CacheTTL)

	srv.reportUC = reportUsecase.New(repo, cache, visUC, srv.l, report.Config{
		ModelAName: srv.config.Report.ModelAName,
		ModelBName: srv.config.Report.ModelBName,
		Location:   loc,
	})

	handler := reportHTTP.New(srv.l, srv.reportUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
