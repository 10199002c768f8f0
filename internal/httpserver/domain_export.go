package httpserver

import (
	"context"

	"diagnosis-srv/internal/export"
	exportHTTP "diagnosis-srv/internal/export/delivery/http"
	exportProducer "diagnosis-srv/internal/export/delivery/kafka/producer"
	exportPostgre "diagnosis-srv/internal/export/repository/postgre"
	exportUsecase "diagnosis-srv/internal/export/usecase"
	"diagnosis-srv/internal/middleware"
	"diagnosis-srv/pkg/pdf"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupExportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	exportCfg := srv.config.Export

	var events export.Producer
	if srv.kafkaProducer != nil {
		events = exportProducer.New(srv.l, srv.kafkaProducer)
	} else {
		srv.l.Warnf(ctx, "Kafka producer not configured, export events disabled")
	}

	repo := exportPostgre.New(srv.postgresDB, srv.l)
	producer := pdf.New(pdf.Config{
		Author:   exportCfg.PDFAuthor,
		FontPath: exportCfg.PDFFontPath,
	})

	srv.exportUC = exportUsecase.New(repo, srv.reportUC, producer, srv.minioClient, events, srv.l, export.Config{
		Bucket:         srv.config.MinIO.Bucket,
		Timeout:        exportCfg.Timeout,
		AutoCloseAfter: exportCfg.AutoCloseAfter,
		JobRetention:   exportCfg.JobRetention,
		DownloadExpiry: exportCfg.DownloadExpiry,
		SweepInterval:  exportCfg.SweepInterval,
	})

	handler := exportHTTP.New(srv.l, srv.exportUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Export domain registered")
	return nil
}
