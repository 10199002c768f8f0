package http

import (
	"diagnosis-srv/internal/export"
	"diagnosis-srv/internal/middleware"
	"diagnosis-srv/pkg/discord"
	"diagnosis-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      export.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc export.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
