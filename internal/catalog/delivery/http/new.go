package http

import (
	"catalog-srv/internal/catalog"
	"catalog-srv/pkg/discord"
	"catalog-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho catalog HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l       log.Logger
	uc      catalog.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc catalog.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
