package handler

import (
	"github.com/staykeeper/staykeeper/internal/config"
	"github.com/staykeeper/staykeeper/internal/handler/http"
	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
