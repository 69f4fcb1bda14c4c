package http

import (
	"github.com/MKhiriev/fit-sync/internal/config"
	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/internal/service"
)

type Handler struct {
	services   *service.Services
	masterKeys []string
	maxBinSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerApp, logger *logger.Logger) *Handler {
	logger.Info().Int("master_keys", len(cfg.MasterKeys)).Msg("http handler created")
	return &Handler{
		services:   services,
		masterKeys: cfg.MasterKeys,
		maxBinSize: cfg.MaxBinSize,
		logger:     logger,
	}
}
