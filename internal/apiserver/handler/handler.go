package handler

import (
	"github.com/kanri-app/kanri/internal/apiserver/database"
	"github.com/kanri-app/kanri/internal/auth/jwt"
	"github.com/kanri-app/kanri/internal/common/config"
	"github.com/kanri-app/kanri/pkg/metrics"
	"go.uber.org/zap"
)

// Handler processes API requests for the admin portal.
type Handler struct {
	db         database.Database
	jwtService *jwt.Service
	cfg        *config.APIServerConfig
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewHandler creates a new Handler instance. metrics may be nil.
func NewHandler(db database.Database, jwtService *jwt.Service, cfg *config.APIServerConfig, logger *zap.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		db:         db,
		jwtService: jwtService,
		cfg:        cfg,
		logger:     logger.Named("apiserver.handler"),
		metrics:    m,
	}
}

func (h *Handler) recordLogin(status string) {
	if h.metrics != nil {
		h.metrics.LoginAttempt(status)
	}
}
