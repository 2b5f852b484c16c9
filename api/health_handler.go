package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/thegambler1/qmdigital/database"
)

// pinger is implemented by storages backed by a remote database
type pinger interface {
	Ping(ctx context.Context) error
}

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	storage     database.Storage
	startupTime time.Time
}

func newHealthHandler(storage database.Storage, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		storage:     storage,
		startupTime: startupTime,
	}
}

func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			Status:  "ok",
			Storage: h.storage.Kind(),
			Uptime:  time.Since(h.startupTime).Round(time.Second).String(),
		}

		if p, ok := h.storage.(pinger); ok {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				h.logger.Error().Err(err).Msg("storage ping failed")
				response.Status = "degraded"
				h.responder.WriteJSONStatus(w, http.StatusServiceUnavailable, response)
				return
			}
		}

		h.responder.WriteJSON(w, response)
	}
}
