package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/thegambler1/qmdigital/database"
	"github.com/thegambler1/qmdigital/errs"
	"github.com/thegambler1/qmdigital/models"
)

type settingsHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   database.Storage
}

func newSettingsHandler(storage database.Storage) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

// @Router /api/settings [get]
func (h settingsHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.storage.GetSiteSettings(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "site settings", err))
			return
		}
		if settings == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Site settings not found"))
			return
		}

		h.responder.WriteJSON(w, settings)
	}
}

// updateSettings merges a partial update into the singleton, creating it from defaults if needed
// @Router /api/admin/settings [put]
func (h settingsHandler) updateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update models.SiteSettingsUpdate
		if err := decodeAndValidate(w, r, &update); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		settings, err := h.storage.UpdateSiteSettings(r.Context(), update)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "site settings", err))
			return
		}

		h.logger.Info().Time("updatedAt", settings.UpdatedAt).Msg("site settings updated")
		h.responder.WriteJSON(w, SiteSettingsResponse{
			Message:  "Site settings updated",
			Settings: *settings,
		})
	}
}
