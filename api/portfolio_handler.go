package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/thegambler1/qmdigital/database"
	"github.com/thegambler1/qmdigital/errs"
	"github.com/thegambler1/qmdigital/models"
)

// categoryAll is the filter value the gallery sends for "no filter"
const categoryAll = "All"

type portfolioHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   database.Storage
}

func newPortfolioHandler(storage database.Storage) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

// getPortfolioItems lists items, optionally filtered by exact category
// @Router /api/portfolio [get]
func (h portfolioHandler) getPortfolioItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")

		var (
			items []models.PortfolioItem
			err   error
		)
		if category == "" || category == categoryAll {
			items, err = h.storage.ListPortfolioItems(r.Context())
		} else {
			items, err = h.storage.ListPortfolioItemsByCategory(r.Context(), category)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "portfolio items", err))
			return
		}

		if items == nil {
			items = []models.PortfolioItem{}
		}
		h.responder.WriteJSON(w, items)
	}
}

// @Router /api/portfolio/{id} [get]
func (h portfolioHandler) getPortfolioItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := h.storage.GetPortfolioItem(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "portfolio item", err))
			return
		}
		if item == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Portfolio item not found"))
			return
		}

		h.responder.WriteJSON(w, item)
	}
}

// @Router /api/admin/portfolio [post]
func (h portfolioHandler) createPortfolioItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.PortfolioItemInput
		if err := decodeAndValidate(w, r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		item, err := h.storage.CreatePortfolioItem(r.Context(), in.Value())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "portfolio item", err))
			return
		}

		h.logger.Info().Str("id", item.ID).Str("category", item.Category).Msg("portfolio item created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, PortfolioItemResponse{
			Message: "Portfolio item created",
			Item:    *item,
		})
	}
}

// @Router /api/admin/portfolio/{id} [put]
func (h portfolioHandler) updatePortfolioItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update models.PortfolioItemUpdate
		if err := decodeAndValidate(w, r, &update); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		item, err := h.storage.UpdatePortfolioItem(r.Context(), chi.URLParam(r, "id"), update)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "portfolio item", err))
			return
		}
		if item == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Portfolio item not found"))
			return
		}

		h.responder.WriteJSON(w, PortfolioItemResponse{
			Message: "Portfolio item updated",
			Item:    *item,
		})
	}
}

// @Router /api/admin/portfolio/{id} [delete]
func (h portfolioHandler) deletePortfolioItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		deleted, err := h.storage.DeletePortfolioItem(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "portfolio item", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("Portfolio item not found"))
			return
		}

		h.logger.Info().Str("id", id).Msg("portfolio item deleted")
		h.responder.WriteJSON(w, MessageResponse{Message: "Portfolio item deleted"})
	}
}
