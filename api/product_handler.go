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

type productHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   database.Storage
}

func newProductHandler(storage database.Storage) productHandler {
	logger := log.With().Str("handlerName", "productHandler").Logger()

	return productHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

// getProducts lists products. Only featured=true filters; any other value is ignored.
// @Router /api/products [get]
func (h productHandler) getProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			products []models.Product
			err      error
		)
		if r.URL.Query().Get("featured") == "true" {
			products, err = h.storage.ListFeaturedProducts(r.Context())
		} else {
			products, err = h.storage.ListProducts(r.Context())
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "products", err))
			return
		}

		if products == nil {
			products = []models.Product{}
		}
		h.responder.WriteJSON(w, products)
	}
}

// @Router /api/products/{id} [get]
func (h productHandler) getProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := h.storage.GetProduct(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "product", err))
			return
		}
		if product == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Product not found"))
			return
		}

		h.responder.WriteJSON(w, product)
	}
}

// @Router /api/admin/products [post]
func (h productHandler) createProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ProductInput
		if err := decodeAndValidate(w, r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		product, err := h.storage.CreateProduct(r.Context(), in.Value())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "product", err))
			return
		}

		h.logger.Info().Str("id", product.ID).Bool("featured", product.Featured).Msg("product created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, ProductResponse{
			Message: "Product created",
			Product: *product,
		})
	}
}

// @Router /api/admin/products/{id} [put]
func (h productHandler) updateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update models.ProductUpdate
		if err := decodeAndValidate(w, r, &update); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		product, err := h.storage.UpdateProduct(r.Context(), chi.URLParam(r, "id"), update)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "product", err))
			return
		}
		if product == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Product not found"))
			return
		}

		h.responder.WriteJSON(w, ProductResponse{
			Message: "Product updated",
			Product: *product,
		})
	}
}

// @Router /api/admin/products/{id} [delete]
func (h productHandler) deleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		deleted, err := h.storage.DeleteProduct(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "product", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("Product not found"))
			return
		}

		h.logger.Info().Str("id", id).Msg("product deleted")
		h.responder.WriteJSON(w, MessageResponse{Message: "Product deleted"})
	}
}
