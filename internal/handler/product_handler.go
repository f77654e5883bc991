package handler

import (
	"errors"
	"net/http"

	"cozy-threads/internal/model"
	"cozy-threads/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler serves the catalogue pages and the products API.
type ProductHandler struct {
	catalog service.CatalogService
	pages   *Pages
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog service.CatalogService, pages *Pages, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		pages:   pages,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Home handles GET / with the featured products.
func (h *ProductHandler) Home(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Featured(r.Context())
	if err != nil {
		h.pages.ServerError(w, r)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "home.html", map[string]any{
		"Products": products,
	})
}

// Shop handles GET /shop?category=&sort= with the full product listing.
func (h *ProductHandler) Shop(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	sort := r.URL.Query().Get("sort")

	products, err := h.catalog.List(r.Context(), category, sort)
	if err != nil {
		h.pages.ServerError(w, r)
		return
	}

	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		h.pages.ServerError(w, r)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "shop.html", map[string]any{
		"Products":        products,
		"Categories":      categories,
		"CurrentCategory": category,
		"CurrentSort":     sort,
	})
}

// Detail handles GET /product/{id} with reviews and the average rating.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.catalog.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			h.pages.NotFound(w, r)
			return
		}
		h.pages.ServerError(w, r)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "product.html", detail)
}

// APIProducts handles GET /api/products.
func (h *ProductHandler) APIProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.List(r.Context(), "", model.SortName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}
