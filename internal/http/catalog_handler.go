package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/runocole/geomart/internal/catalog"
	"github.com/runocole/geomart/internal/currency"
	"github.com/runocole/geomart/internal/domain"
)

type CatalogHandler struct {
	catalog   catalog.Repository
	converter *currency.Converter
}

func NewCatalogHandler(catalogRepo catalog.Repository, converter *currency.Converter) *CatalogHandler {
	return &CatalogHandler{
		catalog:   catalogRepo,
		converter: converter,
	}
}

type ProductViewDTO struct {
	domain.Product
	DisplayPrice string `json:"display_price"`
}

func (h *CatalogHandler) productView(p *domain.Product, code currency.Code) ProductViewDTO {
	return ProductViewDTO{
		Product:      *p,
		DisplayPrice: h.converter.Format(code, p.Price),
	}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var (
		products []*domain.Product
		err      error
	)

	if c := r.URL.Query().Get("category"); c != "" {
		cat := domain.Category(c)
		if !cat.Valid() {
			respondError(w, http.StatusBadRequest, "invalid_category", "unknown category")
			return
		}
		products, err = h.catalog.GetByCategory(r.Context(), cat)
	} else {
		products, err = h.catalog.GetAllProducts(r.Context())
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	code := currencyFromRequest(r)
	views := make([]ProductViewDTO, 0, len(products))
	for _, p := range products {
		views = append(views, h.productView(p, code))
	}
	respondJSON(w, http.StatusOK, views)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "product_id")

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, h.productView(product, currencyFromRequest(r)))
}
