package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/runocole/geomart/internal/cart"
	"github.com/runocole/geomart/internal/catalog"
	"github.com/runocole/geomart/internal/cookie"
	"github.com/runocole/geomart/internal/currency"
	"github.com/runocole/geomart/internal/domain"
	"github.com/runocole/geomart/internal/pricing"
)

type CartHandler struct {
	catalog   catalog.Repository
	cookies   cookie.CartPersistence
	converter *currency.Converter
}

func NewCartHandler(catalogRepo catalog.Repository, cookies cookie.CartPersistence, converter *currency.Converter) *CartHandler {
	return &CartHandler{
		catalog:   catalogRepo,
		cookies:   cookies,
		converter: converter,
	}
}

// maxLineQuantity caps a single cart line, on both the add and the
// update path.
const maxLineQuantity = 99

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartViewDTO struct {
	Items           []domain.CartItem `json:"items"`
	ItemCount       int               `json:"item_count"`
	Totals          pricing.Totals    `json:"totals"`
	DisplaySubtotal string            `json:"display_subtotal"`
	DisplayTotal    string            `json:"display_total"`
}

func (h *CartHandler) cartView(items []domain.CartItem, code currency.Code) CartViewDTO {
	store := cart.NewStore(items)
	totals := pricing.Calculate(items)
	return CartViewDTO{
		Items:           store.Items(),
		ItemCount:       store.ItemCount(),
		Totals:          totals,
		DisplaySubtotal: h.converter.Format(code, totals.Subtotal),
		DisplayTotal:    h.converter.Format(code, totals.Total),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items := h.cookies.Load(r)
	respondJSON(w, http.StatusOK, h.cartView(items, currencyFromRequest(r)))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	// The store itself never rejects out-of-stock products; this is
	// where the caller-side stock policy lives.
	if !product.InStock {
		respondError(w, http.StatusConflict, "out_of_stock", "product is out of stock")
		return
	}

	store := cart.NewStore(h.cookies.Load(r))
	for _, item := range store.Items() {
		if item.Product.ID == product.ID && item.Quantity >= maxLineQuantity {
			respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not exceed 99")
			return
		}
	}
	store.AddItem(*product)
	h.cookies.Save(w, store.Items())

	respondJSON(w, http.StatusCreated, h.cartView(store.Items(), currencyFromRequest(r)))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > maxLineQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not exceed 99")
		return
	}

	// A quantity of zero or below removes the line.
	store := cart.NewStore(h.cookies.Load(r))
	store.UpdateQuantity(productID, req.Quantity)
	h.cookies.Save(w, store.Items())

	respondJSON(w, http.StatusOK, h.cartView(store.Items(), currencyFromRequest(r)))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	store := cart.NewStore(h.cookies.Load(r))
	store.RemoveItem(productID)
	h.cookies.Save(w, store.Items())

	respondJSON(w, http.StatusOK, h.cartView(store.Items(), currencyFromRequest(r)))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)
	respondJSON(w, http.StatusOK, h.cartView(nil, currencyFromRequest(r)))
}
