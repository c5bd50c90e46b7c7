package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	router := newTestRouter(&mockInitiator{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []ProductViewDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.NotEmpty(t, p.DisplayPrice)
	}
}

func TestListProducts_ByCategory(t *testing.T) {
	router := newTestRouter(&mockInitiator{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products?category=total-stations", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []ProductViewDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "total-stations", string(p.Category))
	}
}

func TestListProducts_UnknownCategory(t *testing.T) {
	router := newTestRouter(&mockInitiator{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products?category=boats", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct_DisplayPriceFollowsCurrencyCookie(t *testing.T) {
	router := newTestRouter(&mockInitiator{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products/acc-tripod-wood", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var usd ProductViewDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&usd))
	assert.Equal(t, "$95", usd.DisplayPrice)

	recSet := doJSON(t, router, http.MethodPut, "/api/v1/currency", CurrencyDTO{Currency: "NGN"}, nil)
	require.Equal(t, http.StatusOK, recSet.Code)
	prefCookies := recSet.Result().Cookies()
	require.NotEmpty(t, prefCookies)

	rec2 := doJSON(t, router, http.MethodGet, "/api/v1/products/acc-tripod-wood", nil, prefCookies)
	require.Equal(t, http.StatusOK, rec2.Code)

	var ngn ProductViewDTO
	require.NoError(t, json.NewDecoder(rec2.Body).Decode(&ngn))
	assert.Equal(t, "₦152,000", ngn.DisplayPrice)

	// The stored amount is untouched by the currency switch.
	assert.Equal(t, usd.Price, ngn.Price)
}

func TestCurrencySelection_DoesNotLeakAcrossClients(t *testing.T) {
	router := newTestRouter(&mockInitiator{})

	// One browser selects NGN.
	recSet := doJSON(t, router, http.MethodPut, "/api/v1/currency", CurrencyDTO{Currency: "NGN"}, nil)
	require.Equal(t, http.StatusOK, recSet.Code)

	// A client without the preference cookie still sees USD.
	rec := doJSON(t, router, http.MethodGet, "/api/v1/products/acc-tripod-wood", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view ProductViewDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, "$95", view.DisplayPrice)

	recGet := doJSON(t, router, http.MethodGet, "/api/v1/currency", nil, nil)
	require.Equal(t, http.StatusOK, recGet.Code)

	var dto CurrencyDTO
	require.NoError(t, json.NewDecoder(recGet.Body).Decode(&dto))
	assert.Equal(t, "USD", dto.Currency)
}

func TestSetCurrency_RejectsUnknown(t *testing.T) {
	router := newTestRouter(&mockInitiator{})

	rec := doJSON(t, router, http.MethodPut, "/api/v1/currency", CurrencyDTO{Currency: "EUR"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct_NotFound(t *testing.T) {
	router := newTestRouter(&mockInitiator{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products/no-such-product", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
