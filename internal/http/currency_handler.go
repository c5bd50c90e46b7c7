package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/runocole/geomart/internal/currency"
)

const (
	currencyCookieName = "geomart_currency"
	currencyCookieTTL  = 30 * 24 * time.Hour
)

// currencyFromRequest reads the browser's display-currency preference.
// Absent or unknown values default to USD, so one client's selection
// never leaks into another's responses.
func currencyFromRequest(r *http.Request) currency.Code {
	ck, err := r.Cookie(currencyCookieName)
	if err != nil {
		return currency.USD
	}
	code := currency.Code(ck.Value)
	if !currency.ValidCode(code) {
		return currency.USD
	}
	return code
}

type CurrencyHandler struct {
	converter *currency.Converter
}

func NewCurrencyHandler(converter *currency.Converter) *CurrencyHandler {
	return &CurrencyHandler{converter: converter}
}

type CurrencyDTO struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

func (h *CurrencyHandler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CurrencyDTO{
		Currency: string(currencyFromRequest(r)),
		Rate:     h.converter.Rate(),
	})
}

// SetCurrency stores the preference in a cookie scoped to the caller's
// browser; the shared converter only ever has its rate refreshed.
func (h *CurrencyHandler) SetCurrency(w http.ResponseWriter, r *http.Request) {
	var req CurrencyDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	code := currency.Code(req.Currency)
	if !currency.ValidCode(code) {
		respondError(w, http.StatusBadRequest, "invalid_currency", "currency must be USD or NGN")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     currencyCookieName,
		Value:    string(code),
		Path:     "/",
		Expires:  time.Now().Add(currencyCookieTTL),
		MaxAge:   int(currencyCookieTTL.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})

	// Refresh is best-effort; the fixed rate stands in on any failure.
	h.converter.RefreshRate(r.Context())

	respondJSON(w, http.StatusOK, CurrencyDTO{
		Currency: string(code),
		Rate:     h.converter.Rate(),
	})
}
