package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/runocole/geomart/internal/checkout"
	"github.com/runocole/geomart/internal/cookie"
	"github.com/runocole/geomart/internal/domain"
	"github.com/runocole/geomart/internal/messaging"
	"github.com/runocole/geomart/internal/payment"
	"github.com/runocole/geomart/internal/pricing"
)

type CheckoutHandler struct {
	cookies  cookie.CartPersistence
	sessions *checkout.Sessions
	payments payment.Initiator
	links    *messaging.LinkBuilder
}

func NewCheckoutHandler(cookies cookie.CartPersistence, sessions *checkout.Sessions,
	payments payment.Initiator, links *messaging.LinkBuilder) *CheckoutHandler {
	return &CheckoutHandler{
		cookies:  cookies,
		sessions: sessions,
		payments: payments,
		links:    links,
	}
}

type BeginCheckoutRequestDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	State string `json:"state,omitempty"`
}

type CheckoutReviewDTO struct {
	OrderNumber string              `json:"order_number"`
	State       string              `json:"state"`
	Items       []domain.CartItem   `json:"items"`
	Totals      pricing.Totals      `json:"totals"`
	Customer    domain.CustomerInfo `json:"customer"`
}

type PayResponseDTO struct {
	AuthorizationURL string `json:"authorization_url"`
	OrderNumber      string `json:"order_number"`
}

// Begin snapshots the cart, validates the customer form and moves the
// flow to review. No payment call happens here.
func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	var req BeginCheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	flow := checkout.NewFlow(h.payments)
	if err := flow.Begin(h.cookies.Load(r)); err != nil {
		respondError(w, http.StatusBadRequest, "cart_empty", "cart is empty")
		return
	}

	err := flow.SubmitForm(domain.CustomerInfo{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		State: req.State,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	h.sessions.Put(flow.OrderNumber(), flow)
	respondJSON(w, http.StatusOK, reviewDTO(flow))
}

// Pay runs the payment step for a flow in review. On success the cart
// cookie is cleared and the caller redirects to the authorization URL;
// on failure the flow stays in review so a retry reuses the same order
// number.
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	flow, ok := h.lookupFlow(w, r)
	if !ok {
		return
	}

	url, err := flow.Pay(r.Context())
	if err != nil {
		if errors.Is(err, checkout.ErrIllegalTransition) {
			respondError(w, http.StatusConflict, "illegal_transition", err.Error())
			return
		}
		respondError(w, http.StatusBadGateway, "payment_failed", "payment could not be initialized, please try again")
		return
	}

	h.cookies.Clear(w)
	h.sessions.Delete(flow.OrderNumber())
	respondJSON(w, http.StatusOK, PayResponseDTO{
		AuthorizationURL: url,
		OrderNumber:      flow.OrderNumber(),
	})
}

// Edit steps a flow back from review to the form, keeping the order
// number.
func (h *CheckoutHandler) Edit(w http.ResponseWriter, r *http.Request) {
	flow, ok := h.lookupFlow(w, r)
	if !ok {
		return
	}

	if err := flow.Edit(); err != nil {
		respondError(w, http.StatusConflict, "illegal_transition", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, reviewDTO(flow))
}

// Resubmit takes a corrected form for a flow that was stepped back via
// Edit.
func (h *CheckoutHandler) Resubmit(w http.ResponseWriter, r *http.Request) {
	flow, ok := h.lookupFlow(w, r)
	if !ok {
		return
	}

	var req BeginCheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	err := flow.SubmitForm(domain.CustomerInfo{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		State: req.State,
	})
	if err != nil {
		if errors.Is(err, checkout.ErrIllegalTransition) {
			respondError(w, http.StatusConflict, "illegal_transition", err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, reviewDTO(flow))
}

// WhatsAppLink builds the deep link for a flow's order summary,
// adapting the template to the caller's user agent.
func (h *CheckoutHandler) WhatsAppLink(w http.ResponseWriter, r *http.Request) {
	flow, ok := h.lookupFlow(w, r)
	if !ok {
		return
	}

	link := h.links.OrderLink(flow.OrderNumber(), flow.Items(), flow.Totals(),
		flow.Customer(), r.UserAgent())
	respondJSON(w, http.StatusOK, map[string]string{"link": link})
}

func (h *CheckoutHandler) lookupFlow(w http.ResponseWriter, r *http.Request) (*checkout.Flow, bool) {
	orderNumber := chi.URLParam(r, "order_number")
	flow, ok := h.sessions.Get(orderNumber)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "checkout session not found")
		return nil, false
	}
	return flow, true
}

func reviewDTO(flow *checkout.Flow) CheckoutReviewDTO {
	return CheckoutReviewDTO{
		OrderNumber: flow.OrderNumber(),
		State:       flow.State().String(),
		Items:       flow.Items(),
		Totals:      flow.Totals(),
		Customer:    flow.Customer(),
	}
}
