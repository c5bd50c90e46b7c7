package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/runocole/geomart/internal/domain"
	"github.com/runocole/geomart/internal/payment"
	"github.com/runocole/geomart/internal/pricing"
)

// State names a step of the checkout flow.
type State string

const (
	StateForm       State = "form"
	StateReview     State = "review"
	StateRedirected State = "redirected"
)

// IsTerminal reports whether the flow can make no further transitions.
func (s State) IsTerminal() bool {
	return s == StateRedirected
}

func (s State) String() string {
	return string(s)
}

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrIllegalTransition = errors.New("illegal checkout transition")
	ErrMissingName       = errors.New("name is required")
	ErrMissingEmail      = errors.New("email is required")
	ErrInvalidEmail      = errors.New("email format is invalid")
	ErrMissingPhone      = errors.New("phone is required")
)

// Flow walks one checkout attempt through form → review → redirected.
// It holds a snapshot of the cart taken at Begin; a payment failure
// leaves the flow in review with the same order number, so a retry
// reuses the number rather than minting a fresh one.
type Flow struct {
	state       State
	items       []domain.CartItem
	totals      pricing.Totals
	customer    domain.CustomerInfo
	orderNumber string
	payments    payment.Initiator
}

func NewFlow(payments payment.Initiator) *Flow {
	return &Flow{
		state:    StateForm,
		payments: payments,
	}
}

// Begin snapshots the cart into the flow. An empty cart blocks
// checkout before any state is touched.
func (f *Flow) Begin(items []domain.CartItem) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}
	f.items = make([]domain.CartItem, len(items))
	copy(f.items, items)
	f.totals = pricing.Calculate(f.items)
	f.state = StateForm
	return nil
}

// SubmitForm validates the customer fields and advances to review,
// minting the order number on the first valid submit. No network call
// happens here.
func (f *Flow) SubmitForm(info domain.CustomerInfo) error {
	if f.state != StateForm {
		return fmt.Errorf("%w: submit from %s", ErrIllegalTransition, f.state)
	}
	if len(f.items) == 0 {
		return ErrEmptyCart
	}
	if err := validateCustomer(info); err != nil {
		return err
	}

	f.customer = info
	if f.orderNumber == "" {
		f.orderNumber = domain.NewOrderNumber()
	}
	f.state = StateReview
	return nil
}

// Edit returns from review to the form. The order number is kept.
func (f *Flow) Edit() error {
	if f.state != StateReview {
		return fmt.Errorf("%w: edit from %s", ErrIllegalTransition, f.state)
	}
	f.state = StateForm
	return nil
}

// Pay hands the snapshot to the payment gateway. On success the flow is
// terminal and the caller redirects to the returned URL; on failure the
// flow stays in review and the same order number is reused on retry.
func (f *Flow) Pay(ctx context.Context) (string, error) {
	if f.state != StateReview {
		return "", fmt.Errorf("%w: pay from %s", ErrIllegalTransition, f.state)
	}

	req := &payment.Request{
		Email:     f.customer.Email,
		Amount:    f.totals.Total,
		Reference: f.orderNumber,
		Metadata:  payment.Metadata{Items: lineItems(f.items)},
	}

	resp, err := f.payments.Initialize(ctx, req)
	if err != nil {
		log.Printf("payment initialize failed for order %s: %v", f.orderNumber, err)
		return "", err
	}

	f.state = StateRedirected
	return resp.Data.AuthorizationURL, nil
}

func (f *Flow) State() State                  { return f.state }
func (f *Flow) OrderNumber() string           { return f.orderNumber }
func (f *Flow) Items() []domain.CartItem      { return f.items }
func (f *Flow) Totals() pricing.Totals        { return f.totals }
func (f *Flow) Customer() domain.CustomerInfo { return f.customer }

func validateCustomer(info domain.CustomerInfo) error {
	if strings.TrimSpace(info.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(info.Email) == "" {
		return ErrMissingEmail
	}
	if !domain.ValidEmail(info.Email) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(info.Phone) == "" {
		return ErrMissingPhone
	}
	return nil
}

func lineItems(items []domain.CartItem) []payment.LineItem {
	out := make([]payment.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, payment.LineItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
			Category:  string(item.Product.Category),
		})
	}
	return out
}
