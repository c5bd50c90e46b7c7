package messaging

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/runocole/geomart/internal/domain"
	"github.com/runocole/geomart/internal/pricing"
)

var mobileRx = regexp.MustCompile(`(?i)android|iphone|ipad|ipod|mobile|blackberry|opera mini`)

// LinkBuilder constructs wa.me deep links carrying a pre-formatted
// order summary. No network round-trip is involved; the link is handed
// to the browser as-is.
type LinkBuilder struct {
	phone string // business number in international format, digits only
}

func NewLinkBuilder(phone string) *LinkBuilder {
	return &LinkBuilder{phone: strings.TrimPrefix(phone, "+")}
}

// OrderLink renders the order summary into a deep link. Mobile user
// agents get a shorter template since long pre-filled messages get
// truncated by the app.
func (b *LinkBuilder) OrderLink(orderNumber string, items []domain.CartItem,
	totals pricing.Totals, customer domain.CustomerInfo, userAgent string) string {

	var msg string
	if IsMobile(userAgent) {
		msg = shortMessage(orderNumber, totals, customer)
	} else {
		msg = fullMessage(orderNumber, items, totals, customer)
	}

	return fmt.Sprintf("https://wa.me/%s?text=%s", b.phone, url.QueryEscape(msg))
}

func IsMobile(userAgent string) bool {
	return mobileRx.MatchString(userAgent)
}

func fullMessage(orderNumber string, items []domain.CartItem,
	totals pricing.Totals, customer domain.CustomerInfo) string {

	var sb strings.Builder
	fmt.Fprintf(&sb, "New order %s\n\n", orderNumber)
	fmt.Fprintf(&sb, "Customer: %s\nEmail: %s\nPhone: %s\n", customer.Name, customer.Email, customer.Phone)
	if customer.State != "" {
		fmt.Fprintf(&sb, "State: %s\n", customer.State)
	}
	sb.WriteString("\nItems:\n")
	for _, item := range items {
		fmt.Fprintf(&sb, "- %s x%d @ $%.2f\n", item.Product.Name, item.Quantity, item.Product.Price)
	}
	fmt.Fprintf(&sb, "\nSubtotal: $%.2f\nTax: $%.2f\nTotal: $%.2f\n", totals.Subtotal, totals.Tax, totals.Total)
	sb.WriteString("\nPlease confirm availability and send payment instructions.")
	return sb.String()
}

func shortMessage(orderNumber string, totals pricing.Totals, customer domain.CustomerInfo) string {
	return fmt.Sprintf("Order %s from %s (%s). Total $%.2f. Please send payment instructions.",
		orderNumber, customer.Name, customer.Phone, totals.Total)
}
