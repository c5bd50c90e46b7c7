package domain

import "regexp"

// CustomerInfo is transient checkout/contact form data. It is never
// persisted beyond the in-memory flow that collected it.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	State string `json:"state,omitempty"`
}

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail applies the single email-format policy used by every form
// in the storefront.
func ValidEmail(s string) bool {
	return emailRx.MatchString(s)
}
