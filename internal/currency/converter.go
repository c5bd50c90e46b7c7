package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Code is one of the two display currencies.
type Code string

const (
	USD Code = "USD"
	NGN Code = "NGN"
)

func ValidCode(code Code) bool {
	return code == USD || code == NGN
}

// FallbackRate is the fixed NGN-per-USD constant used whenever no live
// rate is available.
const FallbackRate = 1600.0

// Converter turns base-currency (USD) amounts into display strings.
// Conversion is purely presentational: stored amounts are never
// mutated by a currency switch. Which currency to render is the
// caller's per-request choice; the converter only owns the shared
// exchange rate, which starts at the fixed constant and may be
// refreshed best-effort from a live endpoint.
type Converter struct {
	mu   sync.RWMutex
	rate float64

	sfg     singleflight.Group
	client  *http.Client
	rateURL string

	printer *message.Printer
}

func NewConverter(client *http.Client, rateURL string) *Converter {
	if client == nil {
		client = http.DefaultClient
	}
	return &Converter{
		rate:    FallbackRate,
		client:  client,
		rateURL: rateURL,
		printer: message.NewPrinter(language.English),
	}
}

func (c *Converter) Rate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rate
}

// Format renders a base-currency amount in the requested currency: NGN
// is rounded to whole naira with locale grouping, USD keeps up to two
// decimal places. An unknown code falls back to USD formatting.
func (c *Converter) Format(code Code, base float64) string {
	if code == NGN {
		converted := math.Round(base * c.Rate())
		return c.printer.Sprintf("₦%v", number.Decimal(converted, number.MaxFractionDigits(0)))
	}
	return c.printer.Sprintf("$%v", number.Decimal(base, number.MaxFractionDigits(2)))
}

type rateResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// RefreshRate fetches the live NGN rate, collapsing concurrent calls.
// Any failure leaves the current rate in place; the fetch is
// best-effort and never surfaces an error to the caller.
func (c *Converter) RefreshRate(ctx context.Context) {
	if c.rateURL == "" {
		return
	}

	_, err, _ := c.sfg.Do("rate", func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rateURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("rate endpoint returned %d", resp.StatusCode)
		}

		var body rateResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("decode rate response: %w", err)
		}

		rate, ok := body.Rates[string(NGN)]
		if !ok || rate <= 0 {
			return nil, fmt.Errorf("rate response missing %s", NGN)
		}

		c.mu.Lock()
		c.rate = rate
		c.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		log.Printf("exchange rate fetch failed, keeping rate %.2f: %v", c.Rate(), err)
	}
}
