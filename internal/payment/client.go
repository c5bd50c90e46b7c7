package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// LineItem enumerates one cart line in the initialize metadata.
type LineItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
}

type Metadata struct {
	Items []LineItem `json:"items"`
}

// Request is the transaction-initialize payload sent to the gateway.
type Request struct {
	Email     string   `json:"email"`
	Amount    float64  `json:"amount"`
	Reference string   `json:"reference"`
	Metadata  Metadata `json:"metadata"`
}

// Response carries the gateway's authorization URL on success, or a
// message explaining the refusal.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// Initiator defines the interface the checkout flow depends on.
type Initiator interface {
	Initialize(ctx context.Context, req *Request) (*Response, error)
}

// Client calls the external payment gateway over HTTP JSON. Calls run
// behind a circuit breaker so a dead gateway fails fast instead of
// holding every checkout open for the full timeout.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*Response]
}

func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
			Name:    "payment-initialize",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// Initialize posts the transaction to the gateway and returns its
// response. A non-2xx status or a refused transaction is an error; the
// caller decides whether to retry (the checkout flow does not).
func (c *Client) Initialize(ctx context.Context, req *Request) (*Response, error) {
	return c.breaker.Execute(func() (*Response, error) {
		body, err := json.Marshal(req)
		if err != nil {
			return nil, fmt.Errorf("marshal initialize request: %w", err)
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseURL+"/transaction/initialize", bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("build initialize request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

		httpResp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return nil, fmt.Errorf("initialize request failed: %w", err)
		}
		defer httpResp.Body.Close()

		respBody, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return nil, fmt.Errorf("read initialize response: %w", err)
		}

		var resp Response
		if err := json.Unmarshal(respBody, &resp); err != nil {
			return nil, fmt.Errorf("decode initialize response (status %d): %w", httpResp.StatusCode, err)
		}

		if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
			return nil, fmt.Errorf("gateway returned %d: %s", httpResp.StatusCode, resp.Message)
		}
		if !resp.Status {
			return nil, fmt.Errorf("transaction refused: %s", resp.Message)
		}
		if resp.Data.AuthorizationURL == "" {
			return nil, fmt.Errorf("gateway response missing authorization url")
		}

		return &resp, nil
	})
}
