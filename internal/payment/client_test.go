package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() *Request {
	return &Request{
		Email:     "buyer@example.com",
		Amount:    270,
		Reference: "GEO-1234-567",
		Metadata: Metadata{Items: []LineItem{
			{ProductID: "p1", Name: "Total Station", Quantity: 2, Price: 100, Category: "total-stations"},
			{ProductID: "p2", Name: "Prism", Quantity: 1, Price: 50, Category: "accessories"},
		}},
	}
}

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient(srv.URL, "sk_test_secret", 5*time.Second)
	c.httpClient = srv.Client()
	return c
}

func TestInitialize_Success(t *testing.T) {
	var gotAuth string
	var gotReq Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://gateway.example.com/pay/abc123",
				"access_code": "abc123",
				"reference": "GEO-1234-567"
			}
		}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	resp, err := c.Initialize(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, "https://gateway.example.com/pay/abc123", resp.Data.AuthorizationURL)
	assert.Equal(t, "Bearer sk_test_secret", gotAuth)
	assert.Equal(t, "buyer@example.com", gotReq.Email)
	assert.Equal(t, "GEO-1234-567", gotReq.Reference)
	require.Len(t, gotReq.Metadata.Items, 2)
	assert.Equal(t, "p1", gotReq.Metadata.Items[0].ProductID)
	assert.Equal(t, 2, gotReq.Metadata.Items[0].Quantity)
}

func TestInitialize_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"status": false, "message": "upstream unavailable"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Initialize(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestInitialize_RefusedTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": false, "message": "invalid email"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Initialize(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email")
}

func TestInitialize_MissingAuthorizationURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": true, "message": "ok", "data": {}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Initialize(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authorization url")
}

func TestInitialize_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status": false, "message": "boom"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	for i := 0; i < 5; i++ {
		_, err := c.Initialize(context.Background(), sampleRequest())
		require.Error(t, err)
	}

	// Breaker is open now; the request never reaches the server.
	_, err := c.Initialize(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
}
