package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"workhive-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderSendsBasicAuthAndBody(t *testing.T) {
	var gotAuth string
	var gotBody CreateOrderRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_Nxy123",
			"amount":   gotBody.Amount,
			"currency": gotBody.Currency,
			"receipt":  gotBody.Receipt,
			"status":   "created",
		})
	}))
	defer ts.Close()

	c := NewRazorpayClient(&config.Razorpay{
		BaseApiURL: ts.URL,
		KeyID:      "rzp_test_abc",
		KeySecret:  "hunter2",
	})

	result, err := c.CreateOrder(context.Background(), &CreateOrderRequest{
		Amount:   150000,
		Currency: "INR",
		Receipt:  "ws42_abc123",
		Notes:    map[string]string{"workspace_id": "ws-42"},
	})
	require.NoError(t, err)

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("rzp_test_abc:hunter2"))
	assert.Equal(t, wantAuth, gotAuth)

	assert.Equal(t, int64(150000), gotBody.Amount)
	assert.Equal(t, "INR", gotBody.Currency)
	assert.Equal(t, "ws42_abc123", gotBody.Receipt)
	assert.Equal(t, map[string]string{"workspace_id": "ws-42"}, gotBody.Notes)

	assert.Equal(t, "order_Nxy123", result.OrderID)
	assert.Equal(t, int64(150000), result.Amount)
	assert.Equal(t, "created", result.Status)
}

func TestCreateOrderReturnsGatewayErrorOnFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`))
	}))
	defer ts.Close()

	c := NewRazorpayClient(&config.Razorpay{
		BaseApiURL: ts.URL,
		KeyID:      "bad",
		KeySecret:  "creds",
	})

	_, err := c.CreateOrder(context.Background(), &CreateOrderRequest{
		Amount:   100,
		Currency: "INR",
		Receipt:  "order_x",
	})
	require.Error(t, err)

	var gatewayErr *GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, http.StatusUnauthorized, gatewayErr.StatusCode)
	assert.Contains(t, gatewayErr.Body, "Authentication failed")
}
