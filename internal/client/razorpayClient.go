package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"workhive-backend/internal/config"
)

type RazorpayClient interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResult, error)
}

type razorpayClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	keyID      string
	keySecret  string
}

type CreateOrderRequest struct {
	Amount   int64             `json:"amount"` // minor currency units
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type CreateOrderResult struct {
	OrderID  string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

// GatewayError preserves the gateway's status code and response body so the
// handler can pass them through for diagnostic logging.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("razorpay error %d: %s", e.StatusCode, e.Body)
}

type razorpayOrderResult struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

func NewRazorpayClient(razorpayCfg *config.Razorpay) RazorpayClient {
	return &razorpayClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: razorpayCfg.BaseApiURL,
		keyID:      razorpayCfg.KeyID,
		keySecret:  razorpayCfg.KeySecret,
	}
}

func (c *razorpayClientImpl) CreateOrder(ctx context.Context, orderReq *CreateOrderRequest) (*CreateOrderResult, error) {
	auth := base64.StdEncoding.EncodeToString(
		[]byte(c.keyID + ":" + c.keySecret),
	)

	body, err := json.Marshal(orderReq)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/v1/orders",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, &GatewayError{
			StatusCode: resp.StatusCode,
			Body:       string(b),
		}
	}

	var result razorpayOrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode razorpay response: %w", err)
	}

	return &CreateOrderResult{
		OrderID:  result.ID,
		Amount:   result.Amount,
		Currency: result.Currency,
		Receipt:  result.Receipt,
		Status:   result.Status,
	}, nil
}
