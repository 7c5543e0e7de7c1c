package dto

type SendOtpRequest struct {
	Email string `json:"email"`
	Type  string `json:"type"`
}

type VerifyOtpRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
	Type  string `json:"type"`
}

type OtpResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CreateOrderRequest struct {
	Amount   float64           `json:"amount"` // major currency units
	Currency string            `json:"currency,omitempty"`
	Receipt  string            `json:"receipt,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // minor currency units, as echoed by the gateway
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

type EnquiryRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	WorkspaceID   string `json:"workspace_id,omitempty"`
	WorkspaceName string `json:"workspace_name,omitempty"`
	Message       string `json:"message"`
}

type BookingRequest struct {
	WorkspaceID     string `json:"workspace_id"`
	WorkspaceName   string `json:"workspace_name,omitempty"`
	ServiceName     string `json:"service_name,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
	CustomerEmail   string `json:"customer_email"`
	Amount          int64  `json:"amount"` // minor currency units
	Currency        string `json:"currency,omitempty"`
	RazorpayOrderID string `json:"razorpay_order_id"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}
