package backend

import (
	"context"
	"net/http"

	"github.com/zealcatalyst/zeal-client/internal/domain"
)

type CreateOrderRequest struct {
	BookingID string `json:"booking_id"`
}

// CreateOrderResponse carries the provider order reference the payment
// widget needs to start the flow.
type CreateOrderResponse struct {
	Success   bool   `json:"success"`
	OrderID   string `json:"order_id,omitempty"`
	Amount    int64  `json:"amount,omitempty"` // smallest currency unit
	Currency  string `json:"currency,omitempty"`
	KeyID     string `json:"key_id,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

type VerifyPaymentRequest struct {
	BookingID         string `json:"booking_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

type VerifyPaymentResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PaymentID string `json:"payment_id"`
	BookingID string `json:"booking_id"`
}

type PaymentConfig struct {
	KeyID                  string  `json:"key_id"`
	Currency               string  `json:"currency"`
	Name                   string  `json:"name"`
	Description            string  `json:"description"`
	StudentPlatformFeeRate float64 `json:"student_platform_fee_rate"`
}

func (c *Client) CreatePaymentOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	var resp CreateOrderResponse
	if err := c.send(ctx, http.MethodPost, "/payments/create-order", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyPayment posts the provider's completion fields back so the
// backend can settle the payment and mark the booking paid.
func (c *Client) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (*VerifyPaymentResponse, error) {
	var resp VerifyPaymentResponse
	if err := c.send(ctx, http.MethodPost, "/payments/verify", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) PaymentForBooking(ctx context.Context, bookingID string) (*domain.Payment, error) {
	var payment domain.Payment
	if err := c.get(ctx, "/payments/booking/"+bookingID, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) MyPayments(ctx context.Context) ([]domain.PaymentSummary, error) {
	var payments []domain.PaymentSummary
	if err := c.get(ctx, "/payments/my-payments", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) GetPaymentConfig(ctx context.Context) (*PaymentConfig, error) {
	var cfg PaymentConfig
	if err := c.get(ctx, "/payments/config", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
