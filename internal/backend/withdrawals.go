package backend

import (
	"context"
	"net/http"

	"github.com/zealcatalyst/zeal-client/internal/domain"
)

type WithdrawalRequest struct {
	Amount         float64              `json:"amount"`
	PaymentMethod  domain.PaymentMethod `json:"payment_method"`
	PaymentDetails string               `json:"payment_details"`
}

type WithdrawalUpdate struct {
	Status        domain.WithdrawalStatus `json:"status"`
	AdminNotes    string                  `json:"admin_notes,omitempty"`
	TransactionID string                  `json:"transaction_id,omitempty"`
}

type WithdrawalAdminStats struct {
	TotalRequests   int     `json:"total_requests"`
	PendingRequests int     `json:"pending_requests"`
	TotalPaidOut    float64 `json:"total_paid_out"`
	PendingAmount   float64 `json:"pending_amount"`
}

// TutorStats returns the tutor's earnings and session counters. The
// backend computes every amount; this client only displays them.
func (c *Client) TutorStats(ctx context.Context) (*domain.TutorStats, error) {
	var stats domain.TutorStats
	if err := c.get(ctx, "/withdrawals/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) RequestWithdrawal(ctx context.Context, req WithdrawalRequest) (*domain.Withdrawal, error) {
	var w domain.Withdrawal
	if err := c.sendIdempotent(ctx, http.MethodPost, "/withdrawals", req, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *Client) MyWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	var list []domain.Withdrawal
	if err := c.get(ctx, "/withdrawals/my-requests", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) AdminWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	var list []domain.Withdrawal
	if err := c.get(ctx, "/withdrawals/admin/all", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) AdminPendingWithdrawalCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/withdrawals/admin/pending-count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *Client) AdminUpdateWithdrawal(ctx context.Context, withdrawalID string, update WithdrawalUpdate) (*domain.Withdrawal, error) {
	var w domain.Withdrawal
	if err := c.send(ctx, http.MethodPut, "/withdrawals/admin/"+withdrawalID, update, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *Client) AdminWithdrawalStats(ctx context.Context) (*WithdrawalAdminStats, error) {
	var stats WithdrawalAdminStats
	if err := c.get(ctx, "/withdrawals/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
