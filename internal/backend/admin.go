package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/zealcatalyst/zeal-client/internal/domain"
)

// AdminTutor is the condensed tutor row the admin console lists; it is
// not the public TutorProfile shape.
type AdminTutor struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Headline      string    `json:"headline,omitempty"`
	Subjects      []string  `json:"subjects"`
	HourlyRate    float64   `json:"hourly_rate"`
	IsVerified    bool      `json:"is_verified"`
	IsActive      bool      `json:"is_active"`
	TotalSessions int       `json:"total_sessions"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
}

// AdminPayment includes party names on top of the ledger fields.
type AdminPayment struct {
	domain.Payment
	StudentName string     `json:"student_name,omitempty"`
	TutorName   string     `json:"tutor_name,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type AdminUserUpdate struct {
	FullName   *string      `json:"full_name,omitempty"`
	IsActive   *bool        `json:"is_active,omitempty"`
	IsVerified *bool        `json:"is_verified,omitempty"`
	Role       *domain.Role `json:"role,omitempty"`
}

type AdminUserFilter struct {
	Role   domain.Role
	Search string
	Skip   int
	Limit  int
}

func (f AdminUserFilter) query() url.Values {
	q := url.Values{}
	if f.Role != "" {
		q.Set("role", string(f.Role))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Skip > 0 {
		q.Set("skip", strconv.Itoa(f.Skip))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

type PlatformSettingsUpdate struct {
	MinimumWithdrawalAmount *float64 `json:"minimum_withdrawal_amount,omitempty"`
	TutorCommissionRate     *float64 `json:"tutor_commission_rate,omitempty"`
	StudentPlatformFeeRate  *float64 `json:"student_platform_fee_rate,omitempty"`
	DisplayCurrency         *string  `json:"display_currency,omitempty"`
	INRToUSDRate            *float64 `json:"inr_to_usd_rate,omitempty"`
}

func (c *Client) AdminStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.get(ctx, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) AdminUsers(ctx context.Context, filter AdminUserFilter) ([]domain.User, error) {
	var users []domain.User
	if err := c.get(ctx, "/admin/users", filter.query(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) AdminGetUser(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	if err := c.get(ctx, "/admin/users/"+userID, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) AdminUpdateUser(ctx context.Context, userID string, update AdminUserUpdate) (*domain.User, error) {
	var user domain.User
	if err := c.send(ctx, http.MethodPut, "/admin/users/"+userID, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) AdminDeleteUser(ctx context.Context, userID string) error {
	return c.send(ctx, http.MethodDelete, "/admin/users/"+userID, nil, nil)
}

func (c *Client) AdminTutors(ctx context.Context) ([]AdminTutor, error) {
	var tutors []AdminTutor
	if err := c.get(ctx, "/admin/tutors", nil, &tutors); err != nil {
		return nil, err
	}
	return tutors, nil
}

func (c *Client) AdminVerifyTutor(ctx context.Context, tutorID string) error {
	return c.send(ctx, http.MethodPut, "/admin/tutors/"+tutorID+"/verify", nil, nil)
}

func (c *Client) AdminSuspendTutor(ctx context.Context, tutorID string) error {
	return c.send(ctx, http.MethodPut, "/admin/tutors/"+tutorID+"/suspend", nil, nil)
}

func (c *Client) AdminActivateTutor(ctx context.Context, tutorID string) error {
	return c.send(ctx, http.MethodPut, "/admin/tutors/"+tutorID+"/activate", nil, nil)
}

func (c *Client) AdminBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/admin/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) AdminSetBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	body := map[string]string{"status": string(status)}
	return c.send(ctx, http.MethodPut, "/admin/bookings/"+bookingID+"/status", body, nil)
}

func (c *Client) AdminDeleteBooking(ctx context.Context, bookingID string) error {
	return c.send(ctx, http.MethodDelete, "/admin/bookings/"+bookingID, nil, nil)
}

func (c *Client) AdminRevenueStats(ctx context.Context) (*domain.RevenueStats, error) {
	var stats domain.RevenueStats
	if err := c.get(ctx, "/admin/revenue/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) AdminPayments(ctx context.Context) ([]AdminPayment, error) {
	var payments []AdminPayment
	if err := c.get(ctx, "/admin/revenue/payments", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) AdminGetPayment(ctx context.Context, paymentID string) (*AdminPayment, error) {
	var payment AdminPayment
	if err := c.get(ctx, "/admin/revenue/payments/"+paymentID, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) AdminTutorEarnings(ctx context.Context, skip, limit int) ([]domain.TutorEarnings, error) {
	q := url.Values{}
	if skip > 0 {
		q.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var earnings []domain.TutorEarnings
	if err := c.get(ctx, "/admin/revenue/tutor-earnings", q, &earnings); err != nil {
		return nil, err
	}
	return earnings, nil
}

func (c *Client) AdminTutorEarningsByID(ctx context.Context, tutorID string) (*domain.TutorEarnings, error) {
	var earnings domain.TutorEarnings
	if err := c.get(ctx, "/admin/revenue/tutor-earnings/"+tutorID, nil, &earnings); err != nil {
		return nil, err
	}
	return &earnings, nil
}

func (c *Client) AdminSettings(ctx context.Context) (*domain.PlatformSettings, error) {
	var settings domain.PlatformSettings
	if err := c.get(ctx, "/admin/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) AdminUpdateSettings(ctx context.Context, update PlatformSettingsUpdate) (*domain.PlatformSettings, error) {
	var settings domain.PlatformSettings
	if err := c.send(ctx, http.MethodPut, "/admin/settings", update, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
