package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/zealcatalyst/zeal-client/internal/domain"
)

type BookingCreate struct {
	TutorID         string             `json:"tutor_id"`
	Subject         string             `json:"subject"`
	SessionType     domain.SessionType `json:"session_type"`
	ScheduledAt     time.Time          `json:"scheduled_at"`
	DurationMinutes int                `json:"duration_minutes"`
	Notes           string             `json:"notes,omitempty"`
	Currency        string             `json:"currency,omitempty"`
}

type BookingUpdate struct {
	Status      *domain.BookingStatus `json:"status,omitempty"`
	ScheduledAt *time.Time            `json:"scheduled_at,omitempty"`
	Notes       *string               `json:"notes,omitempty"`
	MeetingLink *string               `json:"meeting_link,omitempty"`
}

// CreateBooking requests a new session. The backend owns conflict
// detection and pricing; an Idempotency-Key guards against double
// submission.
func (c *Client) CreateBooking(ctx context.Context, req BookingCreate) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.sendIdempotent(ctx, http.MethodPost, "/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// MyBookings lists the current student's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// TutorBookings lists bookings for the current tutor.
func (c *Client) TutorBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/bookings/tutor/my-bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) UpdateBooking(ctx context.Context, bookingID string, update BookingUpdate) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.send(ctx, http.MethodPut, "/bookings/"+bookingID, update, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) ConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.send(ctx, http.MethodPost, "/bookings/"+bookingID+"/confirm", nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) UpdateMeetingLink(ctx context.Context, bookingID, link string) (*domain.Booking, error) {
	body := map[string]string{"meeting_link": link}
	var booking domain.Booking
	if err := c.send(ctx, http.MethodPut, "/bookings/"+bookingID+"/meet-link", body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking requests cancellation. The transition is committed by
// the backend; callers must not mark local state cancelled until this
// returns the updated booking.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.sendIdempotent(ctx, http.MethodPost, "/bookings/"+bookingID+"/cancel", nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

type ReviewCreate struct {
	TutorID   string `json:"tutor_id"`
	BookingID string `json:"booking_id,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

func (c *Client) CreateReview(ctx context.Context, req ReviewCreate) (*domain.Review, error) {
	var review domain.Review
	if err := c.send(ctx, http.MethodPost, "/bookings/reviews", req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
