package views

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/zealcatalyst/zeal-client/internal/domain"
)

var (
	// ErrCancelNotConfirmed is returned when cancellation is requested
	// without the interactive confirmation step.
	ErrCancelNotConfirmed = errors.New("cancellation not confirmed")
	// ErrCancelInFlight is returned when a cancel request for the same
	// booking is already outstanding.
	ErrCancelInFlight = errors.New("cancellation already in progress")
)

// BookingAPI is the slice of the backend client the dashboard needs.
type BookingAPI interface {
	MyBookings(ctx context.Context) ([]domain.Booking, error)
	TutorBookings(ctx context.Context) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	MyRatings(ctx context.Context) ([]domain.Rating, error)
}

// Dashboard backs the student/tutor bookings screen: the upcoming/past
// partition, the pending-rating prompts, and per-row cancellation.
// State is only updated from confirmed backend responses, never
// optimistically.
type Dashboard struct {
	api  BookingAPI
	role domain.Role
	now  func() time.Time

	mu         sync.Mutex
	bookings   []domain.Booking
	ratings    []domain.Rating
	cancelling map[string]bool
}

func NewDashboard(api BookingAPI, role domain.Role) *Dashboard {
	return &Dashboard{
		api:        api,
		role:       role,
		now:        time.Now,
		cancelling: make(map[string]bool),
	}
}

// Refresh reloads the dashboard data. For students it also loads their
// submitted ratings so prompts for already-rated sessions are
// suppressed. The snapshot is committed atomically; a refresh that
// fails leaves the previous snapshot in place.
func (d *Dashboard) Refresh(ctx context.Context) error {
	var (
		bookings []domain.Booking
		err      error
	)
	if d.role == domain.RoleTutor {
		bookings, err = d.api.TutorBookings(ctx)
	} else {
		bookings, err = d.api.MyBookings(ctx)
	}
	if err != nil {
		return err
	}

	var ratings []domain.Rating
	if d.role == domain.RoleStudent {
		ratings, err = d.api.MyRatings(ctx)
		if err != nil {
			return err
		}
	}

	d.mu.Lock()
	d.bookings = bookings
	d.ratings = ratings
	d.mu.Unlock()
	return nil
}

func (d *Dashboard) Upcoming() []domain.Booking {
	d.mu.Lock()
	defer d.mu.Unlock()
	upcoming, _ := domain.PartitionBookings(d.bookings, d.now())
	return upcoming
}

func (d *Dashboard) Past() []domain.Booking {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, past := domain.PartitionBookings(d.bookings, d.now())
	return past
}

// PendingRatings returns the sessions that should prompt for a rating.
func (d *Dashboard) PendingRatings() []domain.Booking {
	d.mu.Lock()
	defer d.mu.Unlock()
	return domain.PendingRatings(d.bookings, d.ratings, d.now())
}

// IsCancelling reports whether a cancel request is outstanding for the
// given booking. Tracking is per id so other rows stay interactive.
func (d *Dashboard) IsCancelling(bookingID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelling[bookingID]
}

// CancelBooking requests cancellation of one booking. confirmed must
// already have been obtained interactively from the user. The local
// row is only updated once the backend confirms the transition.
func (d *Dashboard) CancelBooking(ctx context.Context, bookingID string, confirmed bool) error {
	if !confirmed {
		return ErrCancelNotConfirmed
	}

	d.mu.Lock()
	if d.cancelling[bookingID] {
		d.mu.Unlock()
		return ErrCancelInFlight
	}
	d.cancelling[bookingID] = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		delete(d.cancelling, bookingID)
		d.mu.Unlock()
	}()

	updated, err := d.api.CancelBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	d.mu.Lock()
	for i := range d.bookings {
		if d.bookings[i].ID == updated.ID {
			d.bookings[i] = *updated
			break
		}
	}
	d.mu.Unlock()
	return nil
}
