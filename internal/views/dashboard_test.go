package views

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zealcatalyst/zeal-client/internal/domain"
)

type mockBookingAPI struct {
	mock.Mock
}

func (m *mockBookingAPI) MyBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingAPI) TutorBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingAPI) CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingAPI) MyRatings(ctx context.Context) ([]domain.Rating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func booking(id string, at time.Time, status domain.BookingStatus) domain.Booking {
	return domain.Booking{
		ID:          id,
		TutorID:     "t-" + id,
		Subject:     "Math",
		ScheduledAt: at,
		Status:      status,
	}
}

func TestDashboardRefresh(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Student Partition", func(t *testing.T) {
		api := new(mockBookingAPI)
		api.On("MyBookings", mock.Anything).Return([]domain.Booking{
			booking("past", now.Add(-48*time.Hour), domain.BookingCompleted),
			booking("future", now.Add(24*time.Hour), domain.BookingConfirmed),
			booking("cancelled", now.Add(24*time.Hour), domain.BookingCancelled),
		}, nil)
		api.On("MyRatings", mock.Anything).Return([]domain.Rating{}, nil)

		d := NewDashboard(api, domain.RoleStudent)
		d.now = func() time.Time { return now }

		require.NoError(t, d.Refresh(ctx))

		upcoming := d.Upcoming()
		require.Len(t, upcoming, 1)
		assert.Equal(t, "future", upcoming[0].ID)

		past := d.Past()
		require.Len(t, past, 2)
		// Cancelled future sessions belong to past regardless of time.
		assert.Equal(t, "cancelled", past[0].ID)
		assert.Equal(t, "past", past[1].ID)
	})

	t.Run("Tutor Uses Tutor Endpoint", func(t *testing.T) {
		api := new(mockBookingAPI)
		api.On("TutorBookings", mock.Anything).Return([]domain.Booking{
			booking("b1", now.Add(time.Hour), domain.BookingPending),
		}, nil)

		d := NewDashboard(api, domain.RoleTutor)
		d.now = func() time.Time { return now }

		require.NoError(t, d.Refresh(ctx))
		assert.Len(t, d.Upcoming(), 1)
		api.AssertNotCalled(t, "MyBookings", mock.Anything)
		api.AssertNotCalled(t, "MyRatings", mock.Anything)
	})

	t.Run("Failed Refresh Keeps Previous Snapshot", func(t *testing.T) {
		api := new(mockBookingAPI)
		api.On("MyBookings", mock.Anything).Return([]domain.Booking{
			booking("b1", now.Add(time.Hour), domain.BookingConfirmed),
		}, nil).Once()
		api.On("MyRatings", mock.Anything).Return([]domain.Rating{}, nil).Once()
		api.On("MyBookings", mock.Anything).Return(nil, assert.AnError)

		d := NewDashboard(api, domain.RoleStudent)
		d.now = func() time.Time { return now }

		require.NoError(t, d.Refresh(ctx))
		require.Error(t, d.Refresh(ctx))

		upcoming := d.Upcoming()
		require.Len(t, upcoming, 1)
		assert.Equal(t, "b1", upcoming[0].ID)
	})
}

func TestDashboardPendingRatings(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	sessionAt := now.Add(-24 * time.Hour)

	rated := booking("rated", sessionAt, domain.BookingCompleted)
	unrated := booking("unrated", now.Add(-48*time.Hour), domain.BookingCompleted)

	api := new(mockBookingAPI)
	api.On("MyBookings", mock.Anything).Return([]domain.Booking{rated, unrated}, nil)
	api.On("MyRatings", mock.Anything).Return([]domain.Rating{
		{ID: "r1", TutorID: rated.TutorID, SessionDate: &sessionAt},
	}, nil)

	d := NewDashboard(api, domain.RoleStudent)
	d.now = func() time.Time { return now }

	require.NoError(t, d.Refresh(ctx))

	pending := d.PendingRatings()
	require.Len(t, pending, 1)
	assert.Equal(t, "unrated", pending[0].ID)
}

func TestDashboardCancelBooking(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Requires Confirmation", func(t *testing.T) {
		api := new(mockBookingAPI)
		d := NewDashboard(api, domain.RoleStudent)

		err := d.CancelBooking(ctx, "b1", false)
		require.ErrorIs(t, err, ErrCancelNotConfirmed)
		api.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything)
	})

	t.Run("Updates Row From Confirmed Response", func(t *testing.T) {
		target := booking("b1", now.Add(time.Hour), domain.BookingConfirmed)
		cancelled := target
		cancelled.Status = domain.BookingCancelled

		api := new(mockBookingAPI)
		api.On("MyBookings", mock.Anything).Return([]domain.Booking{target}, nil)
		api.On("MyRatings", mock.Anything).Return([]domain.Rating{}, nil)
		api.On("CancelBooking", mock.Anything, "b1").Return(&cancelled, nil)

		d := NewDashboard(api, domain.RoleStudent)
		d.now = func() time.Time { return now }
		require.NoError(t, d.Refresh(ctx))

		require.NoError(t, d.CancelBooking(ctx, "b1", true))

		assert.Empty(t, d.Upcoming())
		past := d.Past()
		require.Len(t, past, 1)
		assert.Equal(t, domain.BookingCancelled, past[0].Status)
		assert.False(t, d.IsCancelling("b1"))
	})

	t.Run("Row Unchanged When Backend Rejects", func(t *testing.T) {
		target := booking("b1", now.Add(time.Hour), domain.BookingConfirmed)

		api := new(mockBookingAPI)
		api.On("MyBookings", mock.Anything).Return([]domain.Booking{target}, nil)
		api.On("MyRatings", mock.Anything).Return([]domain.Rating{}, nil)
		api.On("CancelBooking", mock.Anything, "b1").Return(nil, assert.AnError)

		d := NewDashboard(api, domain.RoleStudent)
		d.now = func() time.Time { return now }
		require.NoError(t, d.Refresh(ctx))

		require.Error(t, d.CancelBooking(ctx, "b1", true))

		upcoming := d.Upcoming()
		require.Len(t, upcoming, 1)
		assert.Equal(t, domain.BookingConfirmed, upcoming[0].Status)
		assert.False(t, d.IsCancelling("b1"))
	})

	t.Run("Second Cancel For Same Booking Is Rejected While In Flight", func(t *testing.T) {
		release := make(chan struct{})
		entered := make(chan struct{})

		target := booking("b1", now.Add(time.Hour), domain.BookingConfirmed)
		cancelled := target
		cancelled.Status = domain.BookingCancelled

		api := new(mockBookingAPI)
		api.On("MyBookings", mock.Anything).Return([]domain.Booking{target}, nil)
		api.On("MyRatings", mock.Anything).Return([]domain.Rating{}, nil)
		api.On("CancelBooking", mock.Anything, "b1").Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).Return(&cancelled, nil)

		d := NewDashboard(api, domain.RoleStudent)
		d.now = func() time.Time { return now }
		require.NoError(t, d.Refresh(ctx))

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.CancelBooking(ctx, "b1", true))
		}()

		<-entered
		assert.True(t, d.IsCancelling("b1"))
		// Other rows stay interactive while b1 is in flight.
		assert.False(t, d.IsCancelling("b2"))

		err := d.CancelBooking(ctx, "b1", true)
		assert.ErrorIs(t, err, ErrCancelInFlight)

		close(release)
		wg.Wait()
		assert.False(t, d.IsCancelling("b1"))
	})
}
