package domain

import (
	"sort"
	"time"
)

// IsUpcoming reports whether a booking belongs in the upcoming list.
// Cancelled bookings are always past, regardless of their scheduled
// time.
func IsUpcoming(b Booking, now time.Time) bool {
	if b.Status == BookingCancelled {
		return false
	}
	return !b.ScheduledAt.Before(now)
}

// PartitionBookings splits bookings into upcoming and past. Upcoming is
// sorted ascending by scheduled time, past descending.
func PartitionBookings(bookings []Booking, now time.Time) (upcoming, past []Booking) {
	upcoming = make([]Booking, 0)
	past = make([]Booking, 0)

	for _, b := range bookings {
		if IsUpcoming(b, now) {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledAt.Before(upcoming[j].ScheduledAt)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].ScheduledAt.After(past[j].ScheduledAt)
	})

	return upcoming, past
}

// EligibleForRating reports whether a booking can be rated: either the
// backend marked it completed, or it was not cancelled and its
// scheduled time has passed.
func EligibleForRating(b Booking, now time.Time) bool {
	if b.Status == BookingCompleted {
		return true
	}
	return b.Status != BookingCancelled && b.ScheduledAt.Before(now)
}

type ratingKey struct {
	tutorID   string
	sessionAt int64
}

// PendingRatings returns the bookings that should prompt the student
// for a rating: eligible, and not yet rated. A rating references its
// session by (tutor, session timestamp); at most one prompt is emitted
// per distinct pair even if the bookings list carries duplicates.
func PendingRatings(bookings []Booking, ratings []Rating, now time.Time) []Booking {
	rated := make(map[ratingKey]struct{}, len(ratings))
	for _, r := range ratings {
		if r.SessionDate == nil {
			continue
		}
		rated[ratingKey{r.TutorID, r.SessionDate.UTC().Unix()}] = struct{}{}
	}

	pending := make([]Booking, 0)
	seen := make(map[ratingKey]struct{})
	for _, b := range bookings {
		if !EligibleForRating(b, now) {
			continue
		}
		key := ratingKey{b.TutorID, b.ScheduledAt.UTC().Unix()}
		if _, ok := rated[key]; ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		pending = append(pending, b)
	}

	return pending
}
