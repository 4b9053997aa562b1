package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zealcatalyst/zeal-client/internal/domain"
)

type AvailabilitySettingsUpdate struct {
	Timezone            *string `json:"timezone,omitempty"`
	SessionDuration     *int    `json:"session_duration,omitempty"`
	BufferTime          *int    `json:"buffer_time,omitempty"`
	AdvanceBookingDays  *int    `json:"advance_booking_days,omitempty"`
	MinNoticeHours      *int    `json:"min_notice_hours,omitempty"`
	IsAcceptingStudents *bool   `json:"is_accepting_students,omitempty"`
}

// WeeklyScheduleUpdate replaces the whole weekly grid; days absent from
// the map are cleared.
type WeeklyScheduleUpdate struct {
	Monday    []domain.TimeSlot `json:"monday"`
	Tuesday   []domain.TimeSlot `json:"tuesday"`
	Wednesday []domain.TimeSlot `json:"wednesday"`
	Thursday  []domain.TimeSlot `json:"thursday"`
	Friday    []domain.TimeSlot `json:"friday"`
	Saturday  []domain.TimeSlot `json:"saturday"`
	Sunday    []domain.TimeSlot `json:"sunday"`
}

type BlockedDateCreate struct {
	Date   string `json:"date"` // "YYYY-MM-DD"
	Reason string `json:"reason,omitempty"`
}

type BlockedDateList struct {
	BlockedDates []domain.BlockedDate `json:"blocked_dates"`
	Total        int                  `json:"total"`
}

func (c *Client) AvailabilitySettings(ctx context.Context) (*domain.Availability, error) {
	var a domain.Availability
	if err := c.get(ctx, "/availability/settings", nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) UpdateAvailabilitySettings(ctx context.Context, update AvailabilitySettingsUpdate) (*domain.Availability, error) {
	var a domain.Availability
	if err := c.send(ctx, http.MethodPut, "/availability/settings", update, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) UpdateWeeklySchedule(ctx context.Context, schedule WeeklyScheduleUpdate) (*domain.Availability, error) {
	var a domain.Availability
	if err := c.send(ctx, http.MethodPut, "/availability/schedule", schedule, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) AddBlockedDate(ctx context.Context, req BlockedDateCreate) (*domain.BlockedDate, error) {
	var d domain.BlockedDate
	if err := c.send(ctx, http.MethodPost, "/availability/blocked-dates", req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) RemoveBlockedDate(ctx context.Context, dateID string) error {
	return c.send(ctx, http.MethodDelete, "/availability/blocked-dates/"+dateID, nil, nil)
}

func (c *Client) BlockedDates(ctx context.Context) (*BlockedDateList, error) {
	var list BlockedDateList
	if err := c.get(ctx, "/availability/blocked-dates", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// MonthCalendar returns the tutor's own month view.
func (c *Client) MonthCalendar(ctx context.Context, year, month int) (*domain.MonthCalendar, error) {
	var cal domain.MonthCalendar
	path := fmt.Sprintf("/availability/calendar/%d/%d", year, month)
	if err := c.get(ctx, path, nil, &cal); err != nil {
		return nil, err
	}
	return &cal, nil
}

// PublicMonthCalendar returns a tutor's bookable days as seen by
// students.
func (c *Client) PublicMonthCalendar(ctx context.Context, tutorID string, year, month int) (*domain.MonthCalendar, error) {
	var cal domain.MonthCalendar
	path := fmt.Sprintf("/availability/public/%s/calendar/%d/%d", tutorID, year, month)
	if err := c.get(ctx, path, nil, &cal); err != nil {
		return nil, err
	}
	return &cal, nil
}
