package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/zealcatalyst/zeal-client/internal/domain"
)

// NotificationFilter selects a page of the caller's notifications.
type NotificationFilter struct {
	Skip       int
	Limit      int
	UnreadOnly bool
}

func (f NotificationFilter) query() url.Values {
	q := url.Values{}
	if f.Skip > 0 {
		q.Set("skip", strconv.Itoa(f.Skip))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.UnreadOnly {
		q.Set("unread_only", "true")
	}
	return q
}

// Notifications returns the caller's notifications newest first, with
// the total and unread counters the bell badge needs.
func (c *Client) Notifications(ctx context.Context, filter NotificationFilter) (*domain.NotificationList, error) {
	var list domain.NotificationList
	if err := c.get(ctx, "/notifications", filter.query(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) UnreadNotificationCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/notifications/unread-count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return c.send(ctx, http.MethodPut, "/notifications/"+notificationID+"/read", nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.send(ctx, http.MethodPut, "/notifications/mark-all-read", nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, notificationID string) error {
	return c.send(ctx, http.MethodDelete, "/notifications/"+notificationID, nil, nil)
}

// DeleteAllNotifications clears the caller's notifications; with
// readOnly set, unread ones are kept.
func (c *Client) DeleteAllNotifications(ctx context.Context, readOnly bool) error {
	path := "/notifications"
	if readOnly {
		path += "?read_only=true"
	}
	return c.send(ctx, http.MethodDelete, path, nil, nil)
}
