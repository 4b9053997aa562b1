package backend

import (
	"context"
	"net/http"
	"net/url"
)

type CalendarStatus struct {
	Connected bool   `json:"connected"`
	Email     string `json:"email,omitempty"`
}

type CalendarConnect struct {
	AuthURL string `json:"auth_url"`
}

// GoogleCalendarStatus reports whether the current tutor has linked a
// Google Calendar.
func (c *Client) GoogleCalendarStatus(ctx context.Context) (*CalendarStatus, error) {
	var status CalendarStatus
	if err := c.get(ctx, "/google-calendar/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GoogleCalendarConnect starts the OAuth flow. The returned auth_url is
// opened in a browser; the provider redirects back to the backend,
// which completes the exchange.
func (c *Client) GoogleCalendarConnect(ctx context.Context, frontendRedirect string) (*CalendarConnect, error) {
	q := url.Values{}
	if frontendRedirect != "" {
		q.Set("frontend_redirect", frontendRedirect)
	}
	var connect CalendarConnect
	if err := c.get(ctx, "/google-calendar/connect", q, &connect); err != nil {
		return nil, err
	}
	return &connect, nil
}

func (c *Client) GoogleCalendarDisconnect(ctx context.Context) error {
	return c.send(ctx, http.MethodDelete, "/google-calendar/disconnect", nil, nil)
}
