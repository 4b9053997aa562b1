package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zealcatalyst/zeal-client/internal/domain"
)

func TestNotificationsSendsPagination(t *testing.T) {
	var got url.Values

	r := chi.NewRouter()
	r.Get("/notifications", func(w http.ResponseWriter, req *http.Request) {
		got = req.URL.Query()
		json.NewEncoder(w).Encode(domain.NotificationList{
			Notifications: []domain.Notification{
				{ID: "n1", Type: domain.NotificationBookingConfirmed, Title: "Booking confirmed"},
			},
			Total:       1,
			UnreadCount: 1,
		})
	})

	client := newTestClient(t, r, "T")
	list, err := client.Notifications(context.Background(), NotificationFilter{Skip: 20, Limit: 10, UnreadOnly: true})
	require.NoError(t, err)

	assert.Equal(t, "20", got.Get("skip"))
	assert.Equal(t, "10", got.Get("limit"))
	assert.Equal(t, "true", got.Get("unread_only"))
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, 1, list.UnreadCount)
}

func TestUnreadNotificationCountUnwrapped(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/notifications/unread-count", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"count": 4})
	})

	client := newTestClient(t, r, "T")
	count, err := client.UnreadNotificationCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestNotificationReadAndDelete(t *testing.T) {
	var calls []string

	r := chi.NewRouter()
	r.Put("/notifications/mark-all-read", func(w http.ResponseWriter, req *http.Request) {
		calls = append(calls, "mark-all")
		json.NewEncoder(w).Encode(map[string]string{"message": "All notifications marked as read"})
	})
	r.Put("/notifications/{notificationID}/read", func(w http.ResponseWriter, req *http.Request) {
		calls = append(calls, "read:"+chi.URLParam(req, "notificationID"))
		json.NewEncoder(w).Encode(map[string]string{"message": "Notification marked as read"})
	})
	r.Delete("/notifications/{notificationID}", func(w http.ResponseWriter, req *http.Request) {
		calls = append(calls, "delete:"+chi.URLParam(req, "notificationID"))
		json.NewEncoder(w).Encode(map[string]string{"message": "Notification deleted"})
	})
	r.Delete("/notifications", func(w http.ResponseWriter, req *http.Request) {
		calls = append(calls, "delete-all:"+req.URL.Query().Get("read_only"))
		json.NewEncoder(w).Encode(map[string]string{"message": "Notifications deleted"})
	})

	client := newTestClient(t, r, "T")
	ctx := context.Background()

	require.NoError(t, client.MarkNotificationRead(ctx, "n1"))
	require.NoError(t, client.MarkAllNotificationsRead(ctx))
	require.NoError(t, client.DeleteNotification(ctx, "n1"))
	require.NoError(t, client.DeleteAllNotifications(ctx, true))

	assert.Equal(t, []string{"read:n1", "mark-all", "delete:n1", "delete-all:true"}, calls)
}
