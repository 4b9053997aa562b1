package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zealcatalyst/zeal-client/internal/domain"
)

func TestStartConversationReturnsExistingThread(t *testing.T) {
	var got StartConversationRequest

	r := chi.NewRouter()
	r.Post("/messages/conversations/start", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		json.NewEncoder(w).Encode(domain.Conversation{
			ID:          "c1",
			StudentID:   "u1",
			TutorID:     got.TutorUserID,
			StudentName: "Asha B",
			TutorName:   "Ravi K",
		})
	})

	client := newTestClient(t, r, "T")
	conv, err := client.StartConversation(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, "t1", got.TutorUserID)
	assert.Equal(t, "c1", conv.ID)
	assert.Equal(t, "Ravi K", conv.TutorName)
}

func TestSendMessageAndList(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	var sent SendMessageRequest

	r := chi.NewRouter()
	r.Post("/messages/conversations/{conversationID}/messages", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&sent))
		json.NewEncoder(w).Encode(domain.Message{
			ID:             "m1",
			ConversationID: chi.URLParam(req, "conversationID"),
			SenderID:       "u1",
			SenderRole:     domain.RoleStudent,
			Content:        sent.Content,
			CreatedAt:      now,
		})
	})
	r.Get("/messages/conversations/{conversationID}/messages", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode([]domain.Message{
			{ID: "m1", ConversationID: chi.URLParam(req, "conversationID"), Content: "hi"},
		})
	})

	client := newTestClient(t, r, "T")

	msg, err := client.SendMessage(context.Background(), "c1", "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", sent.Content)
	assert.Equal(t, "c1", msg.ConversationID)

	list, err := client.ConversationMessages(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "m1", list[0].ID)
}

func TestSendMessageToMissingConversation(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/messages/conversations/{conversationID}/messages", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Conversation not found"})
	})

	client := newTestClient(t, r, "T")
	_, err := client.SendMessage(context.Background(), "missing", "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Conversation not found", Message(err, "generic"))
}

func TestAdminConversationsSendsSearch(t *testing.T) {
	var gotSearch string

	r := chi.NewRouter()
	r.Get("/messages/admin/conversations", func(w http.ResponseWriter, req *http.Request) {
		gotSearch = req.URL.Query().Get("search")
		json.NewEncoder(w).Encode([]domain.Conversation{{ID: "c1"}})
	})

	client := newTestClient(t, r, "T")
	list, err := client.AdminConversations(context.Background(), "asha")
	require.NoError(t, err)

	assert.Equal(t, "asha", gotSearch)
	assert.Len(t, list, 1)
}
