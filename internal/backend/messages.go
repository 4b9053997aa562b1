package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/zealcatalyst/zeal-client/internal/domain"
)

type StartConversationRequest struct {
	TutorUserID string `json:"tutor_user_id"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

// StartConversation opens (or returns the existing) thread between the
// current student and a tutor.
func (c *Client) StartConversation(ctx context.Context, tutorUserID string) (*domain.Conversation, error) {
	var conv domain.Conversation
	req := StartConversationRequest{TutorUserID: tutorUserID}
	if err := c.send(ctx, http.MethodPost, "/messages/conversations/start", req, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// Conversations lists the caller's threads, most recently active first.
func (c *Client) Conversations(ctx context.Context) ([]domain.Conversation, error) {
	var list []domain.Conversation
	if err := c.get(ctx, "/messages/conversations", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ConversationMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	var list []domain.Message
	if err := c.get(ctx, "/messages/conversations/"+conversationID+"/messages", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) SendMessage(ctx context.Context, conversationID, content string) (*domain.Message, error) {
	var msg domain.Message
	req := SendMessageRequest{Content: content}
	if err := c.send(ctx, http.MethodPost, "/messages/conversations/"+conversationID+"/messages", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) AdminConversations(ctx context.Context, search string) ([]domain.Conversation, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	var list []domain.Conversation
	if err := c.get(ctx, "/messages/admin/conversations", q, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) AdminConversationMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	var list []domain.Message
	if err := c.get(ctx, "/messages/admin/conversations/"+conversationID+"/messages", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}
