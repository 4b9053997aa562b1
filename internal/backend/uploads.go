package backend

import (
	"context"
	"io"
	"net/http"
)

// UploadResult is returned by every upload endpoint: a URL reference,
// never the binary content.
type UploadResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Message string `json:"message,omitempty"`
}

func (c *Client) UploadAvatar(ctx context.Context, fileName string, file io.Reader) (*UploadResult, error) {
	var result UploadResult
	if err := c.upload(ctx, "/uploads/avatar", nil, "file", fileName, file, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UploadTutorImage(ctx context.Context, fileName string, file io.Reader) (*UploadResult, error) {
	var result UploadResult
	if err := c.upload(ctx, "/uploads/tutor-image", nil, "file", fileName, file, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteAvatar(ctx context.Context) error {
	return c.send(ctx, http.MethodDelete, "/uploads/avatar", nil, nil)
}
