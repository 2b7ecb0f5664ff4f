package api

import (
	"context"

	"zhibi-tui/internal/dto"
	"zhibi-tui/internal/entity"
)

// Chat asks the backend for an assistant reply about one document. The mode
// tags the request semantically; the server builds the actual prompt around
// the stored document content.
func (c *Client) Chat(ctx context.Context, docID int64, message string, mode entity.Mode) (string, error) {
	payload := dto.ChatRequest{
		DocId:   docID,
		Message: message,
		Mode:    string(mode),
	}

	var result dto.ChatResponse
	if err := c.doJSON(ctx, "POST", "/api/chat", payload, &result); err != nil {
		return "", err
	}
	return result.Response, nil
}
