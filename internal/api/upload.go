package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"zhibi-tui/internal/dto"
)

const (
	TextKindText = "text"
	TextKindLink = "link"
)

// DetectTextKind mirrors the backend's link heuristic: a short single-token
// http(s) string is treated as a URL to scrape, anything else as raw text.
func DetectTextKind(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return TextKindText
	}
	if len(trimmed) >= 500 || strings.ContainsAny(trimmed, " \t\n") {
		return TextKindText
	}
	return TextKindLink
}

// UploadFile streams one file to the OCR/import pipeline as multipart field
// "file".
func (c *Client) UploadFile(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/api/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upload error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var result dto.UploadResponse
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return &result, nil
}

// UploadText submits pasted text or a link for server-side parsing. kind is
// TextKindText or TextKindLink; see DetectTextKind.
func (c *Client) UploadText(ctx context.Context, text, kind string) (*dto.UploadResponse, error) {
	payload := dto.UploadTextRequest{Text: text, Type: kind}

	var result dto.UploadResponse
	if err := c.doJSON(ctx, "POST", "/api/upload/text", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
