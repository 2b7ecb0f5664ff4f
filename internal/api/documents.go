package api

import (
	"context"
	"fmt"
	"net/url"

	"zhibi-tui/internal/constant"
	"zhibi-tui/internal/entity"
)

// ListFilter is the snapshot of search text and filters one list fetch was
// issued with. Filtering happens server-side; the client never re-filters a
// cached collection.
type ListFilter struct {
	Query string
	Type  string
	Theme string
}

func (f ListFilter) values() url.Values {
	params := url.Values{}
	if f.Query != "" {
		params.Set("query", f.Query)
	}
	if f.Type != "" && f.Type != constant.TypeFilterAll {
		params.Set("type", f.Type)
	}
	if f.Theme != "" {
		params.Set("theme", f.Theme)
	}
	return params
}

func (c *Client) ListDocuments(ctx context.Context, filter ListFilter) ([]entity.Document, error) {
	path := "/api/documents"
	if params := filter.values(); len(params) > 0 {
		path += "?" + params.Encode()
	}

	var docs []entity.Document
	if err := c.doJSON(ctx, "GET", path, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Client) GetDocument(ctx context.Context, id int64) (*entity.Document, error) {
	var doc entity.Document
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/api/documents/%d", id), nil, &doc); err != nil {
		// The detail view only distinguishes "loaded" from "gone"; the
		// underlying cause still lands in the log.
		c.Log.Error("api", "load document failed", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return &doc, nil
}

// UpdateDocument PUTs the full document object with the caller's content
// already substituted in. The backend replies with a bare status object, so
// the caller keeps its own copy as the saved value.
func (c *Client) UpdateDocument(ctx context.Context, doc *entity.Document) error {
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/api/documents/%d", doc.Id), doc, nil)
}

func (c *Client) DeleteDocument(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/api/documents/%d", id), nil, nil)
}
