package dto

// UploadTextRequest feeds the raw-text / link import pipeline. Type is
// "text" for pasted content and "link" for a bare URL the server should
// scrape first.
type UploadTextRequest struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// UploadResponse is shared by both upload endpoints.
type UploadResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Ids     []int64 `json:"ids,omitempty"`
	Count   int     `json:"count,omitempty"`
}

type ChatRequest struct {
	DocId   int64  `json:"doc_id"`
	Message string `json:"message"`
	Mode    string `json:"mode"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
