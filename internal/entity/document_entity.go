package entity

// Document is one stored essay-material entry. The server owns the record;
// the client only ever holds a transient copy per view.
type Document struct {
	Id      int64    `json:"id"`
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content"`
	Type    string   `json:"type"`
	Themes  []string `json:"themes"`
	Tags    []string `json:"tags"`
	Date    string   `json:"date"`
}

// DisplayType falls back to the default category when the server left the
// type empty.
func (d Document) DisplayType() string {
	if d.Type == "" {
		return "论证段"
	}
	return d.Type
}
