package tui

import (
	"zhibi-tui/internal/dto"
	"zhibi-tui/internal/entity"
)

// Result messages carry the context their request was issued with (fetch
// generation, document id, chat mode), so a completion always applies to the
// state it was started against, never to "whatever is current".

type documentsLoadedMsg struct {
	gen       int
	documents []entity.Document
	err       error
}

type documentLoadedMsg struct {
	id       int64
	document *entity.Document
	err      error
}

type documentSavedMsg struct {
	id      int64
	content string
	err     error
}

type documentDeletedMsg struct {
	id  int64
	err error
}

type uploadDoneMsg struct {
	resp *dto.UploadResponse
	err  error
}

type chatResponseMsg struct {
	mode     entity.Mode
	response string
	err      error
}

// Navigation between the two top-level views.

type openDocumentMsg struct {
	id int64
}

type backToListMsg struct{}
