package tui

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zhibi-tui/internal/api"
	"zhibi-tui/internal/constant"
	"zhibi-tui/internal/dto"
	"zhibi-tui/internal/entity"
	"zhibi-tui/internal/pkg/logger"
)

func newTestList(t *testing.T) listModel {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL, logger.NewNopLogger())
	m := newListModel(client, logger.NewNopLogger())
	m.setSize(100, 40)
	return m
}

func TestStaleListResponseIsDiscarded(t *testing.T) {
	m := newTestList(t)

	// Two fetches in flight: the filter changed before the first resolved.
	m.fetch()
	m.fetch()

	m.Update(documentsLoadedMsg{gen: 1, documents: []entity.Document{{Id: 1, Content: "old"}}})
	assert.Empty(t, m.documents)
	assert.True(t, m.loading)

	m.Update(documentsLoadedMsg{gen: 2, documents: []entity.Document{{Id: 2, Content: "new"}}})
	require.Len(t, m.documents, 1)
	assert.Equal(t, int64(2), m.documents[0].Id)
	assert.False(t, m.loading)
}

func TestListFetchFailureKeepsOldDocuments(t *testing.T) {
	m := newTestList(t)
	m.documents = []entity.Document{{Id: 1}}

	m.fetch()
	m.Update(documentsLoadedMsg{gen: m.gen, err: errors.New("boom")})

	assert.Len(t, m.documents, 1)
	assert.False(t, m.loading)
	assert.NotEmpty(t, m.status)
}

func TestDeleteAlwaysRefetches(t *testing.T) {
	m := newTestList(t)

	cmd := m.Update(documentDeletedMsg{id: 7})
	assert.NotNil(t, cmd)
	assert.Empty(t, m.status)

	cmd = m.Update(documentDeletedMsg{id: 7, err: errors.New("boom")})
	assert.NotNil(t, cmd)
	assert.Equal(t, "删除失败", m.status)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := newTestList(t)
	m.documents = []entity.Document{{Id: 7, Content: "素材"}}

	cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	assert.Nil(t, cmd)
	assert.True(t, m.confirming)
	assert.Equal(t, int64(7), m.pendingDelete)

	// Anything but y aborts.
	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.False(t, m.confirming)

	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	cmd = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	assert.NotNil(t, cmd)

	msg := cmd()
	deleted, ok := msg.(documentDeletedMsg)
	require.True(t, ok)
	assert.Equal(t, int64(7), deleted.id)
}

func TestEnterOpensDocumentUnderCursor(t *testing.T) {
	m := newTestList(t)
	m.documents = []entity.Document{{Id: 3}, {Id: 9}}
	m.cursor = 1

	cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	opened, ok := cmd().(openDocumentMsg)
	require.True(t, ok)
	assert.Equal(t, int64(9), opened.id)
}

func TestTypeFilterCycleTriggersFetch(t *testing.T) {
	m := newTestList(t)
	before := m.gen

	cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	assert.NotNil(t, cmd)
	assert.Equal(t, before+1, m.gen)
	assert.Equal(t, constant.DocumentTypes[1], constant.DocumentTypes[m.typeIdx])
}

func TestThemePickerToggle(t *testing.T) {
	m := newTestList(t)

	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	require.True(t, m.showThemes)

	cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.Equal(t, constant.Themes[0], m.theme)
	assert.False(t, m.showThemes)

	// Picking the same theme again clears it.
	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	cmd = m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.Equal(t, "", m.theme)
}

func TestSearchTypingTriggersFetch(t *testing.T) {
	m := newTestList(t)
	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.True(t, m.search.Focused())
	before := m.gen

	cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'奋'}})
	assert.NotNil(t, cmd)
	assert.Equal(t, before+1, m.gen)
	assert.Equal(t, "奋", m.search.Value())
}

func TestUploadSuccessClosesModalAndRefreshes(t *testing.T) {
	m := newTestList(t)
	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}})
	require.True(t, m.showUpload)
	before := m.gen

	cmd := m.Update(uploadDoneMsg{resp: &dto.UploadResponse{Status: "success", Count: 1}})
	assert.NotNil(t, cmd)
	assert.False(t, m.showUpload)
	assert.Equal(t, before+1, m.gen)
}

func TestUploadFailureKeepsModalOpen(t *testing.T) {
	m := newTestList(t)
	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}})
	m.upload.text.SetValue("正文内容")
	m.upload.uploading = true

	m.Update(uploadDoneMsg{resp: &dto.UploadResponse{Status: "error", Message: "解析失败或内容为空"}})

	assert.True(t, m.showUpload)
	assert.False(t, m.upload.uploading)
	assert.Contains(t, m.upload.status, "解析失败")
	assert.Equal(t, "正文内容", m.upload.text.Value())
}
