package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"zhibi-tui/internal/api"
	"zhibi-tui/internal/entity"
	"zhibi-tui/internal/pkg/logger"
)

// detailModel is the document detail view: reading pane with inline
// edit/save on the left, the three-mode chat panel on the right. It is
// created fresh on navigation, so chat histories and the edit buffer never
// outlive the visit.
type detailModel struct {
	client *api.Client
	log    logger.ILogger
	keys   detailKeyMap

	id       int64
	doc      *entity.Document
	loading  bool
	notFound bool

	editing bool
	saving  bool
	editor  textarea.Model
	reader  viewport.Model

	chat   chatModel
	status string

	width  int
	height int
}

func newDetailModel(client *api.Client, log logger.ILogger, id int64, width, height int) detailModel {
	editor := textarea.New()
	editor.Placeholder = "在此编辑素材内容..."
	editor.CharLimit = 0
	editor.ShowLineNumbers = false

	m := detailModel{
		client:  client,
		log:     log,
		keys:    newDetailKeyMap(),
		id:      id,
		loading: true,
		editor:  editor,
		reader:  viewport.New(40, 10),
		chat:    newChatModel(client, log, id),
	}
	m.setSize(width, height)
	return m
}

// start issues the single GET for this view's identifier.
func (m *detailModel) start() tea.Cmd {
	m.loading = true
	id := m.id
	client := m.client
	return tea.Batch(textinput.Blink, func() tea.Msg {
		doc, err := client.GetDocument(context.Background(), id)
		return documentLoadedMsg{id: id, document: doc, err: err}
	})
}

func (m *detailModel) setSize(width, height int) {
	m.width = width
	m.height = height

	paneWidth := width/2 - 2
	if paneWidth < 20 {
		paneWidth = 20
	}
	paneHeight := height - 4
	if paneHeight < 4 {
		paneHeight = 4
	}

	m.reader.Width = paneWidth
	m.reader.Height = paneHeight
	m.editor.SetWidth(paneWidth)
	m.editor.SetHeight(paneHeight)
	m.chat.setSize(paneWidth, paneHeight-3)
	m.refreshReader()
}

// save PUTs the full document with the edit buffer substituted for content.
// The saving flag keeps the binding inert while one save is outstanding.
func (m *detailModel) save() tea.Cmd {
	if m.saving || m.doc == nil {
		return nil
	}
	m.saving = true

	updated := *m.doc
	updated.Content = m.editor.Value()
	client := m.client
	return func() tea.Msg {
		err := client.UpdateDocument(context.Background(), &updated)
		return documentSavedMsg{id: updated.Id, content: updated.Content, err: err}
	}
}

func (m *detailModel) enterEdit() {
	if m.doc == nil || m.editing {
		return
	}
	m.editing = true
	m.status = ""
	m.editor.SetValue(m.doc.Content)
	m.editor.Focus()
	m.chat.input.Blur()
}

// cancelEdit discards the buffer and reverts to the last loaded or saved
// content.
func (m *detailModel) cancelEdit() {
	m.editing = false
	m.editor.SetValue(m.doc.Content)
	m.editor.Blur()
	m.chat.input.Focus()
}

func (m *detailModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case documentLoadedMsg:
		if msg.id != m.id {
			return nil
		}
		m.loading = false
		if msg.err != nil {
			// Already logged by the client; the view just shows the
			// terminal empty state.
			m.notFound = true
			return nil
		}
		m.doc = msg.document
		m.editor.SetValue(m.doc.Content)
		m.refreshReader()
		return nil

	case documentSavedMsg:
		if msg.id != m.id {
			return nil
		}
		m.saving = false
		if msg.err != nil {
			m.log.Error("detail", "save document failed", map[string]interface{}{
				"id":    m.id,
				"error": msg.err.Error(),
			})
			// Stay in edit mode with the buffer intact.
			m.status = "保存失败，请重试"
			return nil
		}
		m.doc.Content = msg.content
		m.editing = false
		m.editor.Blur()
		m.chat.input.Focus()
		m.status = ""
		m.refreshReader()
		return nil

	case chatResponseMsg:
		m.chat.receive(msg)
		return nil

	case spinner.TickMsg:
		return m.chat.updateSpinner(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *detailModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.editing {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.cancelEdit()
			return nil
		case key.Matches(msg, m.keys.Save):
			return m.save()
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return func() tea.Msg { return backToListMsg{} }
	case key.Matches(msg, m.keys.Edit):
		m.enterEdit()
		return nil
	case key.Matches(msg, m.keys.Copy):
		if m.doc != nil {
			if err := clipboard.WriteAll(m.doc.Content); err == nil {
				m.status = "已复制全文"
			}
		}
		return nil
	case key.Matches(msg, m.keys.NextMode):
		m.chat.nextMode(1)
		return nil
	case key.Matches(msg, m.keys.PrevMode):
		m.chat.nextMode(-1)
		return nil
	case key.Matches(msg, m.keys.Send):
		if cmd := m.chat.sendCurrent(); cmd != nil {
			return tea.Batch(cmd, m.chat.spin.Tick)
		}
		return nil
	case key.Matches(msg, m.keys.PageUp):
		m.chat.vp.HalfViewUp()
		return nil
	case key.Matches(msg, m.keys.PageDown):
		m.chat.vp.HalfViewDown()
		return nil
	case msg.Type == tea.KeyUp:
		if len(m.chat.visiblePresets()) > 0 {
			m.chat.movePresetCursor(-1)
		} else {
			m.chat.vp.LineUp(1)
		}
		return nil
	case msg.Type == tea.KeyDown:
		if len(m.chat.visiblePresets()) > 0 {
			m.chat.movePresetCursor(1)
		} else {
			m.chat.vp.LineDown(1)
		}
		return nil
	}
	return m.chat.updateInput(msg)
}

// refreshReader rebuilds the reading pane: type badge, body, themes, tags
// and date.
func (m *detailModel) refreshReader() {
	if m.doc == nil {
		return
	}
	wrap := m.reader.Width - 2
	if wrap < 10 {
		wrap = 10
	}

	var b strings.Builder
	b.WriteString(typeBadgeStyle.Render(m.doc.DisplayType()) + "\n\n")
	b.WriteString(wordwrap.String(m.doc.Content, wrap) + "\n\n")

	var chips []string
	for _, theme := range m.doc.Themes {
		chips = append(chips, themeChipStyle.Render("#"+theme))
	}
	for _, tag := range m.doc.Tags {
		chips = append(chips, tagChipStyle.Render("#"+tag))
	}
	if len(chips) > 0 {
		b.WriteString(wordwrap.String(strings.Join(chips, " "), wrap) + "\n")
	}
	b.WriteString(dateStyle.Render(m.doc.Date))

	m.reader.SetContent(b.String())
}

func (m *detailModel) View() string {
	if m.loading {
		return emptyStateStyle.Width(m.width).Render("\n正在加载素材...")
	}
	if m.notFound {
		return emptyStateStyle.Width(m.width).Render("\n文章不存在")
	}

	var left string
	if m.editing {
		save := "ctrl+s 保存修改"
		if m.saving {
			save = "保存中..."
		}
		left = m.editor.View() + "\n" + hintStyle.Render(save+" · esc 取消")
	} else {
		left = m.reader.View() + "\n" + hintStyle.Render("ctrl+e 编辑全文 · ctrl+y 复制 · esc 返回列表")
	}

	right := m.chat.View()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(m.width/2).Render(left),
		lipgloss.NewStyle().Width(m.width-m.width/2).Render(right),
	)

	footer := hintStyle.Render("tab 切换模式 · enter 发送")
	if m.status != "" {
		footer = alertStyle.Render(m.status)
	}
	return body + "\n" + footer
}
