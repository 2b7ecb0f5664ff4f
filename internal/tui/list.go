package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"zhibi-tui/internal/api"
	"zhibi-tui/internal/constant"
	"zhibi-tui/internal/entity"
	"zhibi-tui/internal/pkg/logger"
)

// listModel is the gallery: server-filtered document cards plus the type,
// theme and search controls. Every filter change issues a fresh fetch; the
// collection is never re-filtered client-side.
type listModel struct {
	client *api.Client
	log    logger.ILogger
	keys   listKeyMap

	search      textinput.Model
	documents   []entity.Document
	cursor      int
	typeIdx     int
	theme       string
	themeCursor int
	showThemes  bool

	loading bool
	// gen tags each fetch; a response carrying a stale generation is
	// discarded, so out-of-order completions can never clobber the result
	// of the latest query.
	gen int

	confirming    bool
	pendingDelete int64

	showUpload bool
	upload     uploadModel

	spin   spinner.Model
	status string

	width  int
	height int
}

func newListModel(client *api.Client, log logger.ILogger) listModel {
	search := textinput.New()
	search.Placeholder = "搜索素材内容、标签..."
	search.CharLimit = 200
	search.Prompt = "🔍 "

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return listModel{
		client: client,
		log:    log,
		keys:   newListKeyMap(),
		search: search,
		upload: newUploadModel(client, log),
		spin:   spin,
	}
}

func (m *listModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = width/2 - 8
	m.upload.setSize(width * 2 / 3)
}

// fetch snapshots the current filters, bumps the generation and issues the
// request. The snapshot rides inside the command: a later filter change
// starts a new independent fetch instead of mutating this one.
func (m *listModel) fetch() tea.Cmd {
	m.gen++
	m.loading = true

	gen := m.gen
	filter := api.ListFilter{
		Query: m.search.Value(),
		Type:  constant.DocumentTypes[m.typeIdx],
		Theme: m.theme,
	}
	client := m.client
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		docs, err := client.ListDocuments(context.Background(), filter)
		return documentsLoadedMsg{gen: gen, documents: docs, err: err}
	})
}

func (m *listModel) deleteCmd(id int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.DeleteDocument(context.Background(), id)
		return documentDeletedMsg{id: id, err: err}
	}
}

func (m *listModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case documentsLoadedMsg:
		if msg.gen != m.gen {
			// Response to a superseded query; the latest fetch is still in
			// flight and will bring the current state.
			return nil
		}
		m.loading = false
		if msg.err != nil {
			m.log.Error("list", "fetch documents failed", map[string]interface{}{
				"error": msg.err.Error(),
			})
			m.status = "加载失败，请检查后端"
			return nil
		}
		m.status = ""
		m.documents = msg.documents
		if m.cursor >= len(m.documents) {
			m.cursor = len(m.documents) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return nil

	case documentDeletedMsg:
		if msg.err != nil {
			m.log.Error("list", "delete document failed", map[string]interface{}{
				"id":    msg.id,
				"error": msg.err.Error(),
			})
			m.status = "删除失败"
		}
		// The list is server-derived, so re-fetch unconditionally.
		return m.fetch()

	case uploadDoneMsg:
		cmd := m.upload.Update(msg)
		if m.upload.done {
			m.showUpload = false
			m.upload = newUploadModel(m.client, m.log)
			m.upload.setSize(m.width * 2 / 3)
			return tea.Batch(cmd, m.fetch())
		}
		return cmd

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.showUpload {
			cmds = append(cmds, m.upload.Update(msg))
		}
		return tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *listModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showUpload {
		if msg.Type == tea.KeyEsc && !m.upload.uploading {
			m.showUpload = false
			m.upload = newUploadModel(m.client, m.log)
			m.upload.setSize(m.width * 2 / 3)
			return nil
		}
		return m.upload.Update(msg)
	}

	if m.confirming {
		switch msg.String() {
		case "y", "Y":
			m.confirming = false
			return m.deleteCmd(m.pendingDelete)
		default:
			m.confirming = false
		}
		return nil
	}

	if m.showThemes {
		switch msg.String() {
		case "up", "k":
			if m.themeCursor > 0 {
				m.themeCursor--
			}
		case "down", "j":
			if m.themeCursor < len(constant.Themes)-1 {
				m.themeCursor++
			}
		case "enter":
			// Picking the active theme again clears the filter.
			picked := constant.Themes[m.themeCursor]
			if m.theme == picked {
				m.theme = ""
			} else {
				m.theme = picked
			}
			m.showThemes = false
			return m.fetch()
		case "esc", "f":
			m.showThemes = false
		}
		return nil
	}

	if m.search.Focused() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.search.Blur()
			return nil
		}
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			return tea.Batch(cmd, m.fetch())
		}
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Search):
		return m.search.Focus()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.documents)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(m.documents) {
			id := m.documents[m.cursor].Id
			return func() tea.Msg { return openDocumentMsg{id: id} }
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.documents) {
			m.confirming = true
			m.pendingDelete = m.documents[m.cursor].Id
		}
	case key.Matches(msg, m.keys.Upload):
		m.showUpload = true
	case key.Matches(msg, m.keys.Type):
		m.typeIdx = (m.typeIdx + 1) % len(constant.DocumentTypes)
		return m.fetch()
	case key.Matches(msg, m.keys.Theme):
		m.showThemes = true
	case key.Matches(msg, m.keys.Refresh):
		return m.fetch()
	}
	return nil
}

func (m *listModel) headerView() string {
	indicator := statusReadyStyle.Render("● 系统就绪")
	if m.loading {
		indicator = statusBusyStyle.Render(m.spin.View() + "同步中...")
	}
	left := logoStyle.Render("智笔素材") + "  " + m.search.View()
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(indicator) - 2
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + indicator
}

func (m *listModel) filterView() string {
	var types []string
	for i, t := range constant.DocumentTypes {
		style := filterIdleStyle
		if i == m.typeIdx {
			style = filterActiveStyle
		}
		types = append(types, style.Render(t))
	}
	row := sidebarTitleStyle.Render("分类") + " " + strings.Join(types, "")
	if m.theme != "" {
		row += "  " + sidebarTitleStyle.Render("主题") + " " + filterActiveStyle.Render("#"+m.theme)
	}
	return row
}

func (m *listModel) cardView(doc entity.Document, selected bool) string {
	wrap := m.width - 8
	if wrap < 20 {
		wrap = 20
	}

	preview := doc.Content
	if preview == "" {
		preview = "（暂无内容预览，请点击查看详情）"
	}
	lines := strings.Split(wordwrap.String(preview, wrap), "\n")
	if len(lines) > 3 {
		lines = append(lines[:3], "…")
	}

	var chips []string
	for i, theme := range doc.Themes {
		if i >= 2 {
			break
		}
		chips = append(chips, themeChipStyle.Render("#"+theme))
	}
	if len(chips) < 2 {
		for i, tag := range doc.Tags {
			if i >= 2 {
				break
			}
			chips = append(chips, tagChipStyle.Render("#"+tag))
		}
	}

	head := typeBadgeStyle.Render(doc.DisplayType()) + "  " + dateStyle.Render(doc.Date)
	body := head + "\n" + strings.Join(lines, "\n")
	if len(chips) > 0 {
		body += "\n" + strings.Join(chips, " ")
	}

	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	return style.Width(m.width - 4).Render(body)
}

func (m *listModel) themePickerView() string {
	var b strings.Builder
	b.WriteString(sidebarTitleStyle.Render("核心主题") + "\n\n")
	for i, theme := range constant.Themes {
		style := presetStyle
		prefix := "  "
		if i == m.themeCursor {
			style = presetSelectedStyle
			prefix = "> "
		}
		label := "#" + theme
		if theme == m.theme {
			label += " ✓"
		}
		b.WriteString(style.Render(prefix+label) + "\n")
	}
	b.WriteString("\n" + hintStyle.Render("enter 选择/取消 · esc 关闭"))
	return modalStyle.Render(b.String())
}

func (m *listModel) View() string {
	if m.showUpload {
		return m.upload.View()
	}
	if m.showThemes {
		return m.themePickerView()
	}

	var b strings.Builder
	b.WriteString(m.headerView() + "\n")
	b.WriteString(m.filterView() + "\n\n")

	if len(m.documents) == 0 && !m.loading {
		b.WriteString(emptyStateStyle.Width(m.width).Render("暂无相关素材\n尝试上传新文件或调整筛选条件"))
	} else {
		// Show a window of cards around the cursor.
		perCard := 7
		visible := m.height / perCard
		if visible < 1 {
			visible = 1
		}
		start := 0
		if m.cursor >= visible {
			start = m.cursor - visible + 1
		}
		for i := start; i < len(m.documents) && i < start+visible; i++ {
			b.WriteString(m.cardView(m.documents[i], i == m.cursor) + "\n")
		}
	}

	if m.confirming {
		b.WriteString("\n" + alertStyle.Render("确定要删除这条素材吗？(y/n)"))
	} else if m.status != "" {
		b.WriteString("\n" + alertStyle.Render(m.status))
	} else {
		b.WriteString("\n" + hintStyle.Render("enter 打开 · / 搜索 · t 分类 · f 主题 · u 上传 · d 删除 · q 退出"))
	}
	return b.String()
}
