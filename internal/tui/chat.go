package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"zhibi-tui/internal/api"
	"zhibi-tui/internal/constant"
	"zhibi-tui/internal/entity"
	"zhibi-tui/internal/pkg/logger"
)

// chatModel holds the per-document chat panel: one append-only history per
// mode, a shared draft input, and one shared loading flag. The flag is a
// global admission gate: while any mode's request is outstanding no new send
// is accepted, in any mode. Mode switches never touch histories or the
// in-flight request.
type chatModel struct {
	client *api.Client
	log    logger.ILogger
	docID  int64

	history entity.ChatHistory
	mode    entity.Mode
	input   textinput.Model
	loading bool

	spin         spinner.Model
	vp           viewport.Model
	renderer     *glamour.TermRenderer
	presetCursor int
	width        int
}

func newChatModel(client *api.Client, log logger.ILogger, docID int64) chatModel {
	input := textinput.New()
	input.CharLimit = 2000
	input.Prompt = "> "
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := chatModel{
		client: client,
		log:    log,
		docID:  docID,
		mode:   entity.ModeGeneral,
		input:  input,
		spin:   spin,
		vp:     viewport.New(40, 10),
	}
	m.input.Placeholder = m.placeholder()
	return m
}

func (m *chatModel) placeholder() string {
	return fmt.Sprintf("在【%s】模式下提问...", m.mode.Label())
}

func (m *chatModel) setSize(width, height int) {
	m.width = width
	m.vp.Width = width
	if height < 1 {
		height = 1
	}
	m.vp.Height = height
	m.input.Width = width - 4

	wrap := width - 2
	if wrap < 10 {
		wrap = 10
	}
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(wrap),
	); err == nil {
		m.renderer = r
	}
	m.refresh()
}

// switchMode changes which history is displayed and appended to. It has no
// effect on an outstanding request: a late reply still lands in the history
// of the mode that was active when it was sent.
func (m *chatModel) switchMode(mode entity.Mode) {
	if mode == m.mode {
		return
	}
	m.mode = mode
	m.presetCursor = 0
	m.input.Placeholder = m.placeholder()
	m.refresh()
}

func (m *chatModel) nextMode(step int) {
	modes := entity.Modes()
	for i, mode := range modes {
		if mode == m.mode {
			m.switchMode(modes[(i+step+len(modes))%len(modes)])
			return
		}
	}
}

// send starts one chat round: optimistic user append, cleared draft, request
// in flight. Whitespace-only input and sends while a request is outstanding
// are no-ops. The originating mode travels inside the returned command, so
// the completion applies to it and not to whichever mode is on screen when
// the reply arrives.
func (m *chatModel) send(text string) tea.Cmd {
	if strings.TrimSpace(text) == "" || m.loading {
		return nil
	}

	m.history.Append(m.mode, entity.Message{Role: entity.RoleUser, Content: text})
	m.input.Reset()
	m.loading = true
	m.refresh()

	mode := m.mode
	docID := m.docID
	client := m.client
	return func() tea.Msg {
		response, err := client.Chat(context.Background(), docID, text, mode)
		return chatResponseMsg{mode: mode, response: response, err: err}
	}
}

// sendCurrent sends the draft, or the highlighted preset question when the
// draft is empty and the active mode is still on its welcome screen.
func (m *chatModel) sendCurrent() tea.Cmd {
	if text := m.input.Value(); strings.TrimSpace(text) != "" {
		return m.send(text)
	}
	if presets := m.visiblePresets(); len(presets) > 0 {
		return m.send(presets[m.presetCursor])
	}
	return nil
}

// receive applies one completed chat round. A network failure is surfaced as
// a fixed assistant message in the same target history; the loading flag is
// cleared on every path.
func (m *chatModel) receive(msg chatResponseMsg) {
	if msg.err != nil {
		m.log.Error("chat", "chat request failed", map[string]interface{}{
			"doc_id": m.docID,
			"mode":   string(msg.mode),
			"error":  msg.err.Error(),
		})
		m.history.Append(msg.mode, entity.Message{
			Role:    entity.RoleAssistant,
			Content: constant.ChatNetworkErrorReply,
		})
	} else {
		m.history.Append(msg.mode, entity.Message{
			Role:    entity.RoleAssistant,
			Content: msg.response,
		})
	}
	m.loading = false
	m.refresh()
}

func (m *chatModel) visiblePresets() []string {
	if m.history.Len(m.mode) > 0 {
		return nil
	}
	return constant.PresetQuestions[m.mode]
}

func (m *chatModel) movePresetCursor(step int) {
	presets := m.visiblePresets()
	if len(presets) == 0 {
		return
	}
	m.presetCursor = (m.presetCursor + step + len(presets)) % len(presets)
	m.refresh()
}

func (m *chatModel) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}
	out, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}

// refresh rebuilds the transcript and pins the viewport to the latest entry.
// Called whenever history, active mode, or the waiting state changes.
func (m *chatModel) refresh() {
	wrap := m.width - 4
	if wrap < 10 {
		wrap = 10
	}

	var b strings.Builder
	messages := m.history.Messages(m.mode)
	if len(messages) == 0 {
		b.WriteString(assistantLabelStyle.Render("AI 助教") + "\n")
		b.WriteString(constant.ChatWelcomeTitle + "\n")
		b.WriteString(hintStyle.Render("当前模式："+m.mode.Label()) + "\n\n")
		for i, preset := range m.visiblePresets() {
			style := presetStyle
			prefix := "  "
			if i == m.presetCursor {
				style = presetSelectedStyle
				prefix = "> "
			}
			b.WriteString(style.Render(prefix+preset) + "\n")
		}
	}
	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		if msg.Role == entity.RoleUser {
			b.WriteString(userLabelStyle.Render("我") + "\n")
			b.WriteString(userBubbleStyle.Render(wordwrap.String(msg.Content, wrap)) + "\n")
		} else {
			b.WriteString(assistantLabelStyle.Render("AI 助教") + "\n")
			b.WriteString(m.renderMarkdown(msg.Content) + "\n")
		}
	}
	if m.loading {
		b.WriteString("\n" + m.spin.View() + hintStyle.Render("AI 正在思考..."))
	}

	m.vp.SetContent(b.String())
	m.vp.GotoBottom()
}

func (m *chatModel) updateSpinner(msg spinner.TickMsg) tea.Cmd {
	if !m.loading {
		return nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	m.refresh()
	return cmd
}

func (m *chatModel) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *chatModel) tabsView() string {
	var tabs []string
	for _, mode := range entity.Modes() {
		style := tabIdleStyle
		if mode == m.mode {
			style = tabActiveStyle
		}
		tabs = append(tabs, style.Render(mode.Label()))
	}
	return strings.Join(tabs, " ")
}

func (m *chatModel) View() string {
	return m.tabsView() + "\n" + m.vp.View() + "\n" + m.input.View()
}
