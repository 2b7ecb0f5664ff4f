package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"zhibi-tui/internal/api"
	"zhibi-tui/internal/pkg/logger"
)

// uploadModel is the import modal: either a file path (sent multipart to the
// OCR pipeline) or pasted text / a link (sent as JSON). The two shapes are
// mutually exclusive; whichever input the submission came from decides the
// endpoint.
type uploadModel struct {
	client *api.Client
	log    logger.ILogger

	path      textinput.Model
	text      textarea.Model
	focusText bool

	uploading bool
	done      bool
	status    string

	spin  spinner.Model
	width int
}

func newUploadModel(client *api.Client, log logger.ILogger) uploadModel {
	path := textinput.New()
	path.Placeholder = "文件路径 (PDF / DOCX / 图片 / TXT)"
	path.CharLimit = 512
	path.Focus()

	text := textarea.New()
	text.Placeholder = "在此直接粘贴文本内容，或粘贴公众号/小红书链接..."
	text.CharLimit = 0
	text.ShowLineNumbers = false
	text.SetHeight(6)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return uploadModel{
		client: client,
		log:    log,
		path:   path,
		text:   text,
		spin:   spin,
	}
}

func (m *uploadModel) setSize(width int) {
	m.width = width
	inner := width - 8
	if inner < 20 {
		inner = 20
	}
	m.path.Width = inner
	m.text.SetWidth(inner)
}

func (m *uploadModel) toggleFocus() {
	m.focusText = !m.focusText
	if m.focusText {
		m.path.Blur()
		m.text.Focus()
	} else {
		m.text.Blur()
		m.path.Focus()
	}
}

func (m *uploadModel) submitFile() tea.Cmd {
	path := strings.TrimSpace(m.path.Value())
	if path == "" || m.uploading {
		return nil
	}
	m.uploading = true
	m.status = ""
	client := m.client
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return uploadDoneMsg{err: fmt.Errorf("open file: %w", err)}
		}
		defer f.Close()
		resp, err := client.UploadFile(context.Background(), filepath.Base(path), f)
		return uploadDoneMsg{resp: resp, err: err}
	})
}

func (m *uploadModel) submitText() tea.Cmd {
	text := m.text.Value()
	if strings.TrimSpace(text) == "" || m.uploading {
		return nil
	}
	m.uploading = true
	m.status = ""
	kind := api.DetectTextKind(text)
	client := m.client
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		resp, err := client.UploadText(context.Background(), text, kind)
		return uploadDoneMsg{resp: resp, err: err}
	})
}

func (m *uploadModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case uploadDoneMsg:
		m.uploading = false
		if msg.err != nil {
			m.log.Error("upload", "upload failed", map[string]interface{}{
				"error": msg.err.Error(),
			})
			m.status = "上传失败：" + msg.err.Error()
			return nil
		}
		if msg.resp != nil && msg.resp.Status == "error" {
			m.status = "上传失败：" + msg.resp.Message
			return nil
		}
		// Success: the parent closes the modal and refreshes the list.
		m.done = true
		return nil

	case spinner.TickMsg:
		if !m.uploading {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyTab:
			m.toggleFocus()
			return nil
		case msg.Type == tea.KeyEnter && !m.focusText:
			return m.submitFile()
		case msg.Type == tea.KeyCtrlS && m.focusText:
			return m.submitText()
		}
		var cmd tea.Cmd
		if m.focusText {
			m.text, cmd = m.text.Update(msg)
		} else {
			m.path, cmd = m.path.Update(msg)
		}
		return cmd
	}
	return nil
}

func (m *uploadModel) View() string {
	var b strings.Builder
	b.WriteString(logoStyle.Render("添加作文素材") + "\n\n")
	b.WriteString(m.path.View() + "\n")
	b.WriteString(hintStyle.Render("支持 PDF, DOCX, 图片 (自动 OCR), TXT · enter 上传") + "\n\n")
	b.WriteString(hintStyle.Render("—— 或 ——") + "\n\n")
	b.WriteString(m.text.View() + "\n")

	action := "tab 切换输入 · ctrl+s 开始识别与导入 · esc 关闭"
	if m.uploading {
		action = m.spin.View() + "AI 正在深度解析..."
	}
	b.WriteString(hintStyle.Render(action))
	if m.status != "" {
		b.WriteString("\n" + alertStyle.Render(m.status))
	}

	return modalStyle.Width(m.width - 4).Render(b.String())
}
