package tui

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Search  key.Binding
	Type    key.Binding
	Theme   key.Binding
	Upload  key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newListKeyMap() listKeyMap {
	return listKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "上移")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "下移")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "打开")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "搜索")),
		Type:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "分类")),
		Theme:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "主题")),
		Upload:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "上传")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "删除")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "刷新")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "退出")),
	}
}

type detailKeyMap struct {
	Back     key.Binding
	Edit     key.Binding
	Save     key.Binding
	Copy     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Send     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

func newDetailKeyMap() detailKeyMap {
	return detailKeyMap{
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "返回列表")),
		Edit:     key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "编辑全文")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "保存修改")),
		Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "复制全文")),
		NextMode: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "切换模式")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "上个模式")),
		Send:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "发送")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "上翻")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "下翻")),
	}
}
