// Package tui is the terminal front-end for the essay-material library. It
// is a pure view over the remote API: list and detail are the only two
// top-level views, and everything a view holds dies with it.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"zhibi-tui/internal/api"
	"zhibi-tui/internal/config"
	"zhibi-tui/internal/pkg/logger"
)

type view int

const (
	listView view = iota
	detailView
)

type App struct {
	cfg    *config.Config
	client *api.Client
	log    logger.ILogger

	active view
	list   listModel
	detail detailModel

	width  int
	height int
}

func NewApp(cfg *config.Config, client *api.Client, log logger.ILogger) *App {
	return &App{
		cfg:    cfg,
		client: client,
		log:    log,
		active: listView,
		list:   newListModel(client, log),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.list.fetch())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.setSize(msg.Width, msg.Height-2)
		if a.active == detailView {
			a.detail.setSize(msg.Width, msg.Height-2)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.active == detailView {
			return a, a.detail.Update(msg)
		}
		return a, a.list.Update(msg)

	case openDocumentMsg:
		// A fresh detail model per visit: chat histories and the edit
		// buffer never survive navigation.
		a.detail = newDetailModel(a.client, a.log, msg.id, a.width, a.height-2)
		a.active = detailView
		return a, a.detail.start()

	case backToListMsg:
		a.active = listView
		a.detail = detailModel{}
		return a, a.list.fetch()
	}

	// Completion messages carry their own context; deliver them to both
	// views so a result started in one view still lands while the other is
	// on screen. Message types are disjoint, so there is no cross-talk.
	var cmds []tea.Cmd
	cmds = append(cmds, a.list.Update(msg))
	if a.active == detailView {
		cmds = append(cmds, a.detail.Update(msg))
	}
	return a, tea.Batch(cmds...)
}

func (a *App) View() string {
	if a.active == detailView {
		return a.detail.View()
	}
	return a.list.View()
}
