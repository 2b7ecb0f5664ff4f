package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"zhibi-tui/internal/api"
	"zhibi-tui/internal/config"
	"zhibi-tui/internal/pkg/logger"
	"zhibi-tui/internal/tui"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Logger (file only; the TUI owns the terminal)
	zapLogger := logger.NewZapLogger(cfg.App.LogFilePath)
	defer zapLogger.Sync()

	// 3. Initialize API Client
	client := api.NewClient(cfg.Api.BaseURL, zapLogger)

	zapLogger.Info("main", "starting zhibi-tui", map[string]interface{}{
		"api_base_url": cfg.Api.BaseURL,
		"environment":  cfg.App.Environment,
	})

	// 4. Run the Program
	app := tui.NewApp(cfg, client, zapLogger)
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		color.Red("启动失败: %v", err)
		os.Exit(1)
	}
}
