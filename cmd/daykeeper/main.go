package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"daykeeper/internal/assistant"
	"daykeeper/internal/config"
	"daykeeper/internal/database"
	"daykeeper/internal/holiday"
	"daykeeper/internal/tui"
	"daykeeper/internal/util"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "daykeeper needs an interactive terminal")
		os.Exit(1)
	}

	dataRoot := util.DataDir(config.AppName)
	_ = os.MkdirAll(dataRoot, 0o755)

	cfg, err := config.Load(filepath.Join(dataRoot, config.ConfigFileName))
	if err != nil {
		util.LogError("load config", err)
		cfg = config.DefaultConfig()
	}
	if cfg.DataDir != "" {
		dataRoot = cfg.DataDir
		_ = os.MkdirAll(dataRoot, 0o755)
	}

	db, err := database.Open(filepath.Join(dataRoot, config.DBFileName))
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	snapshot, err := db.Load()
	if err != nil {
		fmt.Printf("Error loading state: %v\n", err)
		os.Exit(1)
	}

	tui.SetTheme(cfg.Theme)

	holidays := holiday.NewBuilder(holiday.NewHTTPFetcher(cfg.HolidayBaseURL, cfg.HolidayCountry))

	var client assistant.Client
	if key := cfg.APIKey(); key != "" {
		client = assistant.NewGeminiClient("", cfg.AssistantModel, key)
	}

	model := tui.NewModel(db, snapshot, holidays, client)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
