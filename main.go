package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ComicarrDev/comicarr-sub001/internal/app"
	"github.com/ComicarrDev/comicarr-sub001/internal/comicarr"
	"github.com/ComicarrDev/comicarr-sub001/internal/comicvine"
	"github.com/ComicarrDev/comicarr-sub001/internal/config"
	"github.com/ComicarrDev/comicarr-sub001/internal/state"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/styles"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if !cfg.HasServerConfig() {
		fmt.Fprintln(os.Stderr, "no server configured: set server.url and server.apikey in config.toml")
		os.Exit(1)
	}

	server := comicarr.NewClient(cfg.Server.URL, cfg.Server.APIKey)

	var catalog app.Catalog
	if cfg.HasComicVineConfig() {
		catalog = comicvine.NewClient(cfg.ComicVine.APIKey)
	}

	// UI settings survive in a local database; when it cannot be opened the
	// app still runs with config defaults.
	var store app.SettingsStore
	stateMgr, err := state.Open()
	if err == nil {
		defer stateMgr.Close()
		store = stateMgr
	} else {
		fmt.Fprintf(os.Stderr, "warning: state database unavailable: %v\n", err)
	}

	m := app.New(server, catalog, store, cfg)
	styles.Select(m.Settings().Theme)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}
}
