// Package app contains the root application model wiring the item list,
// the search and match popups, and persistent UI settings together.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ComicarrDev/comicarr-sub001/internal/comicarr"
	"github.com/ComicarrDev/comicarr-sub001/internal/config"
	"github.com/ComicarrDev/comicarr-sub001/internal/match"
	"github.com/ComicarrDev/comicarr-sub001/internal/state"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/cursor"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/matchview"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/popup"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/searchview"
)

// Server is the Comicarr server surface the app depends on.
// *comicarr.Client satisfies it.
type Server interface {
	ListItems() ([]comicarr.Item, error)
	ListLibraries() ([]comicarr.Library, error)
	Import(volumeID, libraryID int64) (*comicarr.ImportResult, error)
	SaveMatch(itemID, volumeID int64) error
}

// Catalog is the remote comic catalog surface the app depends on.
// *comicvine.Client satisfies it.
type Catalog interface {
	searchview.Catalog
	matchview.CoverResolver
}

// SettingsStore persists UI settings across runs. *state.Manager satisfies it.
type SettingsStore interface {
	GetSettings() (*state.Settings, error)
	SaveSettings(state.Settings) error
}

// Model is the root application model.
type Model struct {
	server   Server
	catalog  Catalog // nil when no catalog API key is configured
	settings SettingsStore
	uiState  state.Settings

	items  []comicarr.Item
	cursor cursor.Cursor
	loaded bool

	popup popup.Popup

	statusMsg string
	errorMsg  string

	width  int
	height int
}

// New creates the root model. catalog may be nil when the catalog API key
// is not configured; search and remote cover lookups are then disabled.
func New(server Server, catalog Catalog, settings SettingsStore, cfg *config.Config) Model {
	uiState := state.Settings{
		Theme:         cfg.UI.Theme,
		ToastsEnabled: cfg.ToastsEnabled(),
	}
	if settings != nil {
		if saved, err := settings.GetSettings(); err == nil && saved != nil {
			uiState = *saved
		}
	}

	return Model{
		server:   server,
		catalog:  catalog,
		settings: settings,
		uiState:  uiState,
		cursor:   cursor.New(2),
	}
}

// Settings returns the active UI settings.
func (m Model) Settings() state.Settings {
	return m.uiState
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadItemsCmd()
}

// selectedItem returns the item under the cursor, or nil.
func (m Model) selectedItem() *comicarr.Item {
	if len(m.items) == 0 || m.cursor.Pos() >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor.Pos()]
}

// openMatchPopup opens the candidate review popup for the selected item.
func (m Model) openMatchPopup(item comicarr.Item) (Model, tea.Cmd) {
	candidates, err := match.ParseCandidates(item.RawMatches)
	if err != nil {
		// A corrupt cached sample behaves like an empty one
		candidates = nil
	}

	var resolver matchview.CoverResolver
	if m.catalog != nil {
		resolver = m.catalog
	}

	p := matchview.New(item, candidates, resolver)
	p.SetSize(m.popupWidth(), m.popupHeight())
	m.popup = p
	return m, p.Init()
}

// openSearchPopup opens the catalog search popup.
func (m Model) openSearchPopup() (Model, tea.Cmd) {
	if m.catalog == nil {
		m.errorMsg = "Catalog search requires a ComicVine API key"
		return m, nil
	}

	p := searchview.New(m.catalog, m.server)
	p.SetSize(m.popupWidth(), m.popupHeight())
	m.popup = p
	return m, tea.Batch(p.Init(), m.loadLibrariesCmd())
}

func (m Model) popupWidth() int {
	return m.width * 8 / 10
}

func (m Model) popupHeight() int {
	return m.height * 7 / 10
}
