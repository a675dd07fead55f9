package app

import (
	"encoding/json"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ComicarrDev/comicarr-sub001/internal/comicarr"
	"github.com/ComicarrDev/comicarr-sub001/internal/comicvine"
	"github.com/ComicarrDev/comicarr-sub001/internal/config"
	"github.com/ComicarrDev/comicarr-sub001/internal/state"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/matchview"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/searchview"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/testutil"
)

type stubServer struct {
	items     []comicarr.Item
	libraries []comicarr.Library
	saveErr   error
	saved     [][2]int64
}

func (s *stubServer) ListItems() ([]comicarr.Item, error) { return s.items, nil }

func (s *stubServer) ListLibraries() ([]comicarr.Library, error) { return s.libraries, nil }

func (s *stubServer) Import(v, _ int64) (*comicarr.ImportResult, error) {
	return &comicarr.ImportResult{VolumeID: v}, nil
}

func (s *stubServer) SaveMatch(itemID, volumeID int64) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, [2]int64{itemID, volumeID})
	return nil
}

type stubCatalog struct{}

func (stubCatalog) SearchVolumes(_ string, _, _ int) (*comicvine.SearchPage, error) {
	return &comicvine.SearchPage{}, nil
}
func (stubCatalog) ResolveIssueCover(_ int64, _ string) (string, error) { return "", nil }

type memStore struct {
	settings *state.Settings
	saveErr  error
}

func (s *memStore) GetSettings() (*state.Settings, error) { return s.settings, nil }
func (s *memStore) SaveSettings(v state.Settings) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.settings = &v
	return nil
}

func testConfig() *config.Config {
	return &config.Config{UI: config.UIConfig{Theme: "dark"}}
}

func rawMatches(t *testing.T) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal([]map[string]any{
		{"name": "Saga", "start_year": 2012, "volume_id": 100, "best_match": true},
	})
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func testItems(t *testing.T) []comicarr.Item {
	return []comicarr.Item{
		{ID: 1, Path: "/comics/Saga 001.cbz", IssueNumber: "1", RawMatches: rawMatches(t)},
		{ID: 2, Path: "/comics/Paper Girls 003.cbz", IssueNumber: "3"},
	}
}

// send routes a message through Update and returns the typed model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_InitLoadsItems(t *testing.T) {
	server := &stubServer{items: testItems(t)}
	m := New(server, nil, nil, testConfig())

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected a load command from Init")
	}
	m, _ = send(t, m, cmd())

	out := testutil.StripANSI(m.View())
	if !testutil.ContainsLine(out, "Saga 001.cbz") {
		t.Error("expected item list in view")
	}
	if !testutil.ContainsLine(out, "2 unmatched") {
		t.Error("expected unmatched count in header")
	}
}

func TestApp_EnterOpensMatchReview(t *testing.T) {
	server := &stubServer{items: testItems(t)}
	m := New(server, nil, nil, testConfig())
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = send(t, m, m.Init()())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.popup == nil {
		t.Fatal("expected the match popup to open")
	}
	if _, ok := m.popup.(*matchview.Model); !ok {
		t.Fatalf("popup is %T, want matchview", m.popup)
	}
}

func TestApp_ConfirmSavesMatchAndReloads(t *testing.T) {
	server := &stubServer{items: testItems(t)}
	m := New(server, nil, nil, testConfig())
	m, _ = send(t, m, m.Init()())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := send(t, m, matchview.ActionMsg(matchview.Confirm{ItemID: 1, VolumeID: 100}))
	if m.popup != nil {
		t.Error("expected popup to close on confirm")
	}
	if cmd == nil {
		t.Fatal("expected a save-match command")
	}

	m, reload := send(t, m, cmd())
	if len(server.saved) != 1 || server.saved[0] != [2]int64{1, 100} {
		t.Errorf("saved matches = %v", server.saved)
	}
	if reload == nil {
		t.Error("expected an item reload after saving a match")
	}
	if m.statusMsg != "Match saved" {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestApp_SaveMatchErrorSurfaced(t *testing.T) {
	server := &stubServer{items: testItems(t), saveErr: errors.New("conflict")}
	m := New(server, nil, nil, testConfig())
	m, _ = send(t, m, m.Init()())

	m, _ = send(t, m, MatchSavedMsg{ItemID: 1, VolumeID: 100, Err: server.saveErr})
	if !testutil.ContainsLine(testutil.StripANSI(m.View()), "Failed to save match") {
		t.Errorf("error not surfaced, status %q", m.errorMsg)
	}
}

func TestApp_SearchRequiresCatalog(t *testing.T) {
	m := New(&stubServer{}, nil, nil, testConfig())
	m, _ = send(t, m, key("s"))
	if m.popup != nil {
		t.Error("expected no popup without a catalog client")
	}
	if m.errorMsg == "" {
		t.Error("expected an error message without a catalog client")
	}
}

func TestApp_SearchOpensWithCatalog(t *testing.T) {
	m := New(&stubServer{}, stubCatalog{}, nil, testConfig())
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, cmd := send(t, m, key("s"))
	if _, ok := m.popup.(*searchview.Model); !ok {
		t.Fatalf("popup is %T, want searchview", m.popup)
	}
	if cmd == nil {
		t.Error("expected init and library load commands")
	}
}

func TestApp_ToastSuppressedWhenDisabled(t *testing.T) {
	cfg := testConfig()
	disabled := false
	cfg.UI.Toasts = &disabled

	m := New(&stubServer{}, nil, nil, cfg)
	m, _ = send(t, m, searchview.ActionMsg(searchview.Imported{Folder: "Saga (2012)"}))
	if m.statusMsg != "" {
		t.Errorf("statusMsg = %q, want empty with toasts disabled", m.statusMsg)
	}
}

func TestApp_ImportedToast(t *testing.T) {
	m := New(&stubServer{}, nil, nil, testConfig())
	m, _ = send(t, m, searchview.ActionMsg(searchview.Imported{Folder: "Saga (2012)"}))
	if m.statusMsg != "Imported Saga (2012)" {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestApp_ThemeToggleSavesSettings(t *testing.T) {
	store := &memStore{}
	m := New(&stubServer{}, nil, store, testConfig())

	m, cmd := send(t, m, key("T"))
	if m.Settings().Theme != "light" {
		t.Errorf("theme = %q, want light", m.Settings().Theme)
	}
	if cmd == nil {
		t.Fatal("expected a save-settings command")
	}
	cmd()
	if store.settings == nil || store.settings.Theme != "light" {
		t.Errorf("persisted settings = %v", store.settings)
	}
}

func TestApp_SavedSettingsOverrideConfig(t *testing.T) {
	store := &memStore{settings: &state.Settings{Theme: "light", ToastsEnabled: false}}
	m := New(&stubServer{}, nil, store, testConfig())

	if got := m.Settings(); got.Theme != "light" || got.ToastsEnabled {
		t.Errorf("settings = %+v, want saved values", got)
	}
}

func TestApp_QuitKeys(t *testing.T) {
	m := New(&stubServer{}, nil, nil, testConfig())
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := send(t, m, k)
		if cmd == nil {
			t.Fatalf("expected quit command for %v", k)
		}
		if msg := cmd(); msg != tea.Quit() {
			t.Errorf("key %v produced %v, want quit", k, msg)
		}
	}
}
