package state

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// setupTestManager creates a Manager backed by an in-memory SQLite database.
func setupTestManager(t *testing.T) *Manager {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := initSchema(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}

	return &Manager{db: db}
}

func TestGetSettings_Empty(t *testing.T) {
	m := setupTestManager(t)

	settings, err := m.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings != nil {
		t.Errorf("expected nil settings on first run, got %+v", settings)
	}
}

func TestSaveAndGetSettings(t *testing.T) {
	m := setupTestManager(t)

	want := Settings{Theme: "light", ToastsEnabled: false}
	if err := m.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := m.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetSettings returned nil after save")
	}
	if *got != want {
		t.Errorf("settings = %+v, want %+v", *got, want)
	}
}

func TestSaveSettings_Overwrites(t *testing.T) {
	m := setupTestManager(t)

	if err := m.SaveSettings(Settings{Theme: "dark", ToastsEnabled: true}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	if err := m.SaveSettings(Settings{Theme: "light", ToastsEnabled: true}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := m.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.Theme != "light" {
		t.Errorf("Theme = %q, want light", got.Theme)
	}

	// Still a single row
	var count int
	if err := m.db.QueryRow(`SELECT COUNT(*) FROM ui_settings`).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("ui_settings rows = %d, want 1", count)
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	m := setupTestManager(t)

	if err := initSchema(m.db); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}
}
