package state

import (
	"database/sql"
	"time"
)

// Settings holds the mutable UI settings handed to the app at construction.
type Settings struct {
	Theme         string
	ToastsEnabled bool
}

// GetSettings returns the saved settings, or nil when nothing has been
// saved yet (callers fall back to config defaults).
func (m *Manager) GetSettings() (*Settings, error) {
	var theme string
	var toasts int

	err := m.db.QueryRow(`
		SELECT theme, toasts_enabled FROM ui_settings WHERE id = 1
	`).Scan(&theme, &toasts)

	if err == sql.ErrNoRows {
		return nil, nil //nolint:nilnil // nil settings means first run, not an error
	}
	if err != nil {
		return nil, err
	}

	return &Settings{
		Theme:         theme,
		ToastsEnabled: toasts != 0,
	}, nil
}

// SaveSettings writes the settings through immediately.
func (m *Manager) SaveSettings(s Settings) error {
	toasts := 0
	if s.ToastsEnabled {
		toasts = 1
	}

	_, err := m.db.Exec(`
		INSERT INTO ui_settings (id, theme, toasts_enabled, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			theme = excluded.theme,
			toasts_enabled = excluded.toasts_enabled,
			updated_at = excluded.updated_at
	`, s.Theme, toasts, time.Now().Unix())
	return err
}
