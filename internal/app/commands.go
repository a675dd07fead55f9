package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ComicarrDev/comicarr-sub001/internal/comicarr"
	"github.com/ComicarrDev/comicarr-sub001/internal/state"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/searchview"
)

// ItemsMsg delivers the unmatched items loaded from the server.
type ItemsMsg struct {
	Items []comicarr.Item
	Err   error
}

// MatchSavedMsg reports the outcome of saving a match for an item.
type MatchSavedMsg struct {
	ItemID   int64
	VolumeID int64
	Err      error
}

// SettingsSavedMsg reports the outcome of persisting UI settings.
type SettingsSavedMsg struct {
	Err error
}

func (m Model) loadItemsCmd() tea.Cmd {
	server := m.server
	return func() tea.Msg {
		items, err := server.ListItems()
		return ItemsMsg{Items: items, Err: err}
	}
}

func (m Model) loadLibrariesCmd() tea.Cmd {
	server := m.server
	return func() tea.Msg {
		libraries, err := server.ListLibraries()
		return searchview.LibrariesMsg{Libraries: libraries, Err: err}
	}
}

func (m Model) saveMatchCmd(itemID, volumeID int64) tea.Cmd {
	server := m.server
	return func() tea.Msg {
		err := server.SaveMatch(itemID, volumeID)
		return MatchSavedMsg{ItemID: itemID, VolumeID: volumeID, Err: err}
	}
}

// saveSettingsCmd writes the UI settings through to the state database.
func (m Model) saveSettingsCmd(settings state.Settings) tea.Cmd {
	store := m.settings
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return SettingsSavedMsg{Err: store.SaveSettings(settings)}
	}
}
