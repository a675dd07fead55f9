package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ComicarrDev/comicarr-sub001/internal/errmsg"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/action"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/matchview"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/searchview"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/styles"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.popup != nil {
			m.popup.SetSize(m.popupWidth(), m.popupHeight())
		}
		return m, nil

	case ItemsMsg:
		return m.handleItems(msg), nil

	case MatchSavedMsg:
		return m.handleMatchSaved(msg)

	case SettingsSavedMsg:
		if msg.Err != nil {
			m.errorMsg = errmsg.Format(errmsg.OpSaveSettings, msg.Err)
		}
		return m, nil

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.popup != nil {
			return m.forwardToPopup(msg)
		}
		return m.handleKey(msg)
	}

	if m.popup != nil {
		return m.forwardToPopup(msg)
	}
	return m, nil
}

func (m Model) forwardToPopup(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.popup, cmd = m.popup.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.cursor.HandleKey(msg.String(), len(m.items), m.listHeight()) {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		if item := m.selectedItem(); item != nil {
			return m.openMatchPopup(*item)
		}

	case "s", "/":
		return m.openSearchPopup()

	case "r":
		m.statusMsg = ""
		m.errorMsg = ""
		return m, m.loadItemsCmd()

	case "T":
		if m.uiState.Theme == "light" {
			m.uiState.Theme = "dark"
		} else {
			m.uiState.Theme = "light"
		}
		styles.Select(m.uiState.Theme)
		return m, m.saveSettingsCmd(m.uiState)

	case "N":
		m.uiState.ToastsEnabled = !m.uiState.ToastsEnabled
		return m, m.saveSettingsCmd(m.uiState)
	}
	return m, nil
}

func (m Model) handleItems(msg ItemsMsg) Model {
	m.loaded = true
	if msg.Err != nil {
		m.errorMsg = errmsg.Format(errmsg.OpLoadItems, msg.Err)
		return m
	}
	m.items = msg.Items
	m.errorMsg = ""
	m.cursor.ClampToBounds(len(m.items))
	return m
}

func (m Model) handleMatchSaved(msg MatchSavedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errorMsg = errmsg.Format(errmsg.OpSaveMatch, msg.Err)
		return m, nil
	}
	m.errorMsg = ""
	m.toast("Match saved")
	// The matched item leaves the unmatched list; reload it.
	return m, m.loadItemsCmd()
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case matchview.Close:
		m.popup = nil
		return m, nil

	case matchview.Confirm:
		m.popup = nil
		return m, m.saveMatchCmd(a.ItemID, a.VolumeID)

	case searchview.Close:
		m.popup = nil
		return m, nil

	case searchview.Imported:
		m.toast(fmt.Sprintf("Imported %s", a.Folder))
		return m, nil
	}
	return m, nil
}

// toast sets the transient status line, honoring the toast setting.
func (m *Model) toast(text string) {
	if !m.uiState.ToastsEnabled {
		return
	}
	m.statusMsg = text
}

func (m Model) listHeight() int {
	h := m.height - ui.PanelOverhead - ui.StatusBarHeight
	if h < 1 {
		return 1
	}
	return h
}
