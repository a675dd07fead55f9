package searchview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ComicarrDev/comicarr-sub001/internal/comicarr"
	"github.com/ComicarrDev/comicarr-sub001/internal/errmsg"
	"github.com/ComicarrDev/comicarr-sub001/internal/naming"
	"github.com/ComicarrDev/comicarr-sub001/internal/refine"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/popup"
)

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case SearchResultMsg:
		m.handleSearchResult(msg)
		return m, nil
	case LibrariesMsg:
		m.handleLibraries(msg)
		return m, nil
	case ImportResultMsg:
		return m, m.handleImportResult(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (popup.Popup, tea.Cmd) {
	if m.state == StateInput {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return ActionMsg(Close{}) }

	case "/":
		m.state = StateInput
		m.input.Focus()
		return m, nil
	}

	if m.state != StateResults {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		m.cursor.Move(1, len(m.pageItems()), m.listHeight())

	case "k", "up":
		m.cursor.Move(-1, len(m.pageItems()), m.listHeight())

	case "h", "left":
		m.setPage(m.page - 1)

	case "l", "right":
		m.setPage(m.page + 1)

	case "s":
		m.sortKey = m.sortKey.Next()
		m.page = 1
		m.applyRefinement()

	case "f":
		m.cyclePublisherFilter()
		m.page = 1
		m.applyRefinement()

	case "t":
		m.cycleTagFilter()
		m.page = 1
		m.applyRefinement()

	case "x":
		m.filters = refine.Filters{}
		m.page = 1
		m.applyRefinement()

	case "L":
		m.cycleLibrary()

	case "enter", "i":
		return m, m.startImport()
	}
	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (popup.Popup, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return ActionMsg(Close{}) }

	case "enter":
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			return m, nil
		}
		m.query = query
		m.state = StateSearching
		m.errorMsg = ""
		m.statusMsg = ""
		m.input.Blur()
		return m, m.searchCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchResult(msg SearchResultMsg) {
	// Ignore results for a query the user has since replaced
	if msg.Query != m.query {
		return
	}
	if msg.Err != nil {
		m.state = StateInput
		m.input.Focus()
		m.errorMsg = errmsg.Format(errmsg.OpSearchCatalog, msg.Err)
		return
	}

	m.all = msg.Page.Results
	m.resetRefinement()
	m.applyRefinement()
	if len(m.all) == 0 {
		m.state = StateNoResults
		return
	}
	m.state = StateResults
}

func (m *Model) handleLibraries(msg LibrariesMsg) {
	if msg.Err != nil {
		m.errorMsg = errmsg.Format(errmsg.OpLoadLibraries, msg.Err)
		return
	}
	m.libraries = msg.Libraries
	m.libIdx = comicarr.DefaultLibrary(msg.Libraries)
}

// startImport begins importing the selected volume. At most one import
// runs at a time; further import keys are ignored until the result lands.
func (m *Model) startImport() tea.Cmd {
	if m.importing {
		return nil
	}
	v := m.selectedVolume()
	if v == nil {
		return nil
	}
	lib := m.SelectedLibrary()
	if lib == nil {
		m.errorMsg = "No enabled library to import into"
		return nil
	}

	m.importing = true
	m.errorMsg = ""
	m.statusMsg = fmt.Sprintf("Importing %s...", v.Name)
	return m.importCmd(v.ID, lib.ID)
}

func (m *Model) handleImportResult(msg ImportResultMsg) tea.Cmd {
	m.importing = false
	if msg.Err != nil {
		m.statusMsg = ""
		m.errorMsg = errmsg.Format(errmsg.OpImportVolume, msg.Err)
		return nil
	}

	result := *msg.Result
	if result.Folder == "" {
		result.Folder = naming.Folder(result.Title, result.Year)
	}
	m.history = append([]comicarr.ImportResult{result}, m.history...)
	if len(m.history) > maxHistory {
		m.history = m.history[:maxHistory]
	}
	m.statusMsg = fmt.Sprintf("Imported %s", result.Folder)
	m.errorMsg = ""

	imported := Imported{Title: result.Title, Year: result.Year, Folder: result.Folder}
	return func() tea.Msg { return ActionMsg(imported) }
}

// listHeight returns the rows available for the result list.
func (m *Model) listHeight() int {
	h := m.ListHeight(ui.PanelOverhead + ui.StatusBarHeight)
	if h < 1 {
		return refine.PageSize
	}
	return h
}
