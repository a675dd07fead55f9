package searchview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ComicarrDev/comicarr-sub001/internal/comicarr"
	"github.com/ComicarrDev/comicarr-sub001/internal/comicvine"
)

// SearchResultMsg carries one catalog search outcome. Query identifies the
// search it belongs to; results for a query the user has since replaced
// are dropped.
type SearchResultMsg struct {
	Query string
	Page  *comicvine.SearchPage
	Err   error
}

// LibrariesMsg delivers the destination libraries loaded from the server.
type LibrariesMsg struct {
	Libraries []comicarr.Library
	Err       error
}

// ImportResultMsg carries the outcome of an import request.
type ImportResultMsg struct {
	VolumeID int64
	Result   *comicarr.ImportResult
	Err      error
}

// searchCmd runs a catalog search for the current query.
func (m *Model) searchCmd() tea.Cmd {
	query := m.query
	catalog := m.catalog
	return func() tea.Msg {
		page, err := catalog.SearchVolumes(query, 1, searchLimit)
		return SearchResultMsg{Query: query, Page: page, Err: err}
	}
}

// importCmd commits the given volume into the given library.
func (m *Model) importCmd(volumeID, libraryID int64) tea.Cmd {
	importer := m.importer
	return func() tea.Msg {
		result, err := importer.Import(volumeID, libraryID)
		return ImportResultMsg{VolumeID: volumeID, Result: result, Err: err}
	}
}
