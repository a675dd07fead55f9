// Package searchview provides the catalog search popup: query input,
// result refinement, and importing a volume into a library.
package searchview

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ComicarrDev/comicarr-sub001/internal/comicarr"
	"github.com/ComicarrDev/comicarr-sub001/internal/comicvine"
	"github.com/ComicarrDev/comicarr-sub001/internal/refine"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/cursor"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/popup"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Catalog searches the remote comic catalog.
type Catalog interface {
	SearchVolumes(query string, page, limit int) (*comicvine.SearchPage, error)
}

// Importer commits a catalog volume into a destination library.
type Importer interface {
	Import(volumeID, libraryID int64) (*comicarr.ImportResult, error)
}

// State represents the current state of the search popup.
type State int

const (
	StateInput State = iota
	StateSearching
	StateResults
	StateNoResults
)

// maxHistory bounds the recent-imports list shown at the bottom of the popup.
const maxHistory = 5

// searchLimit is how many results a single catalog search fetches.
// Refinement and paging happen locally on this set.
const searchLimit = 100

// Model holds the state for the search popup.
type Model struct {
	ui.Base
	catalog  Catalog
	importer Importer

	state State
	input textinput.Model
	query string // query the current results belong to

	all     []comicvine.Volume // results in catalog relevance order
	visible []comicvine.Volume // after filters and sort
	filters refine.Filters
	sortKey refine.SortKey
	page    int
	cursor  cursor.Cursor

	libraries []comicarr.Library
	libIdx    int // index into libraries, -1 when none selectable

	importing bool // an import request is in flight
	history   []comicarr.ImportResult

	statusMsg string
	errorMsg  string
}

// New creates a new search popup.
func New(catalog Catalog, importer Importer) *Model {
	input := textinput.New()
	input.Placeholder = "Search the catalog..."
	input.CharLimit = 200
	input.Focus()

	return &Model{
		catalog:  catalog,
		importer: importer,
		state:    StateInput,
		input:    input,
		sortKey:  refine.SortRelevance,
		page:     1,
		cursor:   cursor.New(2),
		libIdx:   -1,
	}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// CurrentState returns the current popup state.
func (m *Model) CurrentState() State {
	return m.state
}

// Visible returns the refined result set across all pages.
func (m *Model) Visible() []comicvine.Volume {
	return m.visible
}

// Page returns the current page number.
func (m *Model) PageNumber() int {
	return m.page
}

// History returns recent imports, newest first.
func (m *Model) History() []comicarr.ImportResult {
	return m.history
}

// SelectedLibrary returns the currently selected library, or nil.
func (m *Model) SelectedLibrary() *comicarr.Library {
	if m.libIdx < 0 || m.libIdx >= len(m.libraries) {
		return nil
	}
	return &m.libraries[m.libIdx]
}

// pageItems returns the slice of visible results on the current page.
func (m *Model) pageItems() []comicvine.Volume {
	return refine.Page(m.visible, m.page)
}

// selectedVolume returns the result under the cursor, or nil.
func (m *Model) selectedVolume() *comicvine.Volume {
	items := m.pageItems()
	if len(items) == 0 || m.cursor.Pos() >= len(items) {
		return nil
	}
	return &items[m.cursor.Pos()]
}

// applyRefinement rebuilds the visible set from the fetched results and
// clamps the page and cursor to the new bounds.
func (m *Model) applyRefinement() {
	m.visible = refine.Sort(refine.Apply(m.all, m.filters), m.sortKey)
	m.page = refine.ClampPage(m.page, refine.TotalPages(len(m.visible)))
	m.cursor.ClampToBounds(len(m.pageItems()))
}

// resetRefinement drops all filters, sorting and paging. Used when a new
// result set arrives.
func (m *Model) resetRefinement() {
	m.filters = refine.Filters{}
	m.sortKey = refine.SortRelevance
	m.page = 1
	m.cursor.Reset()
}

// setPage moves to the given page and resets the cursor.
func (m *Model) setPage(page int) {
	m.page = refine.ClampPage(page, refine.TotalPages(len(m.visible)))
	m.cursor.Reset()
}

// cycleLibrary advances the library selection to the next enabled library.
func (m *Model) cycleLibrary() {
	if len(m.libraries) == 0 {
		return
	}
	for step := 1; step <= len(m.libraries); step++ {
		idx := (m.libIdx + step) % len(m.libraries)
		if idx < 0 {
			idx += len(m.libraries)
		}
		if m.libraries[idx].Enabled {
			m.libIdx = idx
			return
		}
	}
}

// cyclePublisherFilter rotates the publisher filter through the values
// present in the fetched results, ending back on no filter.
func (m *Model) cyclePublisherFilter() {
	m.filters.Publisher = nextCycleValue(refine.Publishers(m.all), m.filters.Publisher)
}

// cycleTagFilter rotates the tag filter the same way.
func (m *Model) cycleTagFilter() {
	m.filters.Tag = nextCycleValue(refine.Tags(m.all), m.filters.Tag)
}

// nextCycleValue returns the value after current in values, an empty
// string after the last one, and the first value when current is unset.
func nextCycleValue(values []string, current string) string {
	if len(values) == 0 {
		return ""
	}
	if current == "" {
		return values[0]
	}
	for i, v := range values {
		if v == current {
			if i+1 < len(values) {
				return values[i+1]
			}
			return ""
		}
	}
	return values[0]
}
