// Package matchview provides a popup for reviewing and confirming the
// catalog candidates attached to an unmatched library item.
package matchview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ComicarrDev/comicarr-sub001/internal/comicarr"
	"github.com/ComicarrDev/comicarr-sub001/internal/match"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/popup"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// CoverResolver looks up the cover URL for a specific issue of a volume.
// An empty URL with a nil error means the issue has no cover.
type CoverResolver interface {
	ResolveIssueCover(volumeID int64, issueNumber string) (string, error)
}

// Model holds the state for the match review popup.
type Model struct {
	ui.Base
	item       comicarr.Item
	candidates []match.Candidate
	sel        int

	resolver CoverResolver

	coverState CoverState
	coverURL   string
}

// New creates a match review popup for the given item. Candidates are
// displayed in ranked order; the best candidate starts selected.
func New(item comicarr.Item, candidates []match.Candidate, resolver CoverResolver) *Model {
	return &Model{
		item:       item,
		candidates: match.Rank(candidates),
		resolver:   resolver,
	}
}

// Candidates returns the ranked candidate list.
func (m *Model) Candidates() []match.Candidate {
	return m.candidates
}

// Selected returns the currently selected candidate, or nil if there are none.
func (m *Model) Selected() *match.Candidate {
	if len(m.candidates) == 0 || m.sel >= len(m.candidates) {
		return nil
	}
	return &m.candidates[m.sel]
}

// Cover returns the current cover state and URL for the selection.
func (m *Model) Cover() (CoverState, string) {
	return m.coverState, m.coverURL
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return m.refreshCover()
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case CoverResultMsg:
		m.handleCoverResult(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (popup.Popup, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }

	case "j", "down":
		return m, m.moveSelection(1)

	case "k", "up":
		return m, m.moveSelection(-1)

	case "g", "home":
		return m, m.jumpSelection(0)

	case "G", "end":
		return m, m.jumpSelection(len(m.candidates) - 1)

	case "enter":
		c := m.Selected()
		if c == nil || !c.Selectable() {
			return m, nil
		}
		itemID := m.item.ID
		volumeID := c.VolumeID
		return m, func() tea.Msg {
			return ActionMsg(Confirm{ItemID: itemID, VolumeID: volumeID})
		}
	}
	return m, nil
}

// moveSelection moves the selection by delta and restarts cover resolution
// for the newly selected candidate.
func (m *Model) moveSelection(delta int) tea.Cmd {
	return m.jumpSelection(m.sel + delta)
}

func (m *Model) jumpSelection(pos int) tea.Cmd {
	if len(m.candidates) == 0 {
		return nil
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(m.candidates)-1 {
		pos = len(m.candidates) - 1
	}
	if pos == m.sel {
		return nil
	}
	m.sel = pos
	return m.refreshCover()
}
