package matchview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ComicarrDev/comicarr-sub001/internal/match"
)

// CoverState tracks cover resolution for the selected candidate.
type CoverState int

const (
	CoverIdle CoverState = iota
	CoverLoading
	CoverLoaded
	CoverUnavailable
)

// CoverResultMsg carries the outcome of a remote cover lookup. ItemID and
// Index identify the selection the lookup was started for, so results that
// arrive after the selection moved on can be dropped.
type CoverResultMsg struct {
	ItemID int64
	Index  int
	URL    string
	Err    error
}

// refreshCover re-runs cover resolution for the current selection. It
// settles locally when possible and returns a fetch command only when a
// remote lookup is required.
func (m *Model) refreshCover() tea.Cmd {
	c := m.Selected()
	if c == nil {
		m.coverState = CoverIdle
		m.coverURL = ""
		return nil
	}

	state, url := m.localCover(*c)
	m.coverState = state
	m.coverURL = url
	if state != CoverLoading {
		return nil
	}
	return m.fetchCoverCmd(*c)
}

// localCover resolves a candidate's cover without network access.
// Precedence: the candidate's own issue image, then the cover cached on
// the item when it refers to the same volume. When neither applies and a
// remote lookup is impossible (no issue number to look up, no resolver,
// or no catalog volume to look it up in), the cover is unavailable.
// Otherwise CoverLoading is returned and the caller starts a fetch.
func (m *Model) localCover(c match.Candidate) (CoverState, string) {
	if c.IssueImageURL != "" {
		return CoverLoaded, c.IssueImageURL
	}
	if c.VolumeID != 0 && c.VolumeID == m.item.VolumeID &&
		m.item.IssueID != 0 && m.item.IssueCoverURL != "" {
		return CoverLoaded, m.item.IssueCoverURL
	}
	if m.item.IssueNumber == "" {
		return CoverUnavailable, ""
	}
	if m.resolver == nil || c.VolumeID == 0 {
		return CoverUnavailable, ""
	}
	return CoverLoading, ""
}

// fetchCoverCmd looks up the issue cover remotely. The selection identity
// is captured so the result can be matched against the selection current
// at delivery time. An issue without a cover in the catalog resolves to
// an empty URL, which lands as unavailable.
func (m *Model) fetchCoverCmd(c match.Candidate) tea.Cmd {
	itemID := m.item.ID
	index := m.sel
	volumeID := c.VolumeID
	issueNumber := m.item.IssueNumber
	resolver := m.resolver
	return func() tea.Msg {
		url, err := resolver.ResolveIssueCover(volumeID, issueNumber)
		if err != nil {
			return CoverResultMsg{ItemID: itemID, Index: index, Err: err}
		}
		return CoverResultMsg{ItemID: itemID, Index: index, URL: url}
	}
}

func (m *Model) handleCoverResult(msg CoverResultMsg) {
	// Ignore stale results from a previous item or selection
	if msg.ItemID != m.item.ID || msg.Index != m.sel {
		return
	}
	if msg.Err != nil || msg.URL == "" {
		m.coverState = CoverUnavailable
		m.coverURL = ""
		return
	}
	m.coverState = CoverLoaded
	m.coverURL = msg.URL
}
