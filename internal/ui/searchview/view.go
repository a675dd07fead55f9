package searchview

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ComicarrDev/comicarr-sub001/internal/comicvine"
	"github.com/ComicarrDev/comicarr-sub001/internal/refine"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/styles"
)

// View implements popup.Popup. Styles are resolved at render time so a
// theme switch takes effect on the next frame.
func (m *Model) View() string {
	s := styles.T().S()
	var b strings.Builder

	b.WriteString(s.Selected.MarginBottom(1).Render("Catalog Search"))
	b.WriteString("\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		m.writeStatus(s, &b)
		b.WriteString(s.Muted.MarginTop(1).Render("enter: search  esc: close"))

	case StateSearching:
		b.WriteString(s.Muted.Render(fmt.Sprintf("Searching for %q...", m.query)))
		b.WriteString("\n")
		b.WriteString(s.Muted.MarginTop(1).Render("esc: close"))

	case StateNoResults:
		b.WriteString(fmt.Sprintf("No results for %q.", m.query))
		b.WriteString("\n")
		b.WriteString(s.Muted.MarginTop(1).Render("/: new search  esc: close"))

	case StateResults:
		m.writeResults(s, &b)
	}

	return b.String()
}

func (m *Model) writeResults(s *styles.Styles, b *strings.Builder) {
	b.WriteString(m.renderResultsHeader(s))
	b.WriteString("\n\n")

	items := m.pageItems()
	if len(items) == 0 {
		b.WriteString(s.Muted.Render("No results match the active filters."))
		b.WriteString("\n")
	}
	for i, v := range items {
		b.WriteString(m.renderResult(s, v, i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter(s))
	m.writeStatus(s, b)
	m.writeHistory(s, b)
	b.WriteString(s.Muted.MarginTop(1).Render(
		"enter: import  j/k: select  h/l: page  s: sort  f/t: filter  x: clear  L: library  /: new search  esc: close"))
}

func (m *Model) renderResultsHeader(s *styles.Styles) string {
	header := fmt.Sprintf("%s results for %q", humanize.Comma(int64(len(m.all))), m.query)
	if len(m.visible) != len(m.all) {
		header += fmt.Sprintf(", %d after filters", len(m.visible))
	}
	return s.Muted.Bold(true).Render(header)
}

func (m *Model) renderResult(s *styles.Styles, v comicvine.Volume, index int) string {
	cursor := "  "
	style := s.Base
	if index == m.cursor.Pos() {
		cursor = "> "
		style = s.Selected
	}

	name := v.Name
	if v.StartYear != 0 {
		name = fmt.Sprintf("%s (%d)", v.Name, v.StartYear)
	}

	var details []string
	if v.Publisher != "" {
		details = append(details, v.Publisher)
	}
	if v.IssueCount > 0 {
		details = append(details, humanize.Comma(int64(v.IssueCount))+" issues")
	}
	if tag := refine.EffectiveTag(v); tag != "" {
		details = append(details, tag)
	}

	line := cursor + style.Render(name)
	if len(details) > 0 {
		line += " " + s.Muted.Render("("+strings.Join(details, ", ")+")")
	}
	return line
}

func (m *Model) renderFooter(s *styles.Styles) string {
	parts := []string{
		fmt.Sprintf("page %d/%d", m.page, refine.TotalPages(len(m.visible))),
		"sort: " + m.sortKey.String(),
	}
	if m.filters.Active() {
		parts = append(parts, "filters: "+m.describeFilters())
	}
	if lib := m.SelectedLibrary(); lib != nil {
		parts = append(parts, "library: "+lib.Name)
	} else {
		parts = append(parts, s.Error.Render("no library"))
	}
	return s.Muted.Render(strings.Join(parts, "  |  "))
}

func (m *Model) describeFilters() string {
	var parts []string
	if m.filters.Publisher != "" {
		parts = append(parts, m.filters.Publisher)
	}
	if m.filters.Tag != "" {
		parts = append(parts, m.filters.Tag)
	}
	if m.filters.YearMin != 0 || m.filters.YearMax != 0 {
		parts = append(parts, fmt.Sprintf("years %d-%d", m.filters.YearMin, m.filters.YearMax))
	}
	if m.filters.IssuesMin != 0 || m.filters.IssuesMax != 0 {
		parts = append(parts, fmt.Sprintf("issues %d-%d", m.filters.IssuesMin, m.filters.IssuesMax))
	}
	return strings.Join(parts, ", ")
}

func (m *Model) writeStatus(s *styles.Styles, b *strings.Builder) {
	if m.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(s.Error.Render(m.errorMsg))
		b.WriteString("\n")
	}
	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(s.Success.Render(m.statusMsg))
		b.WriteString("\n")
	}
}

func (m *Model) writeHistory(s *styles.Styles, b *strings.Builder) {
	if len(m.history) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(s.Muted.Bold(true).Render("Recent imports"))
	b.WriteString("\n")
	for _, r := range m.history {
		b.WriteString(s.Muted.Render("  " + r.Folder))
		b.WriteString("\n")
	}
}
