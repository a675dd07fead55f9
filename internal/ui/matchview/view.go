package matchview

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ComicarrDev/comicarr-sub001/internal/match"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/styles"
)

// View implements popup.Popup. Styles are resolved at render time so a
// theme switch takes effect on the next frame.
func (m *Model) View() string {
	s := styles.T().S()
	var b strings.Builder

	title := filepath.Base(m.item.Path)
	if m.item.IssueNumber != "" {
		title += "  #" + m.item.IssueNumber
	}
	b.WriteString(s.Selected.MarginBottom(1).Render(title))
	b.WriteString("\n")

	if len(m.candidates) == 0 {
		b.WriteString("\nNo candidates for this file.")
		b.WriteString("\n\n")
		b.WriteString(s.Muted.MarginTop(1).Render("esc: close"))
		return b.String()
	}

	for i, c := range m.candidates {
		b.WriteString(m.renderCandidate(s, c, i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderCover(s))
	b.WriteString("\n")
	b.WriteString(s.Muted.MarginTop(1).Render("enter: confirm match  j/k: select  esc: close"))

	return b.String()
}

func (m *Model) renderCandidate(s *styles.Styles, c match.Candidate, index int) string {
	cursor := "  "
	style := s.Base
	if index == m.sel {
		cursor = "> "
		style = s.Selected
	}

	name := c.Name
	if c.StartYear != 0 {
		name = fmt.Sprintf("%s (%d)", c.Name, c.StartYear)
	}
	if !c.Selectable() {
		name = s.Subtle.Render(name + " [not in catalog]")
	} else {
		name = style.Render(name)
	}

	var details []string
	if c.Publisher != "" {
		details = append(details, c.Publisher)
	}
	if c.Confidence != nil {
		details = append(details, fmt.Sprintf("%d%%", int(*c.Confidence*100)))
	}
	line := cursor + name
	if len(details) > 0 {
		line += " " + s.Muted.Render("("+strings.Join(details, ", ")+")")
	}
	if c.BestMatch {
		line += " " + s.Success.Render("best match")
	}
	return line
}

func (m *Model) renderCover(s *styles.Styles) string {
	switch m.coverState {
	case CoverLoading:
		return s.Muted.Render("cover: loading...")
	case CoverLoaded:
		return s.Muted.Render("cover: " + m.coverURL)
	case CoverUnavailable:
		return s.Subtle.Render("cover: unavailable")
	default:
		return ""
	}
}
