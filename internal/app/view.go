package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ComicarrDev/comicarr-sub001/internal/comicarr"
	"github.com/ComicarrDev/comicarr-sub001/internal/match"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/overlay"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/popup"
	"github.com/ComicarrDev/comicarr-sub001/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	base := m.renderMain()

	if m.popup != nil {
		box := popup.RenderBordered(m.popup.View(), m.width, m.height, popup.SizeLarge)
		return overlay.Compose(base, box, m.width, m.height)
	}
	return base
}

func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(styles.T().S().Muted.Render("Loading unmatched items..."))
		b.WriteString("\n")
	case len(m.items) == 0:
		b.WriteString(styles.T().S().Muted.Render("No unmatched items. Everything is filed."))
		b.WriteString("\n")
	default:
		m.writeItems(&b)
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(styles.T().S().Muted.Render(
		"enter: review matches  s: search catalog  r: reload  T: theme  N: toasts  q: quit"))
	return b.String()
}

func (m Model) renderHeader() string {
	t := styles.T()
	title := styles.ApplyBoldGradient("comicarr", t.Primary, t.Secondary)
	count := ""
	if m.loaded {
		count = styles.T().S().Muted.Render(fmt.Sprintf("  %d unmatched", len(m.items)))
	}
	return title + count
}

func (m Model) writeItems(b *strings.Builder) {
	s := styles.T().S()
	start, end := m.cursor.VisibleRange(len(m.items), m.listHeight())
	for i := start; i < end; i++ {
		item := m.items[i]
		prefix := "  "
		style := s.Base
		if i == m.cursor.Pos() {
			prefix = "> "
			style = s.Selected
		}
		b.WriteString(prefix + style.Render(filepath.Base(item.Path)) + m.renderItemDetails(item))
		b.WriteString("\n")
	}
}

func (m Model) renderItemDetails(item comicarr.Item) string {
	var details []string
	if item.IssueNumber != "" {
		details = append(details, "#"+item.IssueNumber)
	}
	if candidates, err := match.ParseCandidates(item.RawMatches); err == nil && len(candidates) > 0 {
		details = append(details, fmt.Sprintf("%d candidates", len(candidates)))
	}
	if len(details) == 0 {
		return ""
	}
	return " " + styles.T().S().Muted.Render("("+strings.Join(details, ", ")+")")
}

func (m Model) renderStatusLine() string {
	s := styles.T().S()
	switch {
	case m.errorMsg != "":
		return s.Error.Render(m.errorMsg)
	case m.statusMsg != "":
		return s.Success.Render(m.statusMsg)
	default:
		return ""
	}
}
