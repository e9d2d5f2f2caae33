package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("📰 Newsdesk Headlines"))
	b.WriteString("\n\n")

	switch m.State {
	case StateLoading:
		b.WriteString(StatusStyle.Render("⏳ Loading..."))
	case StateError:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", m.Err)))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press 'q' to quit"))
	case StateSearch:
		b.WriteString(HighlightStyle.Render("Search"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  > %s_\n\n", m.Query))
		b.WriteString(InfoStyle.Render("Enter to search | Esc to cancel"))
	case StateList:
		m.renderList(&b)
	case StateReading:
		m.renderArticle(&b)
	}

	return b.String()
}

func (m Model) renderList(b *strings.Builder) {
	if m.Searched {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("🔍 %d search results", len(m.Posts))))
		b.WriteString("\n\n")
	}

	if len(m.Posts) == 0 {
		b.WriteString(InfoStyle.Render("No articles found"))
		b.WriteString("\n\n")
	}

	for i, p := range m.Posts {
		line := fmt.Sprintf("[%s] %s", p.Category, p.Title)
		if i == m.Cursor {
			b.WriteString(HighlightStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("↑/↓ navigate | Enter read | / search | r reload | q quit"))
}

func (m Model) renderArticle(b *strings.Builder) {
	p := m.Current

	var box strings.Builder
	box.WriteString(HighlightStyle.Render(p.Title))
	box.WriteString("\n\n")
	box.WriteString(InfoStyle.Render(fmt.Sprintf("%s · %s · %d min read", p.Source, p.PublishedAt, p.ReadTime)))
	box.WriteString("\n\n")
	box.WriteString(p.Content)
	if len(p.Tags) > 0 {
		box.WriteString("\n\n")
		box.WriteString(InfoStyle.Render("Tags: " + strings.Join(p.Tags, ", ")))
	}

	b.WriteString(BoxStyle.Render(box.String()))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("Esc back to list | q quit"))
}
