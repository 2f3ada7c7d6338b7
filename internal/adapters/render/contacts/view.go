package contacts

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/qqbot-cli/internal/application"
	"github.com/bnema/qqbot-cli/internal/domain"
)

var categoryTitles = map[domain.Category]string{
	domain.CategoryBuddy:   "Buddies",
	domain.CategoryGroup:   "Groups",
	domain.CategoryDiscuss: "Discussion groups",
}

func renderView(summary application.DirectorySummary, sections []domain.Category, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("QQBot contacts of %s <%d>", summary.Nick, summary.QQ)),
		s.header.Render(fmt.Sprintf("buddies: %d  groups: %d  discussion groups: %d",
			summary.Directory.Count(domain.CategoryBuddy),
			summary.Directory.Count(domain.CategoryGroup),
			summary.Directory.Count(domain.CategoryDiscuss),
		)),
	}

	for _, category := range sections {
		lines = append(lines, s.section.Render(renderCategory(summary.Directory, category, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCategory(directory *domain.Directory, category domain.Category, s styles) string {
	parts := []string{s.heading.Render(categoryTitles[category])}

	contacts := directory.Contacts(category)
	if len(contacts) == 0 {
		parts = append(parts, s.empty.Render("none"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	width := 0
	for _, contact := range contacts {
		width = max(width, len(publicNumber(category, contact)))
	}

	for _, contact := range contacts {
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.number.Width(width).Render(publicNumber(category, contact)),
			"  ",
			s.name.Render(contact.Name),
			"  ",
			s.uin.Render(fmt.Sprintf("uin %d", contact.UIN)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func publicNumber(category domain.Category, contact domain.Contact) string {
	if category == domain.CategoryDiscuss {
		return "-"
	}
	return strconv.FormatInt(contact.QQ, 10)
}
