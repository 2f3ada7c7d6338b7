package contacts

import (
	"errors"
	"io"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/qqbot-cli/internal/application"
	"github.com/bnema/qqbot-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// RenderOptions selects the sections to print. No categories means all of
// them, in directory order.
type RenderOptions struct {
	Categories []domain.Category
}

func (o RenderOptions) sections() []domain.Category {
	if len(o.Categories) == 0 {
		return domain.Categories
	}

	sections := make([]domain.Category, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		if slices.Contains(o.Categories, category) {
			sections = append(sections, category)
		}
	}
	return sections
}

type directoryLoadedMsg struct {
	summary  application.DirectorySummary
	sections []domain.Category
}

type model struct {
	pending directoryLoadedMsg
	styles  styles
	output  string
}

func (m model) Init() tea.Cmd {
	msg := m.pending
	return func() tea.Msg {
		return msg
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	loaded, ok := msg.(directoryLoadedMsg)
	if !ok {
		return m, nil
	}

	m.output = renderView(loaded.summary, loaded.sections, m.styles)
	return m, tea.Quit
}

func (m model) View() string {
	return m.output
}

// Render lays out the directory of the logged in account. A nil directory
// renders as empty.
func Render(summary application.DirectorySummary, opts RenderOptions) (string, error) {
	if summary.Directory == nil {
		summary.Directory = domain.NewDirectory(nil, nil, nil)
	}

	p := tea.NewProgram(
		model{
			pending: directoryLoadedMsg{summary: summary, sections: opts.sections()},
			styles:  newStyles(),
		},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
