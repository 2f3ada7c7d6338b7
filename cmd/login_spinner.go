package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/qqbot-cli/internal/application"
	"github.com/bnema/qqbot-cli/internal/domain"
)

type authStateMsg struct {
	state domain.AuthState
}

type loginDoneMsg struct {
	err error
}

type loginSpinnerModel struct {
	spinner spinner.Model
	label   string
	state   domain.AuthState
	login   tea.Cmd
	err     error
	done    bool
}

func newLoginSpinnerModel(label string, login tea.Cmd) loginSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return loginSpinnerModel{
		spinner: s,
		label:   label,
		login:   login,
	}
}

func (m loginSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.login)
}

func (m loginSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case authStateMsg:
		m.state = msg.state
		m.label = msg.state.Label()
		return m, nil
	case loginDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m loginSpinnerModel) View() string {
	if m.done {
		return ""
	}
	if m.state.Terminal() {
		return m.label
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runLoginSpinner runs login while a spinner shows the latest state the
// handshake reported through its observer.
func runLoginSpinner(ctx context.Context, output io.Writer, login func(context.Context, application.AuthObserver) error) error {
	var p *tea.Program
	observe := func(state domain.AuthState) {
		p.Send(authStateMsg{state: state})
	}
	loginCmd := func() tea.Msg {
		return loginDoneMsg{err: login(ctx, observe)}
	}

	p = tea.NewProgram(
		newLoginSpinnerModel("Logging in to WebQQ...", loginCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(loginSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
