package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/owdragon-cli/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type accountCheckedMsg struct {
	done   int
	total  int
	status application.AccountStatus
}

type statusCheckDoneMsg struct {
	err error
}

// statusSpinnerModel shows which account is being checked while the status
// service walks the credential list.
type statusSpinnerModel struct {
	spinner spinner.Model
	check   tea.Cmd
	total   int
	done    int
	failed  int
	last    string
	err     error
	quit    bool
}

func newStatusSpinnerModel(total int, check tea.Cmd) statusSpinnerModel {
	return statusSpinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		check: check,
		total: total,
	}
}

func (m statusSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.check)
}

func (m statusSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case accountCheckedMsg:
		m.done, m.total = msg.done, msg.total
		m.last = string(msg.status.ID)
		if !msg.status.OK() {
			m.failed++
			m.last += " failed"
		}
		return m, nil
	case statusCheckDoneMsg:
		m.quit = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m statusSpinnerModel) View() string {
	if m.quit {
		return ""
	}

	label := fmt.Sprintf("Checking accounts... %d/%d", m.done, m.total)
	if m.failed > 0 {
		label += fmt.Sprintf(", %d failed", m.failed)
	}
	if m.last != "" {
		label += fmt.Sprintf(" (last: %s)", m.last)
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), label)
}

func runStatusSpinner(ctx context.Context, output io.Writer, total int, check func(context.Context, application.StatusProgress) error) error {
	var p *tea.Program
	progress := func(done, total int, status application.AccountStatus) {
		p.Send(accountCheckedMsg{done: done, total: total, status: status})
	}
	checkCmd := func() tea.Msg {
		return statusCheckDoneMsg{err: check(ctx, progress)}
	}

	p = tea.NewProgram(
		newStatusSpinnerModel(total, checkCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(statusSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
