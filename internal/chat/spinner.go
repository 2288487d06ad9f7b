package chat

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

// doneMsg carries the finished request's result.
type doneMsg struct {
	result any
	err    error
}

// requestFunc is one remote call executed behind the spinner.
type requestFunc func(ctx context.Context) (any, error)

// waitModel is the bubbletea model shown while a request is in flight.
type waitModel struct {
	spinner  spinner.Model
	theme    Theme
	label    string
	request  requestFunc
	ctx      context.Context
	cancel   context.CancelFunc
	result   any
	err      error
	canceled bool
}

func newWaitModel(ctx context.Context, theme Theme, label string, request requestFunc) waitModel {
	ctx, cancel := context.WithCancel(ctx)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return waitModel{
		spinner: sp,
		theme:   theme,
		label:   label,
		request: request,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Init starts the spinner animation and fires the request.
func (m waitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fire())
}

// Update handles messages and returns the updated model.
func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			m.cancel()
			return m, nil // wait for the aborted request to report back
		}

	case doneMsg:
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the waiting line.
func (m waitModel) View() tea.View {
	if m.canceled {
		return tea.NewView(m.theme.hintStyle().Render("Cancelling...") + "\n")
	}
	return tea.NewView(fmt.Sprintf("%s %s\n", m.spinner.View(), m.label))
}

// fire runs the request in a command goroutine so Update never blocks.
func (m waitModel) fire() tea.Cmd {
	return func() tea.Msg {
		result, err := m.request(m.ctx)
		return doneMsg{result: result, err: err}
	}
}

// runWithSpinner shows an animated waiting line while request executes.
// Ctrl+C aborts the in-flight request and returns context.Canceled.
func runWithSpinner(ctx context.Context, theme Theme, label string, request requestFunc) (any, error) {
	model := newWaitModel(ctx, theme, label, request)
	defer model.cancel()

	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		// Not a terminal worth animating on; just do the call.
		return request(ctx)
	}

	m, ok := finalModel.(waitModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", finalModel)
	}
	if m.canceled {
		return nil, context.Canceled
	}
	return m.result, m.err
}
