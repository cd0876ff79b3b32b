package program

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/rotisserie/eris"
	"golang.org/x/term"

	"github.com/placeskit/places-setup/internal/pkg/printer"
)

var ErrInterrupted = eris.New("interrupted by user")

type interruptKey struct{}

// An interface describing the parts of BubbleTea's Program that we actually use.
type Program interface {
	Run() (tea.Model, error)
	Send(msg tea.Msg)
	Quit()
}

// A dumb text implementation of BubbleTea's Program that allows
// for output to be piped to another program.
type fakeProgram struct {
	model tea.Model
}

type StatusMsg string

type statusModel struct {
	cancel context.CancelFunc

	spinner spinner.Model
	status  string

	width int
}

// IsInteractive reports whether stdin is attached to a terminal.
//
//nolint:gochecknoglobals // swapped in tests
var IsInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

//nolint:gochecknoglobals // swapped in tests
var newProgram = NewProgram

func NewProgram(model tea.Model, opts ...tea.ProgramOption) Program {
	if IsInteractive() {
		return tea.NewProgram(model, opts...)
	}
	return &fakeProgram{model: model}
}

func (p *fakeProgram) Run() (tea.Model, error) {
	if initCmd := p.model.Init(); initCmd != nil {
		if message := initCmd(); message != nil {
			p.model, _ = p.model.Update(message)
		}
	}
	return p.model, nil
}

func (p *fakeProgram) Send(msg tea.Msg) {
	if status, ok := msg.(StatusMsg); ok {
		printer.Infoln(string(status))
	}
}

func (p *fakeProgram) Quit() {}

// WithInterrupt returns a context that is canceled with ErrInterrupted when the
// operator presses Ctrl-C on a spinner started under it.
func WithInterrupt(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(ctx)
	ctx = context.WithValue(ctx, interruptKey{}, cancel)
	return ctx, func() { cancel(context.Canceled) }
}

// Interrupt cancels the nearest context created by WithInterrupt. It is a no-op
// when there is none.
func Interrupt(ctx context.Context) {
	if cancel, ok := ctx.Value(interruptKey{}).(context.CancelCauseFunc); ok {
		cancel(ErrInterrupted)
	}
}

// RunProgram shows a spinner with the given status while f runs and returns f's error.
// The spinner stops before RunProgram returns. The terminal is in raw mode meanwhile,
// so Ctrl-C arrives as a key press: it cancels f's context, interrupts ctx and makes
// RunProgram return ErrInterrupted.
func RunProgram(ctx context.Context, status string, f func(ctx context.Context) error) error {
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var interrupted atomic.Bool
	p := newProgram(statusModel{
		cancel: func() {
			interrupted.Store(true)
			cancel()
			Interrupt(parent)
		},
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
		),
		status: status,
	})

	errCh := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := p.Run(); err != nil {
			errCh <- err
		}
	}()
	p.Send(StatusMsg(status))

	err := f(ctx)
	p.Quit()
	<-done

	if interrupted.Load() {
		return ErrInterrupted
	}
	select {
	case runErr := <-errCh:
		if err == nil {
			return runErr
		}
	default:
	}
	return err
}

func (m statusModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type { //nolint:exhaustive // not applicable
		case tea.KeyCtrlC:
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		default:
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		spinnerModel, cmd := m.spinner.Update(msg)
		m.spinner = spinnerModel
		return m, cmd
	case StatusMsg:
		m.status = string(msg)
		return m, nil
	default:
		return m, nil
	}
}

func (m statusModel) View() string {
	return wrap.String(m.spinner.View()+" "+m.status, m.width)
}
