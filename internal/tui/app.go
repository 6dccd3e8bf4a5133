package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paul-nameless/tg/internal/domain"
	"github.com/paul-nameless/tg/internal/renderqueue"
)

// refreshMsg asks the program to re-render the current grid; it carries no
// data since Screen.View reads the grid directly.
type refreshMsg struct{}

// App is the bubbletea tea.Model that owns a Screen and turns its own
// Init/Update/View lifecycle into the draw thread described in spec §5.
// The controller never sees bubbletea directly: it only holds a
// *renderqueue.Queue built from this program.
type App struct {
	screen *Screen
}

// NewApp builds an App with an initial rows×cols Screen and wires the
// eventual tea.Program back onto it once Start creates one.
func NewApp(rows, cols int) *App {
	return &App{screen: NewScreen(rows, cols)}
}

// Screen exposes the domain.Surface for wiring into internal/view-backed
// draw jobs.
func (a *App) Screen() *Screen { return a.screen }

// Start constructs the tea.Program, wires it back onto the Screen, and
// returns a renderqueue.Queue bound to it. Run the returned func to block
// the draw thread until the program quits.
func (a *App) Start(opts ...tea.ProgramOption) (*renderqueue.Queue, func() error) {
	program := tea.NewProgram(a, opts...)
	a.screen.SetProgram(program)
	q := renderqueue.New(program)
	return q, func() error {
		_, err := program.Run()
		return err
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := renderqueue.Dispatch(msg); ok {
		return a, cmd
	}

	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.screen.Resize(m.Height, m.Width)
		return a, nil
	case tea.KeyMsg:
		a.screen.feedKey(decodeKey(m))
		return a, nil
	case refreshMsg:
		return a, nil
	}
	return a, nil
}

func (a *App) View() string {
	a.screen.mu.Lock()
	defer a.screen.mu.Unlock()

	var b strings.Builder
	for y := 0; y < a.screen.rows; y++ {
		for x := 0; x < a.screen.cols; x++ {
			c := a.screen.grid[y][x]
			b.WriteString(renderCell(c))
		}
		if y < a.screen.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderCell(c cell) string {
	if c.attr == 0 && c.colorPair == 0 {
		return string(c.r)
	}
	style := lipgloss.NewStyle()
	if c.attr&domain.AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.attr&domain.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if c.attr&domain.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if c.attr&domain.AttrDim != 0 {
		style = style.Faint(true)
	}
	return style.Render(string(c.r))
}

// decodeKey turns a bubbletea key event into the domain.Key vocabulary the
// core's keymap dispatcher consumes: printable runes pass through Rune,
// everything else (arrows, function keys, ctrl-combos) becomes a Name.
func decodeKey(m tea.KeyMsg) domain.Key {
	if m.Type == tea.KeyRunes && len(m.Runes) == 1 {
		return domain.Key{Rune: m.Runes[0]}
	}
	switch m.Type {
	case tea.KeyEnter:
		return domain.Key{Rune: '\n'}
	case tea.KeyEsc:
		return domain.Key{Rune: '\x1b'}
	case tea.KeySpace:
		return domain.Key{Rune: ' '}
	case tea.KeyBackspace:
		return domain.Key{Name: "backspace"}
	case tea.KeyTab:
		return domain.Key{Name: "tab"}
	case tea.KeyUp:
		return domain.Key{Name: "up"}
	case tea.KeyDown:
		return domain.Key{Name: "down"}
	case tea.KeyLeft:
		return domain.Key{Name: "left"}
	case tea.KeyRight:
		return domain.Key{Name: "right"}
	case tea.KeyCtrlC:
		return domain.Key{Name: "ctrl+c"}
	default:
		return domain.Key{Name: m.String()}
	}
}

var _ tea.Model = (*App)(nil)
