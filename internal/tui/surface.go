// Package tui is the reference domain.Surface adapter: a bubbletea
// tea.Program driving an in-memory character grid that Surface's
// imperative, curses-style calls (Move/Addstr/Refresh) mutate, and that
// the program's View renders to a string each frame. Key input flows the
// other way: bubbletea's tea.KeyMsg arrives on the program's Update and is
// decoded into a domain.Key, then handed to whichever goroutine is
// blocked in GetWch/Getch through a small buffered channel.
package tui

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paul-nameless/tg/internal/domain"
)

type cell struct {
	r         rune
	attr      domain.Attr
	colorPair int
}

// Screen implements domain.Surface on top of a tea.Program. The zero value
// is not usable; construct with NewScreen.
type Screen struct {
	mu   sync.Mutex
	rows int
	cols int
	grid [][]cell

	cy, cx int // cursor position for the next Addstr/Insstr

	colorPairs map[[2]int]int
	nextPair   int

	keys chan domain.Key

	program *tea.Program
}

// NewScreen creates an empty rows×cols grid. The caller wires program in
// afterward via SetProgram once the tea.Program exists (the program needs
// the Screen as its Model, so there is a brief construction cycle).
func NewScreen(rows, cols int) *Screen {
	s := &Screen{
		colorPairs: make(map[[2]int]int),
		keys:       make(chan domain.Key, 64),
	}
	s.Resize(rows, cols)
	return s
}

// SetProgram wires the tea.Program this Screen's Refresh calls will drive.
func (s *Screen) SetProgram(p *tea.Program) { s.program = p }

func (s *Screen) Resize(rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	s.rows, s.cols = rows, cols
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}
	s.grid = grid
	if s.cy >= rows {
		s.cy = rows - 1
	}
	if s.cx >= cols {
		s.cx = cols - 1
	}
}

func (s *Screen) Move(y, x int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cy, s.cx = y, x
}

func (s *Screen) Erase() { s.Clear() }

func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for y := range s.grid {
		for x := range s.grid[y] {
			s.grid[y][x] = cell{r: ' '}
		}
	}
}

func (s *Screen) Addstr(str string) {
	s.AddstrAttr(str, 0, 0)
}

// Insstr behaves like Addstr on this grid-backed surface: there is no
// separate "insert without overwrite" mode since each frame is redrawn
// from scratch.
func (s *Screen) Insstr(str string) { s.Addstr(str) }

func (s *Screen) AddstrAttr(str string, attr domain.Attr, colorPair int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cy < 0 || s.cy >= s.rows {
		return
	}
	x := s.cx
	for _, r := range str {
		if x < 0 || x >= s.cols {
			x++
			continue
		}
		s.grid[s.cy][x] = cell{r: r, attr: attr, colorPair: colorPair}
		x++
	}
	s.cx = x
}

func (s *Screen) Vline(y, x, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		yy := y + i
		if yy < 0 || yy >= s.rows || x < 0 || x >= s.cols {
			continue
		}
		s.grid[yy][x] = cell{r: '│'}
	}
}

// Refresh pushes the current grid to the screen by asking bubbletea to
// re-render. NoutRefresh and Refresh are identical here since there is no
// separate "stage changes, then flush" distinction in the Elm loop: every
// Send triggers exactly one View call.
func (s *Screen) Refresh() {
	if s.program != nil {
		s.program.Send(refreshMsg{})
	}
}

func (s *Screen) NoutRefresh() { s.Refresh() }

// GetWch and Getch both block until a key arrives on the internal channel
// fed by Update's tea.KeyMsg handling; Getch is GetWch without a cursor
// hint and returns the same decoded key.
func (s *Screen) GetWch(_, _ int) (domain.Key, error) {
	k, ok := <-s.keys
	if !ok {
		return domain.Key{}, fmt.Errorf("tui: screen closed")
	}
	return k, nil
}

func (s *Screen) Getch() (domain.Key, error) {
	return s.GetWch(0, 0)
}

func (s *Screen) GetMaxYX() (rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows, s.cols
}

// Keypad is a no-op: bubbletea already decodes special keys for us.
func (s *Screen) Keypad(on bool) {}

func (s *Screen) ColorPair(fg, bg int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]int{fg, bg}
	if id, ok := s.colorPairs[key]; ok {
		return id
	}
	s.nextPair++
	s.colorPairs[key] = s.nextPair
	return s.nextPair
}

// feedKey is called from Update when a tea.KeyMsg arrives, decoding it into
// a domain.Key and delivering it to whichever goroutine is blocked in
// GetWch/Getch.
func (s *Screen) feedKey(k domain.Key) {
	select {
	case s.keys <- k:
	default:
		// input thread fell behind; drop rather than block the draw loop.
	}
}

// Close unblocks any pending GetWch/Getch with an error, used on shutdown.
func (s *Screen) Close() { close(s.keys) }

var _ domain.Surface = (*Screen)(nil)
