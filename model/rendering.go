package model

import (
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	macosClearCmd = "clear"

	// each cell is two screen columns wide so it looks square
	cellScreenWidth = 2
)

var (
	styleAlive = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleDead  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// Renderer displays boards. previous, when non-nil, is the board shown before
// and lets a renderer redraw only what changed.
type Renderer interface {
	Display(b, previous *Board) error
	Clear() error
}

// TerminalRenderer prints boards as text rows of 'X' and '-'
type TerminalRenderer struct {
	Out io.Writer // defaults to os.Stdout
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display writes the whole board; the previous board is ignored
func (r *TerminalRenderer) Display(b, _ *Board) error {
	if _, err := io.WriteString(r.out(), b.String()); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Display] failed to write board")
	}
	return nil
}

// Clear clears the terminal screen when rendering to stdout
func (r *TerminalRenderer) Clear() error {
	if r.Out != nil && r.Out != os.Stdout {
		return nil
	}
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Clear] failed to clear terminal")
	}
	return nil
}

// ScreenRenderer draws boards on a tcell screen
type ScreenRenderer struct {
	screen   tcell.Screen
	quit     chan struct{}
	quitOnce sync.Once
	done     chan struct{}
	fini     sync.Once
}

// NewScreenRenderer initializes the terminal screen and starts watching for quit keys
func NewScreenRenderer() (*ScreenRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to create screen")
	}
	return NewScreenRendererWith(screen)
}

// NewScreenRendererWith wraps an existing, uninitialized screen
func NewScreenRendererWith(screen tcell.Screen) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRendererWith] failed to initialize screen")
	}
	screen.SetStyle(styleDead)
	screen.Clear()

	r := &ScreenRenderer{
		screen: screen,
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go r.pollEvents()
	return r, nil
}

func (r *ScreenRenderer) pollEvents() {
	defer close(r.done)
	for {
		// PollEvent returns nil once the screen is finalized
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		if keyEv, ok := ev.(*tcell.EventKey); ok {
			if keyEv.Key() == tcell.KeyEscape || keyEv.Key() == tcell.KeyCtrlC || keyEv.Rune() == 'q' {
				r.quitOnce.Do(func() { close(r.quit) })
			}
		}
	}
}

// Quit is closed once the user presses q, Esc or Ctrl-C on the screen
func (r *ScreenRenderer) Quit() <-chan struct{} {
	return r.quit
}

// Interrupted reports whether the user asked to stop from the screen
func (r *ScreenRenderer) Interrupted() bool {
	select {
	case <-r.quit:
		return true
	default:
		return false
	}
}

// Display draws b. Cells dead in both b and previous are left untouched;
// a nil previous or a dimension change redraws everything.
func (r *ScreenRenderer) Display(b, previous *Board) error {
	full := previous == nil || previous.rows != b.rows || previous.cols != b.cols
	if full {
		r.screen.Clear()
	}

	for row := range b.rows {
		for col := range b.cols {
			cell := b.cells[row][col]
			if !full && cell == Dead && previous.cells[row][col] == Dead {
				continue
			}
			r.drawCell(row, col, cell)
		}
	}
	r.screen.Show()
	return nil
}

func (r *ScreenRenderer) drawCell(row, col int, cell Cell) {
	style := styleDead
	if cell == Alive {
		style = styleAlive
	}
	for i := range cellScreenWidth {
		r.screen.SetContent(col*cellScreenWidth+i, row, ' ', nil, style)
	}
}

// Clear blanks the screen
func (r *ScreenRenderer) Clear() error {
	r.screen.Clear()
	r.screen.Show()
	return nil
}

// Close restores the terminal; repeated calls are no-ops
func (r *ScreenRenderer) Close() {
	r.fini.Do(func() {
		r.screen.Fini()
		<-r.done
	})
}
