package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/loader"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	promptFileName      = "Input a valid file name.\n"
	promptInvalidFile   = "Invalid file name. Please input a valid file name\n"
	promptAction        = "a)nimate, t)ick, q)uit?\n"
	promptWrap          = "Do you want to wrap (y/n)?\n"
	promptYesOrNo       = "Please type a word that starts with 'Y' or 'N'.\n"
	promptInterface     = "Do you want g)raphical or t)ext-based interface?\n"
	promptBadInterface  = "Invalid input. Please input either t for text-based or g for graphical interface.\n"
	promptFrames        = "How many frames?\n"
	promptFrameDelay    = "How many milliseconds per frame?\n"
	promptIllegalNumber = "Illegal integer format. Try again.\n"

	actionAnimate = "a"
	actionTick    = "t"
	actionQuit    = "q"

	interfaceGraphical = "g"
	interfaceText      = "t"
)

// errInterrupted ends a session when a signal arrives at a prompt
var errInterrupted = errors.New("interrupted")

type scanResult struct {
	line string
	err  error
}

// prompter reads line-based answers to questions written to out.
// Input is only read while a prompt is waiting, so a graphical screen owns the
// terminal in between.
type prompter struct {
	scanner  *bufio.Scanner
	out      io.Writer
	stop     <-chan os.Signal
	requests chan struct{}
	lines    chan scanResult
	pending  bool
	start    sync.Once
}

func newPrompter(in io.Reader, out io.Writer, stop <-chan os.Signal) *prompter {
	return &prompter{
		scanner:  bufio.NewScanner(in),
		out:      out,
		stop:     stop,
		requests: make(chan struct{}),
		lines:    make(chan scanResult, 1),
	}
}

func (p *prompter) scanLines() {
	for range p.requests {
		if p.scanner.Scan() {
			p.lines <- scanResult{line: p.scanner.Text()}
			continue
		}
		err := io.EOF
		if scanErr := p.scanner.Err(); scanErr != nil {
			err = errors.Wrap(scanErr, "[scanLines] failed to read input")
		}
		p.lines <- scanResult{err: err}
	}
}

// getLine prints prompt and returns the next trimmed input line.
// It returns io.EOF at the end of input and errInterrupted on a signal.
func (p *prompter) getLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	p.start.Do(func() { go p.scanLines() })

	// a read abandoned by a signal is still in flight; reuse it
	if !p.pending {
		p.requests <- struct{}{}
		p.pending = true
	}

	select {
	case res := <-p.lines:
		p.pending = false
		return strings.TrimSpace(res.line), res.err
	case <-p.stop:
		return "", errInterrupted
	}
}

// getChoice reprompts until the answer is one of choices
func (p *prompter) getChoice(prompt, reprompt string, choices ...string) (string, error) {
	line, err := p.getLine(prompt)
	for err == nil {
		for _, choice := range choices {
			if line == choice {
				return line, nil
			}
		}
		line, err = p.getLine(reprompt)
	}
	return "", err
}

// getYesOrNo accepts any answer starting with y or n, ignoring case
func (p *prompter) getYesOrNo(prompt string) (bool, error) {
	line, err := p.getLine(prompt)
	for err == nil {
		if line != "" {
			switch strings.ToLower(line[:1]) {
			case "y":
				return true, nil
			case "n":
				return false, nil
			}
		}
		line, err = p.getLine(promptYesOrNo)
	}
	return false, err
}

// getInteger accepts any real number within the 32-bit integer range and truncates it
func (p *prompter) getInteger(prompt string) (int, error) {
	line, err := p.getLine(prompt)
	for err == nil {
		v, parseErr := strconv.ParseFloat(line, 64)
		if parseErr == nil && !math.IsNaN(v) && v >= math.MinInt32 && v <= math.MaxInt32 {
			return int(v), nil
		}
		line, err = p.getLine(promptIllegalNumber)
	}
	return 0, err
}

// screenFactory opens the graphical display
type screenFactory func() (*model.ScreenRenderer, error)

// game holds the state of one interactive session
type game struct {
	config    utils.Config
	rng       *rand.Rand
	prompt    *prompter
	out       io.Writer
	pool      *model.BoardPool
	board     *model.Board
	newScreen screenFactory
	stop      <-chan os.Signal
}

// newGame sets up the session state
func newGame(config utils.Config, rng *rand.Rand, in io.Reader, out io.Writer, stop <-chan os.Signal) *game {
	var pool *model.BoardPool
	if config.UseMemoryPool {
		pool = model.NewBoardPool()
	}

	return &game{
		config:    config,
		rng:       rng,
		prompt:    newPrompter(in, out, stop),
		out:       out,
		pool:      pool,
		newScreen: model.NewScreenRenderer,
		stop:      stop,
	}
}

// loadBoard loads a named board file from the boards directory, or a random board
func (g *game) loadBoard(name string) (*model.Board, error) {
	if loader.IsRandomName(name) {
		return loader.Random(g.rng, g.config.RandomMaxSize, g.config.RandomDensity), nil
	}
	board, err := loader.LoadFile(filepath.Join(g.config.BoardsDir, name))
	if err != nil {
		return nil, errors.Wrapf(err, "[loadBoard] failed to load board: %+v", name)
	}
	return board, nil
}

// chooseBoard prompts for a board until one loads
func (g *game) chooseBoard() error {
	line, err := g.prompt.getLine(promptFileName)
	for err == nil {
		var board *model.Board
		if board, err = g.loadBoard(line); err == nil {
			g.board = board
			return nil
		}
		line, err = g.prompt.getLine(promptInvalidFile)
	}
	return err
}

// engine builds the generation engine for one command
func (g *game) engine(wrap bool) *model.Engine {
	return &model.Engine{
		Wrap:     wrap,
		Parallel: g.config.UseParallel,
		Pool:     g.pool,
	}
}

// run is the menu loop; it returns nil when the user quits.
// A signal at a prompt ends the session, during an animation it only stops the animation.
func (g *game) run() error {
	for {
		action, err := g.prompt.getChoice(promptAction, promptAction, actionAnimate, actionTick, actionQuit)
		if err != nil {
			return err
		}
		if action == actionQuit {
			return nil
		}

		wrap, err := g.prompt.getYesOrNo(promptWrap)
		if err != nil {
			return err
		}
		display, err := g.prompt.getChoice(promptInterface, promptBadInterface, interfaceGraphical, interfaceText)
		if err != nil {
			return err
		}

		if action == actionTick {
			err = g.tickOnce(wrap, display)
		} else {
			err = g.animate(wrap, display)
		}
		if err != nil {
			return err
		}
	}
}

// advance replaces the current board with its successor and returns the old one
func (g *game) advance(engine *model.Engine) *model.Board {
	previous := g.board
	g.board = engine.Next(previous)
	return previous
}

// tickOnce advances one generation and displays it
func (g *game) tickOnce(wrap bool, display string) error {
	engine := g.engine(wrap)
	engine.Release(g.advance(engine))

	if display == interfaceText {
		renderer := &model.TerminalRenderer{Out: g.out}
		return renderer.Display(g.board, nil)
	}

	screen, err := g.newScreen()
	if err != nil {
		return errors.Wrap(err, "[tickOnce] failed to open graphical display")
	}
	defer screen.Close()

	if err = screen.Display(g.board, nil); err != nil {
		return err
	}
	g.waitForQuit(screen)
	return nil
}

// waitForQuit keeps the screen up until the user closes it or a signal arrives
func (g *game) waitForQuit(screen *model.ScreenRenderer) {
	select {
	case <-screen.Quit():
	case <-g.stop:
	}
}

// animate asks for frame count and pacing, then ticks and redraws frame by frame
func (g *game) animate(wrap bool, display string) error {
	frames, err := g.prompt.getInteger(promptFrames)
	if err != nil {
		return err
	}
	speed, err := g.prompt.getInteger(promptFrameDelay)
	if err != nil {
		return err
	}
	frameRate := time.Duration(speed) * time.Millisecond
	if frameRate <= 0 {
		frameRate = g.config.DefaultFrameRate
	}
	fmt.Fprintf(g.out, "(%d new generations are shown, with screen clear and %dms pause before each)\n\n",
		frames, frameRate.Milliseconds())

	var (
		renderer model.Renderer
		screen   *model.ScreenRenderer
	)
	if display == interfaceGraphical {
		if screen, err = g.newScreen(); err != nil {
			return errors.Wrap(err, "[animate] failed to open graphical display")
		}
		defer screen.Close()
		renderer = screen
	} else {
		renderer = &model.TerminalRenderer{Out: g.out}
	}

	engine := g.engine(wrap)
	stats := utils.NewStats()
	history := &model.History{}
	history.Record(g.board)

	var (
		shown   int
		stable  bool
		stopped bool
	)
	for frame := range frames {
		frameStart := time.Now()

		if !g.pause(frameRate, screen) {
			stopped = true
			break
		}
		previous := g.advance(engine)

		if err = renderer.Clear(); err != nil {
			engine.Release(previous)
			return err
		}
		// a fresh display has nothing to diff against
		shownPrevious := previous
		if frame == 0 {
			shownPrevious = nil
		}
		err = renderer.Display(g.board, shownPrevious)
		engine.Release(previous)
		if err != nil {
			return err
		}

		shown = frame + 1
		stats.Update(shown, g.board.CountAlive(), time.Since(frameStart))

		if g.config.StopWhenStable && history.IsStagnant(g.board) {
			stable = true
			break
		}
		history.Record(g.board)
	}

	if screen != nil {
		if shown > 0 && !stopped && !screen.Interrupted() {
			g.waitForQuit(screen)
		}
		screen.Close()
	}

	g.report(shown, stable, stats)
	return nil
}

// pause waits for d; it returns false when the user or a signal stopped the animation
func (g *game) pause(d time.Duration, screen *model.ScreenRenderer) bool {
	var quit <-chan struct{}
	if screen != nil {
		quit = screen.Quit()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-quit:
		return false
	case <-g.stop:
		return false
	}
}

// report prints the animation summary
func (g *game) report(shown int, stable bool, stats *utils.Stats) {
	if stable {
		fmt.Fprintf(g.out, "Board is stable after %d generations\n", shown)
	}
	if !g.config.ShowStats {
		return
	}
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Avg Pop: %.1f | %.1f gen/sec | Runtime: %.1fs\n",
		stats.TotalGenerations, g.board.CountAlive(), stats.AveragePopulation,
		stats.GenerationsPerSecond, stats.Runtime().Seconds())
}
