package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"strings"
)

// Cell is the state of a single board position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

const (
	cellCharAlive = 'X'
	cellCharDead  = '-'
)

// String returns the text-board character for the cell
func (c Cell) String() string {
	if c == Alive {
		return string(cellCharAlive)
	}
	return string(cellCharDead)
}

// CellFromChar maps a text-board character to a cell. Only 'X' is alive.
func CellFromChar(ch byte) Cell {
	if ch == cellCharAlive {
		return Alive
	}
	return Dead
}

// Board is a fixed-size rows x cols grid of cells, indexed cells[row][col]
type Board struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewBoard creates an all-dead board with the specified dimensions
func NewBoard(rows, cols int) *Board {
	b := &Board{}
	b.reset(rows, cols)
	return b
}

// BoardFromRows builds a board from text rows of equal length, 'X' marking live cells
func BoardFromRows(rows ...string) *Board {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	b := NewBoard(len(rows), cols)
	for r, line := range rows {
		for c := 0; c < cols && c < len(line); c++ {
			b.cells[r][c] = CellFromChar(line[c])
		}
	}
	return b
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns
func (b *Board) Cols() int {
	return b.cols
}

// reset resizes the board to new dimensions with every cell dead
func (b *Board) reset(rows, cols int) {
	b.rows = max(rows, 0)
	b.cols = max(cols, 0)

	if len(b.cells) != b.rows {
		b.cells = make([][]Cell, b.rows)
	}
	for i := range b.cells {
		if len(b.cells[i]) != b.cols {
			b.cells[i] = make([]Cell, b.cols)
		} else {
			clear(b.cells[i])
		}
	}
}

// Clear kills every cell
func (b *Board) Clear() {
	for r := range b.rows {
		clear(b.cells[r])
	}
}

// InBounds reports whether (row, col) addresses a cell of the board
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Set sets a cell state; out of range coordinates are ignored
func (b *Board) Set(row, col int, cell Cell) {
	if b.InBounds(row, col) {
		b.cells[row][col] = cell
	}
}

// Get returns the state of a cell; out of range coordinates are dead
func (b *Board) Get(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Dead
	}
	return b.cells[row][col]
}

// IsAlive reports whether the cell at (row, col) is alive
func (b *Board) IsAlive(row, col int) bool {
	return b.Get(row, col) == Alive
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	out := NewBoard(b.rows, b.cols)
	for r := range b.rows {
		copy(out.cells[r], b.cells[r])
	}
	return out
}

// Equal reports whether both boards have the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for r := range b.rows {
		for c := range b.cols {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// CountAlive returns the total number of living cells
func (b *Board) CountAlive() (count int) {
	for r := range b.rows {
		for c := range b.cols {
			if b.cells[r][c] == Alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 hash of the dimensions and cell states
func (b *Board) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", b.rows, b.cols)
	for r := range b.rows {
		for c := range b.cols {
			h.Write([]byte{byte(b.cells[r][c])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the board as text rows of 'X' and '-'
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for r := range b.rows {
		for c := range b.cols {
			if b.cells[r][c] == Alive {
				sb.WriteByte(cellCharAlive)
			} else {
				sb.WriteByte(cellCharDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Randomize sets every cell alive with probability density
func (b *Board) Randomize(rng *rand.Rand, density float64) {
	for r := range b.rows {
		for c := range b.cols {
			if rng.Float64() < density {
				b.cells[r][c] = Alive
			} else {
				b.cells[r][c] = Dead
			}
		}
	}
}

// AddGlider adds a glider pattern with its top-left corner at (startRow, startCol)
func (b *Board) AddGlider(startRow, startCol int) {
	pattern := []string{
		"-X-",
		"--X",
		"XXX",
	}

	for r, line := range pattern {
		for c := range len(line) {
			b.Set(startRow+r, startCol+c, CellFromChar(line[c]))
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator starting at (startRow, startCol)
func (b *Board) AddBlinker(startRow, startCol int) {
	b.Set(startRow, startCol, Alive)
	b.Set(startRow, startCol+1, Alive)
	b.Set(startRow, startCol+2, Alive)
}
