package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// neighborOffsets lists the (row, col) steps to the 8 surrounding cells
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountNeighbors counts the living neighbors of (row, col), which must be in bounds.
//
// Without wrap only in-bounds positions contribute, so edge cells have fewer neighbors.
// With wrap the board is a torus: all 8 positions are evaluated with modular indices,
// and on a dimension of size 1 the neighbor index is the cell's own index.
func CountNeighbors(b *Board, row, col int, wrap bool) int {
	if wrap {
		return countNeighborsWrapped(b, row, col)
	}
	return countNeighborsBounded(b, row, col)
}

func countNeighborsWrapped(b *Board, row, col int) (count int) {
	for _, d := range neighborOffsets {
		r := (row + d[0] + b.rows) % b.rows
		c := (col + d[1] + b.cols) % b.cols
		if b.cells[r][c] == Alive {
			count++
		}
	}
	return
}

func countNeighborsBounded(b *Board, row, col int) (count int) {
	minRow := max(0, row-1)
	maxRow := min(b.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(b.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if b.cells[r][c] == Alive {
				count++
			}
		}
	}
	return
}

// Tick computes the next generation into a freshly allocated board.
// The input board is only read.
func Tick(b *Board, wrap bool) *Board {
	next := NewBoard(b.rows, b.cols)
	tickRows(b, next, 0, b.rows, wrap)
	return next
}

// tickRows writes the successor of rows [startRow, endRow) of cur into next
func tickRows(cur, next *Board, startRow, endRow int, wrap bool) {
	for r := startRow; r < endRow; r++ {
		for c := range cur.cols {
			if rules.ApplyConwayRules(CountNeighbors(cur, r, c, wrap), cur.cells[r][c] == Alive) {
				next.cells[r][c] = Alive
			} else {
				next.cells[r][c] = Dead
			}
		}
	}
}

// Engine advances boards with optional row-parallelism and buffer pooling.
// Its output is identical to Tick for the same wrap setting.
type Engine struct {
	Wrap     bool
	Parallel bool
	Workers  int // defaults to runtime.NumCPU() when <= 0
	Pool     *BoardPool
}

// Next calculates the successor of b
func (e *Engine) Next(b *Board) *Board {
	var next *Board
	if e.Pool != nil {
		next = e.Pool.Get(b.rows, b.cols)
	} else {
		next = NewBoard(b.rows, b.cols)
	}

	if !e.Parallel {
		tickRows(b, next, 0, b.rows, e.Wrap)
		return next
	}

	var (
		eg            errgroup.Group
		numWorkers    = e.workers()
		rowsPerWorker = (b.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.rows)
		)
		if startRow >= b.rows {
			break
		}

		eg.Go(func() error {
			tickRows(b, next, startRow, endRow, e.Wrap)
			return nil
		})
	}

	// workers never fail; Wait is only a barrier
	_ = eg.Wait()

	return next
}

// Release hands a board no longer referenced back to the engine's pool
func (e *Engine) Release(b *Board) {
	BoardToPool(b, e.Pool)
}

func (e *Engine) workers() int {
	if e.Workers > 0 {
		return e.Workers
	}
	return runtime.NumCPU()
}
