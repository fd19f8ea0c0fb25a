// Package loader reads and writes text boards and generates random ones.
//
// A text board is two lines holding the row and column counts followed by one
// line per row, where 'X' marks a live cell and any other character a dead one.
// Lines after the last row are ignored.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Load reads a text board
func Load(r io.Reader) (*model.Board, error) {
	scanner := bufio.NewScanner(r)

	rows, err := readDimension(scanner, "rows")
	if err != nil {
		return nil, err
	}
	cols, err := readDimension(scanner, "cols")
	if err != nil {
		return nil, err
	}

	board := model.NewBoard(rows, cols)
	for row := range rows {
		if !scanner.Scan() {
			if err = scanner.Err(); err != nil {
				return nil, errors.Wrapf(err, "[Load] failed to read row %d", row)
			}
			return nil, errors.Errorf("[Load] expected %d rows, found %d", rows, row)
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) < cols {
			return nil, errors.Errorf("[Load] row %d has %d cells, expected %d", row, len(line), cols)
		}
		for col := range cols {
			board.Set(row, col, model.CellFromChar(line[col]))
		}
	}

	return board, nil
}

func readDimension(scanner *bufio.Scanner, name string) (int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, errors.Wrapf(err, "[readDimension] failed to read %s", name)
		}
		return 0, errors.Errorf("[readDimension] missing %s line", name)
	}

	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, errors.Wrapf(err, "[readDimension] invalid %s", name)
	}
	if n < 0 {
		return 0, errors.Errorf("[readDimension] %s must not be negative, got %d", name, n)
	}
	return n, nil
}

// LoadFile reads a text board from a file
func LoadFile(path string) (*model.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to open file: %+v", path)
	}
	defer f.Close()

	board, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to load board from file: %+v", path)
	}
	return board, nil
}

// Save writes b in the text board format
func Save(w io.Writer, b *model.Board) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", b.Rows(), b.Cols())
	bw.WriteString(b.String())
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Save] failed to write board")
	}
	return nil
}

// SaveFile writes b to a file in the text board format
func SaveFile(path string, b *model.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[SaveFile] failed to create file: %+v", path)
	}
	if err = Save(f, b); err != nil {
		f.Close()
		return errors.Wrapf(err, "[SaveFile] failed to save board to file: %+v", path)
	}
	return errors.Wrapf(f.Close(), "[SaveFile] failed to close file: %+v", path)
}

// IsRandomName reports whether a board name asks for a random board
func IsRandomName(name string) bool {
	return name == "random" || name == "Random"
}

// Random creates a board with rows and cols drawn from [1, maxSize], each cell
// alive with probability density
func Random(rng *rand.Rand, maxSize int, density float64) *model.Board {
	maxSize = max(maxSize, 1)
	rows := rng.Intn(maxSize) + 1
	cols := rng.Intn(maxSize) + 1

	board := model.NewBoard(rows, cols)
	board.Randomize(rng, density)
	return board
}
