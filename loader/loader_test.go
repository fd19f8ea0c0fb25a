package loader

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

var simpleBoard = model.BoardFromRows(
	"---------",
	"---------",
	"---XXX---",
	"---------",
	"---------",
)

func TestLoadFile(t *testing.T) {
	tests := []struct {
		file string
		want *model.Board
	}{
		{file: "simple.txt", want: simpleBoard},
		{file: "format.txt", want: simpleBoard},
		{file: "empty.txt", want: model.NewBoard(0, 0)},
		{file: "stableplateau.txt", want: model.BoardFromRows(
			"--------XX",
			"--------XX",
			"----------",
			"-----X----",
			"----X-X---",
			"----X-X---",
			"-----X----",
			"----------",
			"XX--------",
			"XX--------",
		)},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := LoadFile(filepath.Join("testdata", tt.file))
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got\n%swant\n%s", got, tt.want)
			}
		})
	}
}

func TestLoadedBoardsTick(t *testing.T) {
	tests := []struct {
		file, after string
		wrap        bool
	}{
		{file: "simple.txt", after: "simple-after1.txt"},
		{file: "stableplateau.txt", after: "stableplateau.txt"},
		{file: "empty.txt", after: "empty.txt", wrap: true},
	}

	for _, tt := range tests {
		board, err := LoadFile(filepath.Join("testdata", tt.file))
		if err != nil {
			t.Fatalf("LoadFile(%s): %v", tt.file, err)
		}
		want, err := LoadFile(filepath.Join("testdata", tt.after))
		if err != nil {
			t.Fatalf("LoadFile(%s): %v", tt.after, err)
		}
		if got := model.Tick(board, tt.wrap); !got.Equal(want) {
			t.Errorf("%s: got\n%swant\n%s", tt.file, got, want)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "missing cols", input: "3\n"},
		{name: "bad rows", input: "three\n3\n"},
		{name: "negative cols", input: "1\n-2\n"},
		{name: "too few rows", input: "3\n2\nXX\n--\n"},
		{name: "short row", input: "2\n3\nXXX\nX\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want a not-exist error", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	board := model.NewBoard(7, 12)
	board.Randomize(rand.New(rand.NewSource(8)), 0.4)

	var buf bytes.Buffer
	if err := Save(&buf, board); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "7\n12\n") {
		t.Errorf("unexpected header in %q", buf.String())
	}

	got, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Equal(board) {
		t.Errorf("got\n%swant\n%s", got, board)
	}

	path := filepath.Join(t.TempDir(), "board.txt")
	if err = SaveFile(path, board); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if got, err = LoadFile(path); err != nil || !got.Equal(board) {
		t.Errorf("file round trip failed: %v", err)
	}
}

func TestIsRandomName(t *testing.T) {
	for name, want := range map[string]bool{"random": true, "Random": true, "RANDOM": false, "simple.txt": false} {
		if got := IsRandomName(name); got != want {
			t.Errorf("IsRandomName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for range 100 {
		b := Random(rng, 50, 0.5)
		if b.Rows() < 1 || b.Rows() > 50 || b.Cols() < 1 || b.Cols() > 50 {
			t.Fatalf("random board is %dx%d, want within 1..50", b.Rows(), b.Cols())
		}
	}

	if b := Random(rng, 0, 1); b.Rows() != 1 || b.Cols() != 1 || b.CountAlive() != 1 {
		t.Errorf("max size below 1 should give a full 1x1 board, got\n%s", b)
	}
	if b := Random(rng, 10, 0); b.CountAlive() != 0 {
		t.Errorf("density 0 should give no live cells, got %d", b.CountAlive())
	}
}
