package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		var (
			wantBirth    = neighbors == 3
			wantSurvival = neighbors == 2 || neighbors == 3
		)
		if got := ApplyConwayRules(neighbors, false); got != wantBirth {
			t.Errorf("dead cell with %d neighbors: got %v, want %v", neighbors, got, wantBirth)
		}
		if got := ApplyConwayRules(neighbors, true); got != wantSurvival {
			t.Errorf("live cell with %d neighbors: got %v, want %v", neighbors, got, wantSurvival)
		}
	}
}
