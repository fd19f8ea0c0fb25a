package rules

// ApplyConwayRules returns the next state of a cell from its live neighbor count.
// A dead cell is born with exactly 3 neighbors and a live one survives with 2 or 3 (B3/S23).
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
