package season

import "sort"

// The legal lineup shape is fixed: 1 QB, 2 RB, 2 WR, 1 RB/WR flex, 1 TE,
// 1 D/ST, 1 K. Leagues with other shapes are not supported.

// TeamWeekResult holds one team's score lines for one week, with the points
// they actually scored and the points an optimally set lineup would have
// scored. Everything is computed at construction and immutable afterwards.
type TeamWeekResult struct {
	Week    int
	Players []PlayerScoreLine

	ActualPoints  float64
	BenchPoints   float64
	IRPoints      float64
	OptimumPoints float64
}

// NewTeamWeekResult computes the actual, bench, IR, and optimum point totals
// for the given score lines.
func NewTeamWeekResult(week int, players []PlayerScoreLine) TeamWeekResult {
	r := TeamWeekResult{Week: week, Players: players}
	for _, p := range players {
		switch {
		case p.Slot == SlotBench:
			r.BenchPoints += p.Points
		case p.Slot == SlotIR:
			r.IRPoints += p.Points
		default:
			r.ActualPoints += p.Points
		}
	}
	r.OptimumPoints = optimumPoints(players)
	return r
}

// optimumPoints is the maximum score obtainable by re-slotting the roster
// into the legal lineup shape, selecting by position rather than slot.
// Take the single best QB, TE, D/ST, and K, the top two RBs, the top two
// WRs, and the better of the third RB and third WR for the flex. A position
// with no players contributes nothing. Slot coupling is limited to the one
// flex, so a constrained top-k selection is exact here.
func optimumPoints(players []PlayerScoreLine) float64 {
	byPos := make(map[Position][]float64)
	for _, p := range players {
		byPos[p.Position] = append(byPos[p.Position], p.Points)
	}
	for _, pts := range byPos {
		sort.Sort(sort.Reverse(sort.Float64Slice(pts)))
	}

	var total float64
	total += topN(byPos[PosQB], 1)
	total += topN(byPos[PosTE], 1)
	total += topN(byPos[PosDST], 1)
	total += topN(byPos[PosK], 1)
	total += topN(byPos[PosRB], 2)
	total += topN(byPos[PosWR], 2)

	// Flex: better of the 3rd-best RB and 3rd-best WR.
	thirdRB, haveRB := nth(byPos[PosRB], 2)
	thirdWR, haveWR := nth(byPos[PosWR], 2)
	switch {
	case haveRB && haveWR:
		total += max(thirdRB, thirdWR)
	case haveRB:
		total += thirdRB
	case haveWR:
		total += thirdWR
	}

	return total
}

// topN sums the first n entries of a descending-sorted points slice.
func topN(pts []float64, n int) float64 {
	var sum float64
	for i := 0; i < n && i < len(pts); i++ {
		sum += pts[i]
	}
	return sum
}

func nth(pts []float64, i int) (float64, bool) {
	if i >= len(pts) {
		return 0, false
	}
	return pts[i], true
}
