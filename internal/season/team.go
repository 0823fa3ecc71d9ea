package season

import "sort"

// Team accumulates one team's season: the record and point totals they
// actually posted, the record and totals an optimal lineup every week
// would have posted, and the classified player lines attached to them.
// All counters are mutated incrementally, once per game played.
type Team struct {
	Name string

	ActualWins   int
	ActualLosses int
	ActualTies   int

	OptimumWins   int
	OptimumLosses int
	OptimumTies   int

	ActualPointsFor      float64
	ActualPointsAgainst  float64
	OptimumPointsFor     float64
	OptimumPointsAgainst float64

	// Opposing players who beat their season average against this team,
	// kept sorted by descending margin above average.
	OpposingAboveAverage []PlayerPointsLine

	// This team's own benched players who outscored the bench threshold,
	// and starters who underscored the starter threshold, sorted by name.
	HighScoringBench   []PlayerPointsLine
	LowScoringStarters []PlayerPointsLine
}

// NewTeam creates an empty team record.
func NewTeam(name string) *Team {
	return &Team{Name: name}
}

// RecordActualPoints adds one game's actual points for and against.
func (t *Team) RecordActualPoints(pointsFor, pointsAgainst float64) {
	t.ActualPointsFor += pointsFor
	t.ActualPointsAgainst += pointsAgainst
}

// RecordOptimumPoints adds one game's optimum points for and against.
func (t *Team) RecordOptimumPoints(pointsFor, pointsAgainst float64) {
	t.OptimumPointsFor += pointsFor
	t.OptimumPointsAgainst += pointsAgainst
}

// RecordResult tallies one game's outcome on both the actual and optimum
// tracks: a win if this team won, a loss if the opponent won, a tie
// otherwise.
func (t *Team) RecordResult(actualWinner, optimumWinner, opponent string) {
	switch actualWinner {
	case t.Name:
		t.ActualWins++
	case opponent:
		t.ActualLosses++
	default:
		t.ActualTies++
	}

	switch optimumWinner {
	case t.Name:
		t.OptimumWins++
	case opponent:
		t.OptimumLosses++
	default:
		t.OptimumTies++
	}
}

// GamesPlayed is the number of games tallied into the actual record.
func (t *Team) GamesPlayed() int {
	return t.ActualWins + t.ActualLosses + t.ActualTies
}

// AddOpposingAboveAverageLine records an opposing player who scored above
// their season average against this team.
func (t *Team) AddOpposingAboveAverageLine(line PlayerPointsLine) {
	t.OpposingAboveAverage = append(t.OpposingAboveAverage, line)
	sort.SliceStable(t.OpposingAboveAverage, func(i, j int) bool {
		return t.OpposingAboveAverage[i].Margin() > t.OpposingAboveAverage[j].Margin()
	})
}

// AddHighScoringBenchLine records one of this team's own bench lines.
func (t *Team) AddHighScoringBenchLine(line PlayerPointsLine) {
	t.HighScoringBench = append(t.HighScoringBench, line)
	sort.SliceStable(t.HighScoringBench, func(i, j int) bool {
		return t.HighScoringBench[i].Name < t.HighScoringBench[j].Name
	})
}

// AddLowScoringStarterLine records one of this team's own starter lines.
func (t *Team) AddLowScoringStarterLine(line PlayerPointsLine) {
	t.LowScoringStarters = append(t.LowScoringStarters, line)
	sort.SliceStable(t.LowScoringStarters, func(i, j int) bool {
		return t.LowScoringStarters[i].Name < t.LowScoringStarters[j].Name
	})
}

// TotalOpposingPointsAboveAverage sums, over every opposing above-average
// line, how far above their own average that player scored.
func (t *Team) TotalOpposingPointsAboveAverage() float64 {
	var total float64
	for _, line := range t.OpposingAboveAverage {
		total += line.Margin()
	}
	return total
}
