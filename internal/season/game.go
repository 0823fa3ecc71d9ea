package season

import (
	"fmt"
	"sort"
)

// Tie is the winner value when both sides score the same.
const Tie = "TIE"

// Game is a single matchup between two teams in one week. Winners are
// determined at construction by strict point comparison and never change.
type Game struct {
	Year   int
	Week   int
	Number int

	// Teams maps each side's team name to its week result. Always exactly two.
	Teams map[string]TeamWeekResult

	ActualWinner  string
	OptimumWinner string
}

// NewGame builds a game from its two sides. A game with anything other than
// exactly two teams is malformed and rejected.
func NewGame(year, week, number int, teams map[string]TeamWeekResult) (*Game, error) {
	if len(teams) != 2 {
		return nil, fmt.Errorf("game %d/%d/%d: expected 2 teams, got %d: %w",
			year, week, number, len(teams), ErrGameShape)
	}

	g := &Game{Year: year, Week: week, Number: number, Teams: teams}

	names := g.TeamNames()
	a, b := teams[names[0]], teams[names[1]]

	g.ActualWinner = winner(names[0], a.ActualPoints, names[1], b.ActualPoints)
	g.OptimumWinner = winner(names[0], a.OptimumPoints, names[1], b.OptimumPoints)

	return g, nil
}

func winner(name1 string, pts1 float64, name2 string, pts2 float64) string {
	switch {
	case pts1 > pts2:
		return name1
	case pts2 > pts1:
		return name2
	default:
		return Tie
	}
}

// TeamNames returns the two side names in a stable (sorted) order.
func (g *Game) TeamNames() []string {
	names := make([]string, 0, len(g.Teams))
	for name := range g.Teams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Opponent returns the other side's name.
func (g *Game) Opponent(name string) string {
	for _, n := range g.TeamNames() {
		if n != name {
			return n
		}
	}
	return ""
}
