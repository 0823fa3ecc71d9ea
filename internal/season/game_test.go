package season

import (
	"errors"
	"testing"
)

func twoTeamGame(t *testing.T, aPoints, bPoints []PlayerScoreLine) *Game {
	t.Helper()
	g, err := NewGame(2011, 1, 1, map[string]TeamWeekResult{
		"Team A": NewTeamWeekResult(1, aPoints),
		"Team B": NewTeamWeekResult(1, bPoints),
	})
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	return g
}

func TestGameWinners(t *testing.T) {
	g := twoTeamGame(t,
		[]PlayerScoreLine{
			line("1", "A QB", PosQB, SlotQB, 1, 20),
			line("2", "A QB2", PosQB, SlotBench, 1, 30),
		},
		[]PlayerScoreLine{
			line("3", "B QB", PosQB, SlotQB, 1, 25),
		},
	)

	// A started 20 against B's 25, but A's benched QB would have won it.
	if g.ActualWinner != "Team B" {
		t.Errorf("ActualWinner = %q, want Team B", g.ActualWinner)
	}
	if g.OptimumWinner != "Team A" {
		t.Errorf("OptimumWinner = %q, want Team A", g.OptimumWinner)
	}
}

func TestGameWinners_Tie(t *testing.T) {
	g := twoTeamGame(t,
		[]PlayerScoreLine{line("1", "A QB", PosQB, SlotQB, 1, 20)},
		[]PlayerScoreLine{line("2", "B QB", PosQB, SlotQB, 1, 20)},
	)

	if g.ActualWinner != Tie {
		t.Errorf("ActualWinner = %q, want %q", g.ActualWinner, Tie)
	}
	if g.OptimumWinner != Tie {
		t.Errorf("OptimumWinner = %q, want %q", g.OptimumWinner, Tie)
	}
}

func TestNewGame_RejectsBadShape(t *testing.T) {
	_, err := NewGame(2011, 1, 1, map[string]TeamWeekResult{
		"Only Team": NewTeamWeekResult(1, nil),
	})
	if !errors.Is(err, ErrGameShape) {
		t.Errorf("NewGame() with one team error = %v, want ErrGameShape", err)
	}
}

func TestGameOpponent(t *testing.T) {
	g := twoTeamGame(t,
		[]PlayerScoreLine{line("1", "A QB", PosQB, SlotQB, 1, 1)},
		[]PlayerScoreLine{line("2", "B QB", PosQB, SlotQB, 1, 2)},
	)

	if got := g.Opponent("Team A"); got != "Team B" {
		t.Errorf("Opponent(Team A) = %q, want Team B", got)
	}
	if got := g.Opponent("Team B"); got != "Team A" {
		t.Errorf("Opponent(Team B) = %q, want Team A", got)
	}
}
