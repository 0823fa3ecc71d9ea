package season

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Player is the definitive season record for one player. There is exactly
// one instance per player id in a season; the registry in Season enforces
// that. It holds every weekly score line the player produced and the
// aggregates derived from them.
type Player struct {
	ID   string
	Name string

	ScoreLines []PlayerScoreLine

	TotalPoints   float64
	AveragePoints float64

	LinesAboveAverage []PlayerPointsLine
	LinesBelowAverage []PlayerPointsLine
}

// NewPlayer creates an empty player record.
func NewPlayer(id, name string) *Player {
	return &Player{ID: id, Name: name}
}

// RecordWeek appends one weekly score line to the player's history. Lines
// may arrive in any order; Analyze recomputes everything from the full set.
func (p *Player) RecordWeek(line PlayerScoreLine) {
	p.ScoreLines = append(p.ScoreLines, line)
}

// Analyze recomputes the season totals and the above/below-average
// partitions from the current history. A week that lands exactly on the
// average belongs to neither partition. Calling Analyze again with
// unchanged history yields identical results.
func (p *Player) Analyze() error {
	if len(p.ScoreLines) == 0 {
		return fmt.Errorf("player %s (%s): %w", p.ID, p.Name, ErrNoScoringHistory)
	}

	points := make([]float64, len(p.ScoreLines))
	for i, line := range p.ScoreLines {
		points[i] = line.Points
	}

	total, err := stats.Sum(points)
	if err != nil {
		return fmt.Errorf("player %s (%s): summing points: %w", p.ID, p.Name, err)
	}
	avg, err := stats.Mean(points)
	if err != nil {
		return fmt.Errorf("player %s (%s): averaging points: %w", p.ID, p.Name, err)
	}

	p.TotalPoints = total
	p.AveragePoints = avg

	p.LinesAboveAverage = nil
	p.LinesBelowAverage = nil
	for _, line := range p.ScoreLines {
		switch {
		case line.Points > p.AveragePoints:
			p.LinesAboveAverage = append(p.LinesAboveAverage, p.pointsLine(line))
		case line.Points < p.AveragePoints:
			p.LinesBelowAverage = append(p.LinesBelowAverage, p.pointsLine(line))
		}
	}

	return nil
}

// AboveAverageLine returns this player's above-average points line for the
// given week, if there is one. A player has at most one line per week.
func (p *Player) AboveAverageLine(week int) (PlayerPointsLine, bool) {
	for _, line := range p.LinesAboveAverage {
		if line.Week == week {
			return line, true
		}
	}
	return PlayerPointsLine{}, false
}

func (p *Player) pointsLine(line PlayerScoreLine) PlayerPointsLine {
	return PlayerPointsLine{
		PlayerID:      p.ID,
		Name:          p.Name,
		Week:          line.Week,
		Slot:          line.Slot,
		WeekPoints:    line.Points,
		AveragePoints: p.AveragePoints,
	}
}
