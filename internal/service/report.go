package service

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/omarshaarawi/hindsight/internal/season"
)

// ReportService renders the read-only season queries as text reports.
// It expects a season that has already been analyzed.
type ReportService struct {
	season *season.Season
}

func NewReportService(s *season.Season) *ReportService {
	return &ReportService{season: s}
}

// GameSummary lists every game with its actual and optimum winners and both
// sides' point totals.
func (s *ReportService) GameSummary() string {
	var sb strings.Builder
	sb.WriteString("🏈 *Game Results*\n\n")

	for _, game := range s.season.Games() {
		sb.WriteString(fmt.Sprintf("Week %d, game %d; winner actual: %s, optimum: %s\n",
			game.Week, game.Number, game.ActualWinner, game.OptimumWinner))
		for _, name := range game.TeamNames() {
			result := game.Teams[name]
			sb.WriteString(fmt.Sprintf("  %s: actual %.2f, optimum %.2f\n",
				name, result.ActualPoints, result.OptimumPoints))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// TeamPointsSummary lists each team's actual and optimum points for and
// against, with the optimum-minus-actual deltas, best optimum total first.
func (s *ReportService) TeamPointsSummary() (string, error) {
	teams, err := s.season.TeamsByOptimumPoints()
	if err != nil {
		return "", fmt.Errorf("error fetching team points: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("📊 *Team Points Summary*\n\n")
	for _, team := range teams {
		sb.WriteString(fmt.Sprintf("*%s*\n", team.Name))
		sb.WriteString(fmt.Sprintf("  Actual: %.2f for, %.2f against\n", team.ActualPointsFor, team.ActualPointsAgainst))
		sb.WriteString(fmt.Sprintf("  Optimum: %.2f for, %.2f against\n", team.OptimumPointsFor, team.OptimumPointsAgainst))
		sb.WriteString(fmt.Sprintf("  Left on bench: %.2f for, %.2f against\n\n",
			team.OptimumPointsFor-team.ActualPointsFor, team.OptimumPointsAgainst-team.ActualPointsAgainst))
	}

	return sb.String(), nil
}

// TeamRecordSummary lists each team's actual and optimum records, best
// optimum record first.
func (s *ReportService) TeamRecordSummary() (string, error) {
	teams, err := s.season.TeamsByOptimumWins()
	if err != nil {
		return "", fmt.Errorf("error fetching team records: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("🏆 *Team Record Summary*\n\n")
	for _, team := range teams {
		sb.WriteString(fmt.Sprintf("*%s*\n", team.Name))
		sb.WriteString(fmt.Sprintf("  Actual: %d-%d-%d\n", team.ActualWins, team.ActualLosses, team.ActualTies))
		sb.WriteString(fmt.Sprintf("  Optimum: %d-%d-%d\n\n", team.OptimumWins, team.OptimumLosses, team.OptimumTies))
	}

	return sb.String(), nil
}

// PlayerScoreSummary lists each player's season total and average.
func (s *ReportService) PlayerScoreSummary() (string, error) {
	players, err := s.season.Players()
	if err != nil {
		return "", fmt.Errorf("error fetching players: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("👤 *Player Score Summary*\n\n")
	for _, player := range players {
		sb.WriteString(fmt.Sprintf("%s: %.2f total, %.2f average\n",
			player.Name, player.TotalPoints, player.AveragePoints))
	}

	return sb.String(), nil
}

// OpposingPlayersSummary lists, per team, how many opposing players beat
// their own season average against that team and by how much in total.
// With detail enabled it also lists every opposing line that beat its
// average by more than 10 points.
func (s *ReportService) OpposingPlayersSummary(detail bool) (string, error) {
	teams, err := s.season.Teams()
	if err != nil {
		return "", fmt.Errorf("error fetching teams: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("🎯 *Opposing Players Above Average*\n\n")
	for _, team := range teams {
		sb.WriteString(fmt.Sprintf("*%s*: %d opposing players above average, %.2f total above average\n",
			team.Name, len(team.OpposingAboveAverage), team.TotalOpposingPointsAboveAverage()))

		if detail {
			for _, line := range team.OpposingAboveAverage {
				if line.Margin() > 10 {
					sb.WriteString(fmt.Sprintf("  %s, week %d: %.2f (%.2f above average)\n",
						line.Name, line.Week, line.WeekPoints, line.Margin()))
				}
			}
		}
	}

	return sb.String(), nil
}

// HighScoringBenchSummary lists, per team, the weeks a benched player
// outscored the bench threshold.
func (s *ReportService) HighScoringBenchSummary() (string, error) {
	return s.teamLinesSummary("🪑 *High Scoring Bench Players*", func(t *season.Team) []season.PlayerPointsLine {
		return t.HighScoringBench
	})
}

// LowScoringStartersSummary lists, per team, the weeks a starter
// underscored the starter threshold.
func (s *ReportService) LowScoringStartersSummary() (string, error) {
	return s.teamLinesSummary("📉 *Low Scoring Starters*", func(t *season.Team) []season.PlayerPointsLine {
		return t.LowScoringStarters
	})
}

func (s *ReportService) teamLinesSummary(title string, lines func(*season.Team) []season.PlayerPointsLine) (string, error) {
	teams, err := s.season.Teams()
	if err != nil {
		return "", fmt.Errorf("error fetching teams: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(title + "\n\n")
	for _, team := range teams {
		sb.WriteString(fmt.Sprintf("*%s*\n", team.Name))
		for _, line := range lines(team) {
			sb.WriteString(fmt.Sprintf("  %s, week %d: %.2f\n", line.Name, line.Week, line.WeekPoints))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// WhoIs finds the player whose name best matches the query and reports
// their season line. Matching tolerates typos up to a small edit distance.
func (s *ReportService) WhoIs(name string) (string, error) {
	players, err := s.season.Players()
	if err != nil {
		return "", fmt.Errorf("error fetching players: %w", err)
	}

	query := strings.ToLower(name)
	var best *season.Player
	bestScore := int(^uint(0) >> 1)

	// Score every player and keep the best: an exact match wins outright, a
	// substring match scores by how much of the name the query leaves
	// unmatched, and anything else scores by edit distance up to a small
	// typo tolerance.
	for _, player := range players {
		candidate := strings.ToLower(player.Name)

		var score int
		switch {
		case candidate == query:
			score = 0
		case strings.Contains(candidate, query):
			score = len(candidate) - len(query)
		default:
			distance := fuzzy.LevenshteinDistance(query, candidate)
			if distance >= 3 {
				continue
			}
			score = distance
		}

		if score < bestScore {
			bestScore = score
			best = player
		}
	}

	if best == nil {
		return fmt.Sprintf("🔍 No player found matching '%s'.", name), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*\n", best.Name))
	sb.WriteString(fmt.Sprintf("Total: %.2f pts over %d weeks\n", best.TotalPoints, len(best.ScoreLines)))
	sb.WriteString(fmt.Sprintf("Average: %.2f pts\n", best.AveragePoints))
	sb.WriteString(fmt.Sprintf("Weeks above average: %d, below: %d",
		len(best.LinesAboveAverage), len(best.LinesBelowAverage)))

	return sb.String(), nil
}

// FullReport concatenates every season report in reading order.
func (s *ReportService) FullReport() (string, error) {
	var sb strings.Builder
	sb.WriteString(s.GameSummary())

	sections := []func() (string, error){
		s.TeamPointsSummary,
		s.TeamRecordSummary,
		s.PlayerScoreSummary,
		func() (string, error) { return s.OpposingPlayersSummary(true) },
		s.HighScoringBenchSummary,
		s.LowScoringStartersSummary,
	}
	for _, section := range sections {
		text, err := section()
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
