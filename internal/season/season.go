package season

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrGameShape marks a game that does not have exactly two sides.
	ErrGameShape = errors.New("game must have exactly two teams")

	// ErrNoScoringHistory marks a player average computed over zero weeks.
	ErrNoScoringHistory = errors.New("player has no scoring history")

	// ErrNotAnalyzed is returned by report queries before Analyze has run.
	ErrNotAnalyzed = errors.New("season has not been analyzed")

	// ErrAlreadyAnalyzed is returned if Analyze is called more than once.
	ErrAlreadyAnalyzed = errors.New("season has already been analyzed")
)

// Season owns everything known about one league year: the games in the
// order they were ingested, and deduplicated registries of the teams and
// players seen in those games. Lookup-or-create on the registries is the
// only way entries are added, so there is never a duplicate team or player
// instance within a season.
//
// The analysis runs as four passes in a fixed order, because each pass
// depends on state built by an earlier one: player averages must exist
// before opposing-above-average attribution, and game winners before the
// team record tallies. Analyze is single-threaded and runs exactly once.
type Season struct {
	Year int

	games []*Game

	teams     map[string]*Team
	teamOrder []*Team

	players     map[string]*Player
	playerOrder []*Player

	analyzed bool
}

// New creates an empty season for the given year.
func New(year int) *Season {
	return &Season{
		Year:    year,
		teams:   make(map[string]*Team),
		players: make(map[string]*Player),
	}
}

// AddGame appends a game to the season. Games must be added before Analyze.
func (s *Season) AddGame(g *Game) error {
	if s.analyzed {
		return fmt.Errorf("adding game %d/%d/%d: %w", g.Year, g.Week, g.Number, ErrAlreadyAnalyzed)
	}
	if len(g.Teams) != 2 {
		return fmt.Errorf("adding game %d/%d/%d: %w", g.Year, g.Week, g.Number, ErrGameShape)
	}
	s.games = append(s.games, g)
	return nil
}

// Games returns the season's games in ingestion order.
func (s *Season) Games() []*Game {
	return s.games
}

// Team returns the season record for the named team, creating it on first
// sight. Repeated calls with the same name return the same instance.
func (s *Season) Team(name string) *Team {
	if t, ok := s.teams[name]; ok {
		return t
	}
	t := NewTeam(name)
	s.teams[name] = t
	s.teamOrder = append(s.teamOrder, t)
	return t
}

// TeamByName looks up a team without creating it.
func (s *Season) TeamByName(name string) (*Team, bool) {
	t, ok := s.teams[name]
	return t, ok
}

// Player returns the season record for the given player id, creating it on
// first sight. Repeated calls with the same id return the same instance.
func (s *Season) Player(id, name string) *Player {
	if p, ok := s.players[id]; ok {
		return p
	}
	p := NewPlayer(id, name)
	s.players[id] = p
	s.playerOrder = append(s.playerOrder, p)
	return p
}

// PlayerByID looks up a player without creating it.
func (s *Season) PlayerByID(id string) (*Player, bool) {
	p, ok := s.players[id]
	return p, ok
}

// Analyze runs the four analysis passes over the ingested games. It must be
// called exactly once, after every game has been added.
func (s *Season) Analyze() error {
	if s.analyzed {
		return ErrAlreadyAnalyzed
	}

	if err := s.analyzePlayers(); err != nil {
		return err
	}
	s.analyzeGames()
	s.analyzeTeams()
	s.analyzeTeamPlayers()

	s.analyzed = true
	return nil
}

// analyzePlayers routes every score line in every game to its player, then
// finalizes each player's totals, average, and above/below partitions.
func (s *Season) analyzePlayers() error {
	for _, game := range s.games {
		for _, name := range game.TeamNames() {
			for _, line := range game.Teams[name].Players {
				s.Player(line.PlayerID, line.Name).RecordWeek(line)
			}
		}
	}

	for _, player := range s.playerOrder {
		if err := player.Analyze(); err != nil {
			return fmt.Errorf("season %d: %w", s.Year, err)
		}
	}
	return nil
}

// analyzeGames accumulates actual and optimum points for and against on
// both sides of every game, and attributes each player's above-average
// weeks to the team they scored them against.
func (s *Season) analyzeGames() {
	for _, game := range s.games {
		names := game.TeamNames()
		away, home := s.Team(names[0]), s.Team(names[1])
		awayResult, homeResult := game.Teams[names[0]], game.Teams[names[1]]

		away.RecordActualPoints(awayResult.ActualPoints, homeResult.ActualPoints)
		home.RecordActualPoints(homeResult.ActualPoints, awayResult.ActualPoints)

		away.RecordOptimumPoints(awayResult.OptimumPoints, homeResult.OptimumPoints)
		home.RecordOptimumPoints(homeResult.OptimumPoints, awayResult.OptimumPoints)

		s.attributeAboveAverage(awayResult, home)
		s.attributeAboveAverage(homeResult, away)
	}
}

// attributeAboveAverage credits above-average weeks from one side's roster
// to the opposing team. A player the registry does not know, or a week that
// was not above average, simply contributes no attribution.
func (s *Season) attributeAboveAverage(result TeamWeekResult, opponent *Team) {
	for _, scoreLine := range result.Players {
		player, ok := s.PlayerByID(scoreLine.PlayerID)
		if !ok {
			continue
		}
		if line, ok := player.AboveAverageLine(scoreLine.Week); ok {
			opponent.AddOpposingAboveAverageLine(line)
		}
	}
}

// analyzeTeams tallies each game's precomputed winners into both teams'
// actual and optimum records.
func (s *Season) analyzeTeams() {
	for _, game := range s.games {
		names := game.TeamNames()
		away, home := s.Team(names[0]), s.Team(names[1])

		away.RecordResult(game.ActualWinner, game.OptimumWinner, home.Name)
		home.RecordResult(game.ActualWinner, game.OptimumWinner, away.Name)
	}
}

// analyzeTeamPlayers classifies each side's weekly lines as high-scoring
// bench players or low-scoring starters. The predicates are checked in that
// order and are mutually exclusive; a line matching neither is discarded.
func (s *Season) analyzeTeamPlayers() {
	for _, game := range s.games {
		for _, name := range game.TeamNames() {
			team := s.Team(name)
			for _, scoreLine := range game.Teams[name].Players {
				player, ok := s.PlayerByID(scoreLine.PlayerID)
				if !ok {
					continue
				}
				line := player.pointsLine(scoreLine)
				if line.IsHighScoringBench() {
					team.AddHighScoringBenchLine(line)
				} else if line.IsLowScoringStarter() {
					team.AddLowScoringStarterLine(line)
				}
			}
		}
	}
}

// Teams returns every team in first-seen order. Only valid after Analyze.
func (s *Season) Teams() ([]*Team, error) {
	if !s.analyzed {
		return nil, ErrNotAnalyzed
	}
	return s.teamOrder, nil
}

// TeamsByOptimumPoints returns the teams sorted by optimum points-for,
// descending. Only valid after Analyze.
func (s *Season) TeamsByOptimumPoints() ([]*Team, error) {
	return s.sortedTeams(func(a, b *Team) bool {
		return a.OptimumPointsFor > b.OptimumPointsFor
	})
}

// TeamsByOptimumWins returns the teams sorted by optimum wins, descending.
// Only valid after Analyze.
func (s *Season) TeamsByOptimumWins() ([]*Team, error) {
	return s.sortedTeams(func(a, b *Team) bool {
		return a.OptimumWins > b.OptimumWins
	})
}

func (s *Season) sortedTeams(less func(a, b *Team) bool) ([]*Team, error) {
	if !s.analyzed {
		return nil, ErrNotAnalyzed
	}
	teams := make([]*Team, len(s.teamOrder))
	copy(teams, s.teamOrder)
	sort.SliceStable(teams, func(i, j int) bool { return less(teams[i], teams[j]) })
	return teams, nil
}

// Players returns every player in first-seen order. Only valid after Analyze.
func (s *Season) Players() ([]*Player, error) {
	if !s.analyzed {
		return nil, ErrNotAnalyzed
	}
	return s.playerOrder, nil
}
