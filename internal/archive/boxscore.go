package archive

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/omarshaarawi/hindsight/internal/season"
)

var (
	playerRowRe = regexp.MustCompile(`^plyr(\d+)$`)

	// The text after the name div reads "*, NE QB"; the position is the
	// token after the pro-team abbreviation. Anchoring past the div keeps
	// commas inside the player name out of the match.
	posRe = regexp.MustCompile(`^\s*\*?,\s*\w+\s+([\w/]+)`)
)

// parseBoxScore extracts both teams' score lines from a quick-box-score
// page. A "tableHead" cell names the team the following rows belong to
// (the bench section repeats the name with a " BENCH" suffix); each player
// row carries the player id, slot, and total points in identifiable cells.
// Rows that do not parse as a player line are skipped.
func parseBoxScore(r io.Reader, week int) (map[string]season.TeamWeekResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading box score markup: %w", err)
	}

	lines := make(map[string][]season.PlayerScoreLine)
	var currentTeam string

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if head := row.Find("td.tableHead"); head.Length() > 0 {
			name := strings.TrimSpace(head.First().Text())
			name = strings.TrimSuffix(name, " BENCH")
			currentTeam = name
			if _, ok := lines[name]; !ok {
				lines[name] = nil
			}
			return
		}

		if currentTeam == "" {
			return
		}
		line, ok := parsePlayerRow(row, week)
		if !ok {
			return
		}
		lines[currentTeam] = append(lines[currentTeam], line)
	})

	teams := make(map[string]season.TeamWeekResult, len(lines))
	for name, players := range lines {
		teams[name] = season.NewTeamWeekResult(week, players)
	}
	return teams, nil
}

func parsePlayerRow(row *goquery.Selection, week int) (season.PlayerScoreLine, bool) {
	id, ok := row.Attr("id")
	if !ok {
		return season.PlayerScoreLine{}, false
	}
	m := playerRowRe.FindStringSubmatch(id)
	if m == nil {
		return season.PlayerScoreLine{}, false
	}
	playerID := m[1]

	nameDiv := row.Find("td div").First()
	if nameDiv.Length() == 0 {
		return season.PlayerScoreLine{}, false
	}
	name := strings.TrimSpace(nameDiv.Text())

	posMatch := posRe.FindStringSubmatch(textAfter(nameDiv))
	if posMatch == nil {
		return season.PlayerScoreLine{}, false
	}
	position, err := season.ParsePosition(posMatch[1])
	if err != nil {
		return season.PlayerScoreLine{}, false
	}

	slot, err := season.ParseSlot(strings.TrimSpace(row.Find(`td[id^="slot_"]`).First().Text()))
	if err != nil {
		return season.PlayerScoreLine{}, false
	}

	points, err := strconv.ParseFloat(strings.TrimSpace(row.Find(`td[id$="_totpts"]`).First().Text()), 64)
	if err != nil {
		return season.PlayerScoreLine{}, false
	}

	return season.PlayerScoreLine{
		PlayerID: playerID,
		Name:     name,
		Position: position,
		Slot:     slot,
		Week:     week,
		Points:   points,
	}, true
}

// textAfter collects the text nodes that follow the selection within its
// parent cell, the ", NE QB" tail after the name div.
func textAfter(sel *goquery.Selection) string {
	node := sel.Get(0)

	var sb strings.Builder
	for n := node.NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
	}
	return sb.String()
}
