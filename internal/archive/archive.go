// Package archive reads a league's archived quick-box-score pages off disk.
// The archive is laid out as <root>/<year>/<week>/<game>, one saved HTML
// page per game.
package archive

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/omarshaarawi/hindsight/internal/season"
)

// Archive locates and parses the saved box-score pages for a league.
type Archive struct {
	root string
}

// New creates an archive rooted at the given directory.
func New(root string) *Archive {
	return &Archive{root: root}
}

// Weeks returns the sorted week numbers present for a year, restricted to
// [startWeek, endWeek]. A zero bound means unbounded on that side.
func (a *Archive) Weeks(year, startWeek, endWeek int) ([]int, error) {
	weeks, err := numericEntries(filepath.Join(a.root, strconv.Itoa(year)))
	if err != nil {
		return nil, fmt.Errorf("listing weeks for %d: %w", year, err)
	}

	var kept []int
	for _, week := range weeks {
		if (startWeek == 0 || week >= startWeek) && (endWeek == 0 || week <= endWeek) {
			kept = append(kept, week)
		}
	}
	return kept, nil
}

// Games returns the sorted game numbers present for a year and week.
func (a *Archive) Games(year, week int) ([]int, error) {
	games, err := numericEntries(filepath.Join(a.root, strconv.Itoa(year), strconv.Itoa(week)))
	if err != nil {
		return nil, fmt.Errorf("listing games for %d week %d: %w", year, week, err)
	}
	return games, nil
}

// LoadSeason ingests every game in the given week range into a new Season.
// The caller runs Analyze once the season is fully loaded.
func (a *Archive) LoadSeason(year, startWeek, endWeek int) (*season.Season, error) {
	weeks, err := a.Weeks(year, startWeek, endWeek)
	if err != nil {
		return nil, err
	}

	sn := season.New(year)
	for _, week := range weeks {
		games, err := a.Games(year, week)
		if err != nil {
			return nil, err
		}
		for _, number := range games {
			game, err := a.ReadGame(year, week, number)
			if err != nil {
				return nil, err
			}
			if err := sn.AddGame(game); err != nil {
				return nil, err
			}
		}
		slog.Info("Ingested week", "year", year, "week", week, "games", len(games))
	}
	return sn, nil
}

// ReadGame parses one saved box-score page into a game.
func (a *Archive) ReadGame(year, week, number int) (*season.Game, error) {
	path := filepath.Join(a.root, strconv.Itoa(year), strconv.Itoa(week), strconv.Itoa(number))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading game %d/%d/%d: %w", year, week, number, err)
	}
	defer f.Close()

	teams, err := parseBoxScore(f, week)
	if err != nil {
		return nil, fmt.Errorf("parsing game %d/%d/%d: %w", year, week, number, err)
	}
	return season.NewGame(year, week, number, teams)
}

// numericEntries lists the numeric directory entries under dir, sorted
// ascending. Dotfiles and non-numeric names are skipped.
func numericEntries(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var nums []int
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		n, err := strconv.Atoi(name)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums, nil
}
