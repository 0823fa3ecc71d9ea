package memory

import (
	"testing"

	"github.com/omarshaarawi/hindsight/internal/season"
)

func TestRepository_EmptyUntilFirstSave(t *testing.T) {
	repo := NewRepository()

	sn, updatedAt := repo.GetSeason()
	if sn != nil {
		t.Errorf("GetSeason() before any save = %v, want nil", sn)
	}
	if !updatedAt.IsZero() {
		t.Errorf("GetSeason() updatedAt before any save = %v, want zero", updatedAt)
	}
}

func TestRepository_SaveThenGet(t *testing.T) {
	repo := NewRepository()
	first := season.New(2010)
	repo.SaveSeason(first)

	got, firstAt := repo.GetSeason()
	if got != first {
		t.Errorf("GetSeason() = %p, want the saved season %p", got, first)
	}
	if firstAt.IsZero() {
		t.Error("GetSeason() updatedAt after save is zero, want non-zero")
	}

	// A later save replaces the stored season and refreshes the timestamp.
	second := season.New(2011)
	repo.SaveSeason(second)

	got, secondAt := repo.GetSeason()
	if got != second {
		t.Errorf("GetSeason() after second save = %p, want %p", got, second)
	}
	if secondAt.Before(firstAt) {
		t.Errorf("updatedAt went backwards: %v before %v", secondAt, firstAt)
	}
}
