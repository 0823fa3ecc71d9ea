package archive

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func writeGameFile(t *testing.T, root string, year, week, game int, content string) {
	t.Helper()
	dir := filepath.Join(root, strconv.Itoa(year), strconv.Itoa(week))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, strconv.Itoa(game)), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestArchiveWeeks(t *testing.T) {
	root := t.TempDir()
	for _, week := range []int{1, 2, 14} {
		if err := os.MkdirAll(filepath.Join(root, "2011", strconv.Itoa(week)), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	// Dotfiles and non-numeric entries are not weeks.
	if err := os.MkdirAll(filepath.Join(root, "2011", ".cache"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "2011", "notes"), 0o755); err != nil {
		t.Fatal(err)
	}

	a := New(root)

	tests := []struct {
		name       string
		start, end int
		want       []int
	}{
		{"unbounded", 0, 0, []int{1, 2, 14}},
		{"start bound", 2, 0, []int{2, 14}},
		{"end bound", 0, 2, []int{1, 2}},
		{"both bounds", 2, 2, []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Weeks(2011, tt.start, tt.end)
			if err != nil {
				t.Fatalf("Weeks() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Weeks() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Weeks() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestArchiveWeeks_MissingYear(t *testing.T) {
	a := New(t.TempDir())
	if _, err := a.Weeks(1999, 0, 0); err == nil {
		t.Error("Weeks() for a missing year = nil error, want error")
	}
}

func TestArchiveGames(t *testing.T) {
	root := t.TempDir()
	writeGameFile(t, root, 2011, 1, 2, "x")
	writeGameFile(t, root, 2011, 1, 1, "x")
	writeGameFile(t, root, 2011, 1, 10, "x")

	got, err := New(root).Games(2011, 1)
	if err != nil {
		t.Fatalf("Games() error = %v", err)
	}
	want := []int{1, 2, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Games() = %v, want %v", got, want)
		}
	}
}

func TestArchiveLoadSeason(t *testing.T) {
	root := t.TempDir()
	writeGameFile(t, root, 2011, 1, 1, boxScorePage)

	sn, err := New(root).LoadSeason(2011, 0, 0)
	if err != nil {
		t.Fatalf("LoadSeason() error = %v", err)
	}

	games := sn.Games()
	if len(games) != 1 {
		t.Fatalf("loaded %d games, want 1", len(games))
	}

	g := games[0]
	if g.Year != 2011 || g.Week != 1 || g.Number != 1 {
		t.Errorf("game identity = %d/%d/%d, want 2011/1/1", g.Year, g.Week, g.Number)
	}
	// Coach Dad's 44 started points beat the Pandas' 30.
	if g.ActualWinner != "Coach Dad" {
		t.Errorf("ActualWinner = %q, want Coach Dad", g.ActualWinner)
	}
}

func TestArchiveReadGame_RejectsOneSidedPage(t *testing.T) {
	root := t.TempDir()
	page := `<html><body><table>
<tr><td class="tableHead">UGF Pandas</td></tr>
<tr id="plyr1001"><td><div>Tom Brady</div>, NE QB</td><td id="slot_0">QB</td><td id="plscrg_1001_totpts">20</td></tr>
</table></body></html>`
	writeGameFile(t, root, 2011, 1, 1, page)

	if _, err := New(root).ReadGame(2011, 1, 1); err == nil {
		t.Error("ReadGame() on a one-team page = nil error, want error")
	}
}
