package season

import "fmt"

// Position is a player's eligible field position, used for optimum-lineup
// selection independent of where the manager actually started them.
type Position string

const (
	PosQB  Position = "QB"
	PosRB  Position = "RB"
	PosWR  Position = "WR"
	PosTE  Position = "TE"
	PosDST Position = "D/ST"
	PosK   Position = "K"
)

// Slot is the roster slot a player was actually placed in for a given week.
type Slot string

const (
	SlotQB    Slot = "QB"
	SlotRB    Slot = "RB"
	SlotFlex  Slot = "RB/WR"
	SlotWR    Slot = "WR"
	SlotTE    Slot = "TE"
	SlotDST   Slot = "D/ST"
	SlotK     Slot = "K"
	SlotBench Slot = "Bench"
	SlotIR    Slot = "IR"
)

var positions = map[Position]bool{
	PosQB: true, PosRB: true, PosWR: true, PosTE: true, PosDST: true, PosK: true,
}

var slots = map[Slot]bool{
	SlotQB: true, SlotRB: true, SlotFlex: true, SlotWR: true, SlotTE: true,
	SlotDST: true, SlotK: true, SlotBench: true, SlotIR: true,
}

// ParsePosition validates a position string from the archive.
func ParsePosition(s string) (Position, error) {
	p := Position(s)
	if !positions[p] {
		return "", fmt.Errorf("unknown position %q", s)
	}
	return p, nil
}

// ParseSlot validates a roster-slot string from the archive.
func ParseSlot(s string) (Slot, error) {
	sl := Slot(s)
	if !slots[sl] {
		return "", fmt.Errorf("unknown slot %q", s)
	}
	return sl, nil
}

// IsStarting reports whether the slot is a started (non-bench, non-IR) slot.
func (s Slot) IsStarting() bool {
	return s != SlotBench && s != SlotIR
}

// PlayerScoreLine is one player's scoring result for a single week.
// Ingestion produces exactly one per player per game; it is never mutated.
type PlayerScoreLine struct {
	PlayerID string
	Name     string
	Position Position
	Slot     Slot
	Week     int
	Points   float64
}

// PlayerPointsLine compares the points a player scored in a given week
// against their season average. These are derived on the fly from score
// lines during analysis; they are not a definitive data source.
type PlayerPointsLine struct {
	PlayerID      string
	Name          string
	Week          int
	Slot          Slot
	WeekPoints    float64
	AveragePoints float64
}

// Thresholds for the bench/starter classification in the team-players pass.
const (
	highScoringBenchMin  = 12.0
	lowScoringStarterMax = 10.0
)

// Margin is how far above (or below) the player's season average this week was.
func (l PlayerPointsLine) Margin() float64 {
	return l.WeekPoints - l.AveragePoints
}

// IsHighScoringBench reports whether this line is a benched player who
// scored more than the high-bench threshold.
func (l PlayerPointsLine) IsHighScoringBench() bool {
	return l.Slot == SlotBench && l.WeekPoints > highScoringBenchMin
}

// IsLowScoringStarter reports whether this line is a started player who
// scored less than the low-starter threshold.
func (l PlayerPointsLine) IsLowScoringStarter() bool {
	return l.Slot.IsStarting() && l.WeekPoints < lowScoringStarterMax
}
