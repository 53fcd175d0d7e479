package engine

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name            string
		myBest, yourBest float64
		faster          Faster
		want            Matchup
	}{
		{"faster one-shot", 100, 100, FasterMine, BestMatchup},
		{"outsped and one-shot", 100, 100, FasterYours, WorstMatchup},
		{"faster heavy hit then die", 60, 120, FasterMine, BadMatchup},
		{"slower but survive and one-shot", 120, 60, FasterYours, GoodMatchup},
		{"faster heavy hit", 50, 10, FasterMine, GoodMatchup},
		{"outsped heavy hit", 10, 50, FasterYours, BadMatchup},
		{"faster chip only", 49, 99, FasterMine, Tie},
		{"slower chip only", 99, 49, FasterYours, Tie},
		{"speed tie one-shots", 200, 200, FasterNone, Tie},
		{"faster but both weak", 0, 0, FasterMine, Tie},
	}
	for _, tc := range tests {
		if got := Classify(tc.myBest, tc.yourBest, tc.faster); got != tc.want {
			t.Errorf("%s: Classify(%v, %v, %v) = %v, want %v", tc.name, tc.myBest, tc.yourBest, tc.faster, got, tc.want)
		}
	}
}

func TestSpeedOrder(t *testing.T) {
	if got := SpeedOrder(10, 5); got != FasterMine {
		t.Errorf("SpeedOrder(10, 5) = %v, want FasterMine", got)
	}
	if got := SpeedOrder(5, 10); got != FasterYours {
		t.Errorf("SpeedOrder(5, 10) = %v, want FasterYours", got)
	}
	if got := SpeedOrder(7, 7); got != FasterNone {
		t.Errorf("SpeedOrder(7, 7) = %v, want FasterNone", got)
	}
}

func TestMatchupFasterLethal(t *testing.T) {
	a := fighter("a", 100, 10, 120)
	b := fighter("b", 100, 5, 30)

	if got := duel(t, a, b).Matchup(0, 0); got != BestMatchup {
		t.Errorf("matchup(a, b) = %v, want best", got)
	}
	if got := duel(t, b, a).Matchup(0, 0); got != WorstMatchup {
		t.Errorf("matchup(b, a) = %v, want worst", got)
	}
}

func TestMatchupSpeedTieWeakHits(t *testing.T) {
	a := fighter("a", 100, 7, 40)
	b := fighter("b", 100, 7, 45)
	if got := duel(t, a, b).Matchup(0, 0); got != Tie {
		t.Errorf("matchup(a, b) = %v, want tie", got)
	}
}

func TestMatchupUsesBestMove(t *testing.T) {
	a := fighter("a", 100, 10, 5, 60, 20)
	b := fighter("b", 200, 5, 10)
	// 60 of 200 is 30%: not enough for a good matchup.
	if got := duel(t, a, b).Matchup(0, 0); got != Tie {
		t.Errorf("matchup = %v, want tie", got)
	}
	c := fighter("c", 100, 5, 10)
	if got := duel(t, a, c).Matchup(0, 0); got != GoodMatchup {
		t.Errorf("matchup = %v, want good", got)
	}
}

func TestMatchupFainted(t *testing.T) {
	tests := []struct {
		name       string
		myHP, urHP float64
		want       Matchup
	}{
		{"both down", 0, -5, Tie},
		{"mine down", 0, 50, WorstMatchup},
		{"yours down", 50, 0, BestMatchup},
	}
	for _, tc := range tests {
		a := fighter("a", 100, 1, 1).at(tc.myHP)
		b := fighter("b", 100, 99, 500).at(tc.urHP)
		if got := duel(t, a, b).Matchup(0, 0); got != tc.want {
			t.Errorf("%s: matchup = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMatchupUnrevealed(t *testing.T) {
	a := fighter("a", 100, 10, 500)
	s := duel(t, a, fighter("b", 100, 5, 1))
	if got := s.Matchup(0, 3); got != Tie {
		t.Errorf("matchup against unrevealed slot = %v, want tie", got)
	}
	a.hp = 0
	s = duel(t, a, fighter("b", 100, 5, 1))
	if got := s.Matchup(0, 3); got != Tie {
		t.Errorf("fainted vs unrevealed = %v, want tie", got)
	}

	// A gap between revealed slots stays unrevealed.
	c := fighter("c", 100, 5, 1)
	gap := mustState(t, NewRoster(fighter("a", 100, 10, 500)), Roster{Known(c), Unrevealed(), Known(fighter("d", 100, 5, 1))}, 0, 0, Rules{})
	if got := gap.Matchup(0, 1); got != Tie {
		t.Errorf("matchup against a gap = %v, want tie", got)
	}
	if got := gap.Matchup(0, 2); got != BestMatchup {
		t.Errorf("matchup past the gap = %v, want best", got)
	}
}

func TestHealthDiff(t *testing.T) {
	s := duel(t, fighter("a", 200, 1, 1).at(100), fighter("b", 80, 1, 1).at(40))
	if got := s.HealthDiff(0, 0); got != 0 {
		t.Errorf("HealthDiff with equal fractions = %v, want 0", got)
	}
	if got := s.HealthDiff(0, 2); got != 0.5-1.0 {
		t.Errorf("HealthDiff against unrevealed = %v, want -0.5", got)
	}

	over := duel(t, fighter("a", 100, 1, 1).at(-30), fighter("b", 100, 1, 1))
	if got := over.HealthDiff(0, 0); got != -1 {
		t.Errorf("HealthDiff with overkilled mine = %v, want -1", got)
	}
}

func TestMatrices(t *testing.T) {
	a := fighter("a", 100, 10, 120)
	b := fighter("b", 100, 5, 30).at(50)
	s := duel(t, a, b)
	mm := s.MatchupMatrix()
	hd := s.HealthDifferenceMatrix()
	for i := 0; i < RosterSize; i++ {
		for j := 0; j < RosterSize; j++ {
			want := Tie
			if i == 0 && j == 0 {
				want = BestMatchup
			}
			if mm[i][j] != want {
				t.Errorf("matchup[%d][%d] = %v, want %v", i, j, mm[i][j], want)
			}
			wantHD := 0.0
			if j == 0 {
				wantHD = 0.5
			}
			if math.Abs(hd[i][j]-wantHD) > 1e-12 {
				t.Errorf("healthDiff[%d][%d] = %v, want %v", i, j, hd[i][j], wantHD)
			}
		}
	}
}
