package engine

import "fmt"

// Matchup is an ordinal judgment of an isolated duel, from the first
// combatant's point of view.
type Matchup int

const (
	WorstMatchup Matchup = iota
	BadMatchup
	Tie
	GoodMatchup
	BestMatchup
)

func (m Matchup) String() string {
	switch m {
	case WorstMatchup:
		return "worst"
	case BadMatchup:
		return "bad"
	case Tie:
		return "tie"
	case GoodMatchup:
		return "good"
	case BestMatchup:
		return "best"
	}
	return fmt.Sprintf("Matchup(%d)", int(m))
}

// Faster tells which of two combatants moves first.
type Faster int

const (
	FasterNone Faster = iota
	FasterMine
	FasterYours
)

func SpeedOrder(mine, yours float64) Faster {
	switch {
	case mine > yours:
		return FasterMine
	case yours > mine:
		return FasterYours
	}
	return FasterNone
}

// Classify maps best-move damage (percent of the opponent's total health)
// and speed order to a matchup. The first matching rule wins.
func Classify(myBest, yourBest float64, faster Faster) Matchup {
	switch {
	case faster == FasterMine && myBest >= 100:
		return BestMatchup
	case faster == FasterYours && yourBest >= 100:
		return WorstMatchup
	case faster == FasterMine && yourBest >= 100 && myBest >= 50:
		return BadMatchup
	case faster == FasterYours && myBest >= 100 && yourBest >= 50:
		return GoodMatchup
	case faster == FasterMine && myBest >= 50:
		return GoodMatchup
	case faster == FasterYours && yourBest >= 50:
		return BadMatchup
	}
	return Tie
}

// Matchup scores my slot against your slot in the current position.
func (s *BattleState) Matchup(mine, yours int) Matchup {
	if !s.Revealed(Mine, mine) || !s.Revealed(Yours, yours) {
		return Tie
	}
	myDown, yourDown := s.Fainted(Mine, mine), s.Fainted(Yours, yours)
	switch {
	case myDown && yourDown:
		return Tie
	case myDown:
		return WorstMatchup
	case yourDown:
		return BestMatchup
	}
	return s.a.duel[mine][yours]
}

// HealthDiff is my slot's health fraction minus your slot's.
func (s *BattleState) HealthDiff(mine, yours int) float64 {
	return s.HealthFraction(Mine, mine) - s.HealthFraction(Yours, yours)
}

type MatchupMatrix [RosterSize][RosterSize]Matchup

type HealthDifferenceMatrix [RosterSize][RosterSize]float64

func (s *BattleState) MatchupMatrix() MatchupMatrix {
	var m MatchupMatrix
	for i := range m {
		for j := range m[i] {
			m[i][j] = s.Matchup(i, j)
		}
	}
	return m
}

func (s *BattleState) HealthDifferenceMatrix() HealthDifferenceMatrix {
	var m HealthDifferenceMatrix
	for i := range m {
		for j := range m[i] {
			m[i][j] = s.HealthDiff(i, j)
		}
	}
	return m
}
