package engine

import "math"

// Heuristic scores a position over every pairing of the two rosters, not
// just the active one, so bench strength counts.
func (s *BattleState) Heuristic() float64 {
	return Score(s.HealthDifferenceMatrix(), s.MatchupMatrix())
}

// Score sums exp(healthDiff) * matchup over all cells.
func Score(hd HealthDifferenceMatrix, mm MatchupMatrix) float64 {
	total := 0.0
	for i := range hd {
		for j := range hd[i] {
			total += math.Exp(hd[i][j]) * float64(mm[i][j])
		}
	}
	return total
}

// Evaluation is the static breakdown of a position.
type Evaluation struct {
	Health    HealthDifferenceMatrix
	Matchups  MatchupMatrix
	Heuristic float64
}

func (s *BattleState) Evaluate() Evaluation {
	hd, mm := s.HealthDifferenceMatrix(), s.MatchupMatrix()
	return Evaluation{Health: hd, Matchups: mm, Heuristic: Score(hd, mm)}
}
