package engine

import "fmt"

// Rules toggles optional legality checks.
type Rules struct {
	// ForbidFaintedSwitch removes fainted bench members from the switch
	// options and makes Successor reject switches to them.
	ForbidFaintedSwitch bool
}

// arena holds everything about a search that never changes between plies.
// It is shared by every state derived from the same root.
type arena struct {
	rosters [2]Roster
	rules   Rules
	speed   [2][RosterSize]float64
	total   [2][RosterSize]float64
	moves   [2][RosterSize][]Move
	// dmg[side][slot][move][target] is the damage rosters[side][slot] deals
	// with that move to rosters[side.Other()][target].
	dmg [2][RosterSize][][RosterSize]float64
	// duel[mine][yours] is the matchup of two revealed combatants with
	// both of them standing.
	duel [RosterSize][RosterSize]Matchup
}

// BattleState is one position. Only the per-slot health and the active
// slots are copied per ply; the rosters live in the shared arena, so a
// successor never aliases its parent's mutable fields.
type BattleState struct {
	a      *arena
	health [2][RosterSize]float64
	active [2]int
}

func NewBattleState(mine, yours Roster, myActive, yourActive int, rules Rules) (*BattleState, error) {
	a := &arena{rosters: [2]Roster{mine, yours}, rules: rules}
	s := &BattleState{a: a, active: [2]int{myActive, yourActive}}

	for side := Mine; side <= Yours; side++ {
		for i, slot := range a.rosters[side] {
			if !slot.Revealed {
				continue
			}
			c := slot.Combatant
			if c == nil || c.TotalHealth() <= 0 {
				return nil, fmt.Errorf("%w: %s slot %d", ErrInvalidCombatant, side, i)
			}
			a.total[side][i] = c.TotalHealth()
			a.speed[side][i] = c.EffectiveStats().Speed()
			a.moves[side][i] = c.Moves()
			s.health[side][i] = c.Health()
		}
		act := s.active[side]
		if act < 0 || act >= RosterSize {
			return nil, fmt.Errorf("%w: %s active %d", ErrInvalidSlot, side, act)
		}
		if !a.rosters[side][act].Revealed {
			return nil, fmt.Errorf("%w: %s active %d", ErrUnrevealedActive, side, act)
		}
	}

	for side := Mine; side <= Yours; side++ {
		other := side.Other()
		for i, slot := range a.rosters[side] {
			if !slot.Revealed {
				continue
			}
			moves := a.moves[side][i]
			a.dmg[side][i] = make([][RosterSize]float64, len(moves))
			for m, mv := range moves {
				for t, target := range a.rosters[other] {
					if !target.Revealed {
						continue
					}
					a.dmg[side][i][m][t] = slot.Combatant.Damage(mv, target.Combatant)
				}
			}
		}
	}

	for i := range a.rosters[Mine] {
		for j := range a.rosters[Yours] {
			if a.rosters[Mine][i].Revealed && a.rosters[Yours][j].Revealed {
				a.duel[i][j] = Classify(a.bestPercent(Mine, i, j), a.bestPercent(Yours, j, i),
					SpeedOrder(a.speed[Mine][i], a.speed[Yours][j]))
			}
		}
	}
	return s, nil
}

// bestPercent is the largest share of the target's total health, in
// percent, that attacker can take off with one move.
func (a *arena) bestPercent(side Side, attacker, target int) float64 {
	best := 0.0
	for _, row := range a.dmg[side][attacker] {
		if row[target] > best {
			best = row[target]
		}
	}
	return best / a.total[side.Other()][target] * 100
}

func (s *BattleState) clone() *BattleState {
	c := *s
	return &c
}

func (s *BattleState) Rules() Rules { return s.a.rules }

func (s *BattleState) Roster(side Side) Roster { return s.a.rosters[side] }

func (s *BattleState) Active(side Side) int { return s.active[side] }

func (s *BattleState) ActiveCombatant(side Side) Combatant {
	return s.a.rosters[side][s.active[side]].Combatant
}

func (s *BattleState) Revealed(side Side, slot int) bool {
	return s.a.rosters[side][slot].Revealed
}

// Health is the present health of a slot. It may be negative after an
// overkill; HealthFraction floors it.
func (s *BattleState) Health(side Side, slot int) float64 { return s.health[side][slot] }

func (s *BattleState) Fainted(side Side, slot int) bool { return s.health[side][slot] <= 0 }

// HealthFraction is present over total health, clamped to [0, 1].
// Unrevealed slots are assumed to be at full health.
func (s *BattleState) HealthFraction(side Side, slot int) float64 {
	if !s.a.rosters[side][slot].Revealed {
		return 1
	}
	f := s.health[side][slot] / s.a.total[side][slot]
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
