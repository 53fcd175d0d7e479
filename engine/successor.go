package engine

// Actions lists one UseMove per move of the side's active combatant, then
// one SwitchTo per revealed bench slot. Fainted bench members are listed
// unless the rules forbid switching to them.
func (s *BattleState) Actions(side Side) []Action {
	moves := s.a.moves[side][s.active[side]]
	actions := make([]Action, 0, len(moves)+RosterSize-1)
	for i, m := range moves {
		actions = append(actions, MoveAction(i, m))
	}
	for slot := range s.a.rosters[side] {
		if slot == s.active[side] || !s.Revealed(side, slot) {
			continue
		}
		if s.a.rules.ForbidFaintedSwitch && s.Fainted(side, slot) {
			continue
		}
		actions = append(actions, SwitchAction(slot))
	}
	return actions
}

func (s *BattleState) MyActions() []Action { return s.Actions(Mine) }

func (s *BattleState) YourActions() []Action { return s.Actions(Yours) }

func (s *BattleState) check(side Side, a Action) error {
	var err error
	switch a.Kind {
	case UseMove:
		if a.MoveIndex < 0 || a.MoveIndex >= len(s.a.moves[side][s.active[side]]) {
			err = ErrInvalidMove
		}
	case SwitchTo:
		switch {
		case a.Slot < 0 || a.Slot >= RosterSize:
			err = ErrInvalidSlot
		case a.Slot == s.active[side]:
			err = ErrSwitchToActive
		case !s.Revealed(side, a.Slot):
			err = ErrSwitchToUnrevealed
		case s.a.rules.ForbidFaintedSwitch && s.Fainted(side, a.Slot):
			err = ErrSwitchToFainted
		}
	default:
		err = ErrInvalidMove
	}
	if err != nil {
		return &ActionError{Side: side, Action: a, Err: err}
	}
	return nil
}

// Successor applies one ply to a copy of s. Switches resolve before moves;
// a move aimed at a side that switches hits the incoming combatant. When
// both sides attack, the faster one hits first and the slower one only
// retaliates if it is still standing. Speed ties go to the opponent.
func (s *BattleState) Successor(mine, yours Action) (*BattleState, error) {
	if err := s.check(Mine, mine); err != nil {
		return nil, err
	}
	if err := s.check(Yours, yours); err != nil {
		return nil, err
	}

	next := s.clone()
	if mine.IsSwitch() || yours.IsSwitch() {
		if mine.IsSwitch() {
			next.active[Mine] = mine.Slot
		}
		if yours.IsSwitch() {
			next.active[Yours] = yours.Slot
		}
		switch {
		case mine.IsSwitch() && !yours.IsSwitch():
			next.strike(Yours, yours.MoveIndex)
		case yours.IsSwitch() && !mine.IsSwitch():
			next.strike(Mine, mine.MoveIndex)
		}
		return next, nil
	}

	first, second := Yours, Mine
	if next.faster() == FasterMine {
		first, second = Mine, Yours
	}
	idx := [2]int{Mine: mine.MoveIndex, Yours: yours.MoveIndex}
	next.strike(first, idx[first])
	if next.health[second][next.active[second]] > 0 {
		next.strike(second, idx[second])
	}
	return next, nil
}

func (s *BattleState) faster() Faster {
	return SpeedOrder(s.a.speed[Mine][s.active[Mine]], s.a.speed[Yours][s.active[Yours]])
}

// strike applies the damage of the attacker's active combatant using the
// given move to the defender's active combatant.
func (s *BattleState) strike(attacker Side, move int) {
	defender := attacker.Other()
	from, to := s.active[attacker], s.active[defender]
	s.health[defender][to] -= s.a.dmg[attacker][from][move][to]
}
