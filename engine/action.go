package engine

import (
	"errors"
	"fmt"
)

type ActionKind int

const (
	UseMove ActionKind = iota
	SwitchTo
)

// Action is what one side does in one ply: use a move of its active
// combatant, or switch to a bench slot.
type Action struct {
	Kind ActionKind
	// MoveIndex and Move are set for UseMove.
	MoveIndex int
	Move      Move
	// Slot is the roster slot switched to, for SwitchTo.
	Slot int
}

func MoveAction(index int, m Move) Action {
	return Action{Kind: UseMove, MoveIndex: index, Move: m}
}

func SwitchAction(slot int) Action {
	return Action{Kind: SwitchTo, Slot: slot}
}

func (a Action) IsSwitch() bool { return a.Kind == SwitchTo }

func (a Action) String() string {
	if a.IsSwitch() {
		return fmt.Sprintf("switch %d", a.Slot)
	}
	if a.Move == nil {
		return fmt.Sprintf("move %d", a.MoveIndex)
	}
	return fmt.Sprintf("move %d (%s)", a.MoveIndex, a.Move)
}

var (
	ErrSwitchToActive     = errors.New("switch target is already active")
	ErrSwitchToUnrevealed = errors.New("switch target is unrevealed")
	ErrSwitchToFainted    = errors.New("switch target has fainted")
	ErrInvalidSlot        = errors.New("slot out of range")
	ErrInvalidMove        = errors.New("move index out of range")
	ErrUnrevealedActive   = errors.New("active slot is unrevealed")
	ErrInvalidCombatant   = errors.New("invalid combatant")
	ErrNoActions          = errors.New("no legal actions")
)

// ActionError reports an action whose precondition does not hold in the
// state it was applied to. It always indicates a caller bug.
type ActionError struct {
	Side   Side
	Action Action
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s action %s: %v", e.Side, e.Action, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }
