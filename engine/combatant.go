package engine

import "fmt"

// RosterSize is the number of slots a side fields.
const RosterSize = 6

type Stat int

const (
	StatAtk Stat = iota
	StatDef
	StatSpA
	StatSpD
	StatSpe
	numStats
)

// Stats is an effective stat vector. HP is tracked separately.
type Stats [numStats]float64

func (s Stats) Speed() float64 { return s[StatSpe] }

// Move is opaque to the engine. It is only handed back to Combatant.Damage.
type Move interface {
	String() string
}

// Combatant is the capability set the engine needs from a roster member.
type Combatant interface {
	String() string
	// Health is the present health at the time the snapshot was taken.
	Health() float64
	TotalHealth() float64
	EffectiveStats() Stats
	Moves() []Move
	// Damage is the raw damage this combatant deals to target with move.
	Damage(move Move, target Combatant) float64
}

// Slot is one roster position. An unrevealed slot holds an opposing
// combatant that has not been seen yet.
type Slot struct {
	Combatant Combatant
	Revealed  bool
}

func Known(c Combatant) Slot { return Slot{Combatant: c, Revealed: true} }

func Unrevealed() Slot { return Slot{} }

type Roster [RosterSize]Slot

// NewRoster fills the roster in order; the remaining slots stay unrevealed.
func NewRoster(members ...Combatant) Roster {
	var r Roster
	for i, c := range members {
		if i >= RosterSize {
			break
		}
		r[i] = Known(c)
	}
	return r
}

type Side int

const (
	Mine Side = iota
	Yours
)

func (s Side) Other() Side { return 1 - s }

func (s Side) String() string {
	switch s {
	case Mine:
		return "mine"
	case Yours:
		return "yours"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}
