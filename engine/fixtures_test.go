package engine

import "testing"

type move string

func (m move) String() string { return string(m) }

// mon deals a fixed amount of damage per move, whatever the target.
type mon struct {
	name  string
	hp    float64
	total float64
	speed float64
	moves []Move
	hits  map[string]float64
}

func (m *mon) String() string { return m.name }
func (m *mon) Health() float64 { return m.hp }
func (m *mon) TotalHealth() float64 { return m.total }
func (m *mon) Moves() []Move { return m.moves }
func (m *mon) EffectiveStats() Stats {
	var s Stats
	s[StatSpe] = m.speed
	return s
}

func (m *mon) Damage(mv Move, target Combatant) float64 { return m.hits[mv.String()] }

// fighter builds a full-health combatant with one move per damage value,
// named "<name>-0", "<name>-1", ...
func fighter(name string, total, speed float64, damage ...float64) *mon {
	m := &mon{name: name, hp: total, total: total, speed: speed, hits: map[string]float64{}}
	for i, d := range damage {
		mv := move(name + "-" + string(rune('0'+i)))
		m.moves = append(m.moves, mv)
		m.hits[string(mv)] = d
	}
	return m
}

func (m *mon) at(hp float64) *mon {
	m.hp = hp
	return m
}

func mustState(t *testing.T, mine, yours Roster, myActive, yourActive int, rules Rules) *BattleState {
	t.Helper()
	s, err := NewBattleState(mine, yours, myActive, yourActive, rules)
	if err != nil {
		t.Fatalf("NewBattleState failed: %v", err)
	}
	return s
}

func duel(t *testing.T, a, b *mon) *BattleState {
	t.Helper()
	return mustState(t, NewRoster(a), NewRoster(b), 0, 0, Rules{})
}
