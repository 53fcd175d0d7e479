package calc

import (
	"math"

	"showdown-advisor/data"
	"showdown-advisor/engine"
)

type Category int

const (
	Physical Category = iota
	Special
	Status
)

func ParseCategory(s string) Category {
	switch s {
	case "Special":
		return Special
	case "Status":
		return Status
	}
	return Physical
}

type Move struct {
	Name     string
	Type     string
	Power    int
	Category Category
}

func (m Move) String() string { return m.Name }

// Pokemon is a battler as the engine sees it.
type Pokemon struct {
	Name    string
	Level   int
	Types   []string
	HP      float64
	MaxHP   float64
	Stats   engine.Stats
	Boosts  map[string]int
	Moveset []Move
}

// New builds a full-health Pokemon from dex data at a level.
func New(name string, level int, dex data.PokemonData, moves []Move) *Pokemon {
	maxHP := MaxHP(dex.BaseStats.HP, level)
	return &Pokemon{
		Name:    name,
		Level:   level,
		Types:   dex.Types,
		HP:      maxHP,
		MaxHP:   maxHP,
		Stats:   StatsAt(dex.BaseStats, level),
		Moveset: moves,
	}
}

func (p *Pokemon) String() string { return p.Name }

func (p *Pokemon) Health() float64 { return p.HP }

func (p *Pokemon) TotalHealth() float64 { return p.MaxHP }

func (p *Pokemon) EffectiveStats() engine.Stats { return applyBoosts(p.Stats, p.Boosts) }

func (p *Pokemon) Moves() []engine.Move {
	moves := make([]engine.Move, len(p.Moveset))
	for i, m := range p.Moveset {
		moves[i] = m
	}
	return moves
}

func (p *Pokemon) hasType(t string) bool {
	for _, own := range p.Types {
		if own == t {
			return true
		}
	}
	return false
}

// AverageRoll is the mean of the 85-100% random damage factor.
const AverageRoll = 0.925

// Damage uses the generation 5+ formula with the average roll, STAB and
// type effectiveness. Status moves and moves not built by this package
// deal nothing.
func (p *Pokemon) Damage(move engine.Move, target engine.Combatant) float64 {
	m, ok := move.(Move)
	if !ok || m.Category == Status || m.Power <= 0 {
		return 0
	}
	atk, def := p.EffectiveStats(), target.EffectiveStats()
	a, d := atk[engine.StatAtk], def[engine.StatDef]
	if m.Category == Special {
		a, d = atk[engine.StatSpA], def[engine.StatSpD]
	}
	if d <= 0 {
		d = 1
	}

	lvl := math.Floor(2*float64(p.Level)/5) + 2
	base := math.Floor(math.Floor(lvl*float64(m.Power)*a/d)/50) + 2

	mod := AverageRoll
	if p.hasType(m.Type) {
		mod *= 1.5
	}
	if t, ok := target.(*Pokemon); ok {
		mod *= data.TypeEffectiveness(m.Type, t.Types)
	}
	return base * mod
}
