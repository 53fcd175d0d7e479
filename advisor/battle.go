package advisor

import (
	"errors"
	"fmt"

	"showdown-advisor/calc"
	"showdown-advisor/data"
	"showdown-advisor/engine"
	"showdown-advisor/game"
)

var ErrNotReady = errors.New("batalla sin datos suficientes")

// Options tune how tracked state becomes an engine state.
type Options struct {
	// Level is assumed when the protocol did not give one.
	Level int
	Rules engine.Rules
}

func (o Options) level(l int) int {
	if l > 0 {
		return l
	}
	if o.Level > 0 {
		return o.Level
	}
	return 100
}

// Base stats assumed for species missing from the dex.
var fallbackBase = data.BaseStats{HP: 80, Atk: 80, Def: 80, SpA: 80, SpD: 80, Spe: 80}

// FromBattle builds the position as playerID sees it. Opponent team
// members that have not shown up yet are unrevealed slots.
func FromBattle(state *game.BattleState, playerID string, opts Options) (*engine.BattleState, error) {
	me, ok := state.Players[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: jugador %s desconocido", ErrNotReady, playerID)
	}
	you := state.Opponent(playerID)
	if you == nil {
		return nil, fmt.Errorf("%w: sin rival", ErrNotReady)
	}
	mine, myActive, err := roster(me, opts)
	if err != nil {
		return nil, err
	}
	yours, yourActive, err := roster(you, opts)
	if err != nil {
		return nil, err
	}
	return engine.NewBattleState(mine, yours, myActive, yourActive, opts.Rules)
}

func roster(p *game.Player, opts Options) (engine.Roster, int, error) {
	var r engine.Roster
	active := -1
	for i, poke := range p.Team {
		if i >= engine.RosterSize {
			break
		}
		r[i] = engine.Known(convert(poke, opts))
		if poke == p.Active {
			active = i
		}
	}
	if active < 0 {
		return r, 0, fmt.Errorf("%w: %s sin pokemon activo", ErrNotReady, p.ID)
	}
	return r, active, nil
}

func convert(poke *game.Pokemon, opts Options) *calc.Pokemon {
	species := poke.Species
	if species == "" {
		species = poke.Name
	}
	dex, ok := data.GetPokemon(species)
	if !ok {
		dex = data.PokemonData{Name: species, BaseStats: fallbackBase}
	}
	if len(poke.Type) > 0 {
		dex.Types = poke.Type
	}

	moves := make([]calc.Move, 0, len(poke.Moves))
	for _, m := range poke.Moves {
		moves = append(moves, calc.Move{Name: m.Name, Type: m.Type, Power: m.Power, Category: calc.ParseCategory(m.Category)})
	}

	cp := calc.New(poke.Name, opts.level(poke.Level), dex, moves)
	if st := poke.Stats; st != nil {
		cp.Stats[engine.StatAtk] = float64(st.Atk)
		cp.Stats[engine.StatDef] = float64(st.Def)
		cp.Stats[engine.StatSpA] = float64(st.SpA)
		cp.Stats[engine.StatSpD] = float64(st.SpD)
		cp.Stats[engine.StatSpe] = float64(st.Spe)
		if poke.MaxHP > 0 {
			cp.MaxHP = float64(poke.MaxHP)
		}
	}
	if poke.MaxHP > 0 {
		cp.HP = cp.MaxHP * float64(poke.HP) / float64(poke.MaxHP)
	}
	if poke.Fainted {
		cp.HP = 0
	}
	cp.Boosts = poke.Boosts
	if len(cp.Moveset) == 0 {
		cp.Moveset = []calc.Move{placeholder(cp)}
	}
	return cp
}

// placeholder stands in for a moveset nobody has seen: a STAB hit of
// default power on the stronger attacking side.
func placeholder(p *calc.Pokemon) calc.Move {
	m := calc.Move{Name: "?", Power: data.DefaultPower, Category: calc.Physical}
	if len(p.Types) > 0 {
		m.Type = p.Types[0]
	}
	if p.Stats[engine.StatSpA] > p.Stats[engine.StatAtk] {
		m.Category = calc.Special
	}
	return m
}
