package advisor

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"showdown-advisor/data"
	"showdown-advisor/engine"
	"showdown-advisor/game"
)

// Member is one team member in a snapshot. HP is a fraction of the
// total; omitted means full health.
type Member struct {
	Species string         `yaml:"species" json:"species"`
	Name    string         `yaml:"name,omitempty" json:"name,omitempty"`
	Level   int            `yaml:"level,omitempty" json:"level,omitempty"`
	HP      *float64       `yaml:"hp,omitempty" json:"hp,omitempty"`
	Moves   []string       `yaml:"moves" json:"moves"`
	Boosts  map[string]int `yaml:"boosts,omitempty" json:"boosts,omitempty"`
}

// Team lists the revealed members in slot order; missing slots are
// unrevealed.
type Team struct {
	Active  int      `yaml:"active" json:"active"`
	Members []Member `yaml:"team" json:"team"`
}

// Snapshot describes a position without a live battle.
type Snapshot struct {
	Level int  `yaml:"level,omitempty" json:"level,omitempty"`
	Mine  Team `yaml:"mine" json:"mine"`
	Yours Team `yaml:"yours" json:"yours"`
}

// snapshotScale is the integer HP a snapshot fraction is stored against.
const snapshotScale = 1000

func LoadSnapshot(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSnapshot(b)
}

// ParseSnapshot reads YAML, or JSON since it is valid YAML.
func ParseSnapshot(b []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("snapshot inválido: %w", err)
	}
	return &s, nil
}

// Battle converts the snapshot into tracked battle state, with "p1" as
// the own side.
func (s *Snapshot) Battle() (*game.BattleState, error) {
	state := game.NewBattleState()
	for _, side := range []struct {
		id   string
		team Team
	}{{"p1", s.Mine}, {"p2", s.Yours}} {
		player := state.Player(side.id)
		if len(side.team.Members) > engine.RosterSize {
			return nil, fmt.Errorf("%s: %d miembros, máximo %d", side.id, len(side.team.Members), engine.RosterSize)
		}
		for i, m := range side.team.Members {
			dex, ok := data.GetPokemon(m.Species)
			if !ok {
				return nil, fmt.Errorf("%s slot %d: especie desconocida: %s", side.id, i, m.Species)
			}
			name := m.Name
			if name == "" {
				name = dex.Name
			}
			poke := &game.Pokemon{Name: name, Species: dex.Name, Level: m.Level}
			player.Team = append(player.Team, poke)
			if poke.Level == 0 {
				poke.Level = s.Level
			}
			poke.Type = dex.Types
			poke.MaxHP = snapshotScale
			poke.HP = snapshotScale
			if m.HP != nil {
				frac := math.Min(math.Max(*m.HP, 0), 1)
				poke.HP = int(math.Round(frac * snapshotScale))
			}
			poke.Fainted = poke.HP <= 0
			poke.Boosts = m.Boosts
			for _, mv := range m.Moves {
				md, err := data.GetMove(mv)
				if err != nil {
					return nil, fmt.Errorf("%s slot %d: %w", side.id, i, err)
				}
				poke.Moves = append(poke.Moves, game.Move{Name: md.Name, Type: md.Type, Power: md.Power, Category: md.Category})
			}
		}
		if side.team.Active < 0 || side.team.Active >= len(player.Team) {
			return nil, fmt.Errorf("%s: activo %d fuera de rango", side.id, side.team.Active)
		}
		player.Active = player.Team[side.team.Active]
		player.TeamSize = engine.RosterSize
	}
	return state, nil
}

func (s *Snapshot) State(opts Options) (*engine.BattleState, error) {
	state, err := s.Battle()
	if err != nil {
		return nil, err
	}
	if opts.Level == 0 {
		opts.Level = s.Level
	}
	return FromBattle(state, "p1", opts)
}
