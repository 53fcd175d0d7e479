package game

import "showdown-advisor/data"

type Move struct {
	Name     string
	Type     string
	Power    int
	Category string
}

// StatLine holds exact stats, only known for the player's own side.
type StatLine struct {
	Atk int `json:"atk"`
	Def int `json:"def"`
	SpA int `json:"spa"`
	SpD int `json:"spd"`
	Spe int `json:"spe"`
}

type Pokemon struct {
	Name    string
	Species string
	Level   int
	HP      int
	MaxHP   int
	Fainted bool
	Moves   []Move
	Status  string
	Ability string
	Boosts  map[string]int
	Type    []string
	Stats   *StatLine
}

type Player struct {
	ID       string
	Name     string
	TeamSize int
	Team     []*Pokemon
	Active   *Pokemon
}

type BattleState struct {
	Players      map[string]*Player
	Turn         int
	Weather      string
	FieldEffects map[string]bool
	RequestID    int
	Ended        bool
}

func NewBattleState() *BattleState {
	return &BattleState{
		Players:      make(map[string]*Player),
		Turn:         0,
		Weather:      "",
		FieldEffects: make(map[string]bool),
	}
}

// Player returns the player with that id, creating it on first sight.
func (s *BattleState) Player(id string) *Player {
	p, ok := s.Players[id]
	if !ok {
		p = &Player{ID: id}
		s.Players[id] = p
	}
	return p
}

// Opponent returns the other player, if known.
func (s *BattleState) Opponent(id string) *Player {
	for pid, p := range s.Players {
		if pid != id {
			return p
		}
	}
	return nil
}

// Find matches a nickname or a species against the team.
func (p *Player) Find(name string) *Pokemon {
	id := data.ToID(name)
	for _, poke := range p.Team {
		if data.ToID(poke.Name) == id {
			return poke
		}
	}
	for _, poke := range p.Team {
		if data.ToID(poke.Species) == id {
			return poke
		}
	}
	return nil
}

// Reveal returns the team member called name, appending it when it has
// not been seen. Slot order is the order of first sighting.
func (p *Player) Reveal(name, species string) *Pokemon {
	poke := p.Find(name)
	if poke == nil && species != "" {
		poke = p.Find(species)
		// A preview entry only knows the species; the nickname comes later.
		if poke != nil && poke.Name != poke.Species {
			poke = nil
		}
	}
	if poke == nil {
		poke = &Pokemon{Name: name, Species: species}
		p.Team = append(p.Team, poke)
	}
	poke.Name = name
	if species != "" {
		poke.Species = species
	}
	return poke
}

func (p *Pokemon) KnowsMove(name string) bool {
	id := data.ToID(name)
	for _, m := range p.Moves {
		if data.ToID(m.Name) == id {
			return true
		}
	}
	return false
}
