package advisor

import (
	"showdown-advisor/data"
	"showdown-advisor/engine"
)

type Option struct {
	Action engine.Action `json:"-"`
	Label  string        `json:"label"`
	Choice string        `json:"choice"`
	Value  float64       `json:"value"`
}

type Advice struct {
	Best      Option   `json:"best"`
	BestIndex int      `json:"best_index"`
	Options   []Option `json:"options"`
	Heuristic float64  `json:"heuristic"`
}

// Choice is the Showdown /choose argument for an action. Both forms name
// their target: the server reorders its own slot list after a switch, and a
// spectator only knows moves in the order they were used. A move nobody
// has seen yet has no choice.
func Choice(s *engine.BattleState, a engine.Action) string {
	if a.IsSwitch() {
		return "switch " + s.Roster(engine.Mine)[a.Slot].Combatant.String()
	}
	id := data.ToID(a.Move.String())
	if id == "" {
		return ""
	}
	return "move " + id
}

func Label(s *engine.BattleState, a engine.Action) string {
	if a.IsSwitch() {
		return "Cambiar a " + s.Roster(engine.Mine)[a.Slot].Combatant.String()
	}
	return a.Move.String()
}

func Advise(s *engine.BattleState, sr *engine.Searcher) (*Advice, error) {
	res, err := sr.Search(s)
	if err != nil {
		return nil, err
	}
	adv := &Advice{Heuristic: s.Heuristic()}
	for i, a := range res.Actions {
		opt := Option{Action: a, Label: Label(s, a), Choice: Choice(s, a), Value: res.Values[i]}
		adv.Options = append(adv.Options, opt)
		if i == res.Index {
			adv.Best, adv.BestIndex = opt, i
		}
	}
	return adv, nil
}
