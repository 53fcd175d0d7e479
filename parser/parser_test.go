package parser

import (
	"strings"
	"testing"

	"showdown-advisor/data/datatest"
	"showdown-advisor/game"
)

const battleLog = `|player|p1|Ash|1
|player|p2|Gary|2
|teamsize|p1|6
|teamsize|p2|6
|start
|switch|p1a: Chompy|Garchomp, L80, M|100/100
|switch|p2a: Heatran|Heatran, L82|100/100
|turn|1
|move|p1a: Chompy|Earthquake|p2a: Heatran
|-damage|p2a: Heatran|0 fnt
|faint|p2a: Heatran
|switch|p2a: Rotom|Rotom-Wash, L86|100/100
|turn|2
|move|p2a: Rotom|Hydro Pump|p1a: Chompy
|-damage|p1a: Chompy|40/100 brn
|-boost|p1a: Chompy|atk|2
|-weather|SunnyDay
|-fieldstart|move: Electric Terrain
`

func TestParseLog(t *testing.T) {
	datatest.Load(t)
	state, err := ParseLog(battleLog)
	if err != nil {
		t.Fatalf("ParseLog failed: %v", err)
	}
	if state.Turn != 2 {
		t.Errorf("Turn = %d, want 2", state.Turn)
	}
	if state.Weather != "SunnyDay" || !state.FieldEffects["move: Electric Terrain"] {
		t.Errorf("weather/field = %q/%v", state.Weather, state.FieldEffects)
	}

	p1 := state.Players["p1"]
	if p1 == nil || p1.Name != "Ash" || p1.TeamSize != 6 {
		t.Fatalf("p1 = %+v", p1)
	}
	chompy := p1.Active
	if chompy == nil || chompy.Name != "Chompy" || chompy.Species != "Garchomp" || chompy.Level != 80 {
		t.Fatalf("p1 active = %+v", chompy)
	}
	if chompy.HP != 40 || chompy.MaxHP != 100 || chompy.Status != "brn" {
		t.Errorf("Chompy condition = %d/%d %q", chompy.HP, chompy.MaxHP, chompy.Status)
	}
	if chompy.Boosts["atk"] != 2 {
		t.Errorf("Chompy boosts = %v", chompy.Boosts)
	}
	if len(chompy.Moves) != 1 || chompy.Moves[0].Name != "Earthquake" || chompy.Moves[0].Power != 100 {
		t.Errorf("Chompy moves = %+v", chompy.Moves)
	}

	p2 := state.Players["p2"]
	if len(p2.Team) != 2 {
		t.Fatalf("p2 team size = %d, want 2", len(p2.Team))
	}
	if heatran := p2.Team[0]; !heatran.Fainted || heatran.HP != 0 {
		t.Errorf("Heatran should be fainted: %+v", heatran)
	}
	if p2.Active != p2.Team[1] || p2.Active.Species != "Rotom-Wash" {
		t.Errorf("p2 active = %+v", p2.Active)
	}
	if got := p2.Active.Type; len(got) != 2 || got[0] != "Electric" {
		t.Errorf("Rotom-Wash types = %v", got)
	}
}

func TestSwitchClearsBoosts(t *testing.T) {
	datatest.Load(t)
	state := game.NewBattleState()
	ProcessLine(state, "|switch|p1a: Weavile|Weavile|100/100")
	ProcessLine(state, "|-boost|p1a: Weavile|atk|2")
	ProcessLine(state, "|switch|p1a: Clefable|Clefable|100/100")
	ProcessLine(state, "|switch|p1a: Weavile|Weavile|100/100")

	p1 := state.Players["p1"]
	if len(p1.Team) != 2 {
		t.Fatalf("team = %d members, want 2", len(p1.Team))
	}
	if len(p1.Active.Boosts) != 0 {
		t.Errorf("boosts survived a switch: %v", p1.Active.Boosts)
	}
}

func TestBoostsAndStatus(t *testing.T) {
	datatest.Load(t)
	state := game.NewBattleState()
	ProcessLine(state, "|switch|p2a: Tyranitar|Tyranitar, L84|100/100")
	ty := state.Players["p2"].Active

	tests := []struct {
		line  string
		check func() bool
	}{
		{"|-boost|p2a: Tyranitar|spe|1", func() bool { return ty.Boosts["spe"] == 1 }},
		{"|-unboost|p2a: Tyranitar|spe|2", func() bool { return ty.Boosts["spe"] == -1 }},
		{"|-setboost|p2a: Tyranitar|atk|6", func() bool { return ty.Boosts["atk"] == 6 }},
		{"|-clearboost|p2a: Tyranitar", func() bool { return ty.Boosts == nil }},
		{"|-status|p2a: Tyranitar|par", func() bool { return ty.Status == "par" }},
		{"|-curestatus|p2a: Tyranitar|par", func() bool { return ty.Status == "" }},
		{"|-heal|p2a: Tyranitar|75/100", func() bool { return ty.HP == 75 }},
		{"|-ability|p2a: Tyranitar|Sand Stream", func() bool { return ty.Ability == "Sand Stream" }},
		{"|-weather|none", func() bool { return state.Weather == "" }},
		{"|win|Gary", func() bool { return state.Ended }},
	}
	for _, tc := range tests {
		ProcessLine(state, tc.line)
		if !tc.check() {
			t.Errorf("after %q: unexpected state %+v", tc.line, ty)
		}
	}
}

func TestPreviewThenSwitch(t *testing.T) {
	datatest.Load(t)
	state := game.NewBattleState()
	ProcessLine(state, "|poke|p2|Garchomp, L80|")
	ProcessLine(state, "|poke|p2|Clefable, L88|")
	ProcessLine(state, "|switch|p2a: Puff|Clefable, L88|100/100")

	p2 := state.Players["p2"]
	if len(p2.Team) != 2 {
		t.Fatalf("team = %d members, want 2", len(p2.Team))
	}
	if p2.Team[1].Name != "Puff" || p2.Active != p2.Team[1] {
		t.Errorf("preview slot not renamed: %+v", p2.Team[1])
	}
}

const requestLine = `|request|{"rqid":7,"side":{"name":"Ash","id":"p1","pokemon":[` +
	`{"ident":"p1: Chompy","details":"Garchomp, L80, M","condition":"250/300","active":true,` +
	`"stats":{"atk":250,"def":200,"spa":180,"spd":190,"spe":230},"moves":["earthquake","dragonclaw"],"baseAbility":"roughskin"},` +
	`{"ident":"p1: Clefable","details":"Clefable, L88, F","condition":"0 fnt","active":false,` +
	`"stats":{"atk":150,"def":200,"spa":220,"spd":230,"spe":160},"moves":["moonblast","softboiled"],"baseAbility":"magicguard"}` +
	`]}}`

func TestProcessRequest(t *testing.T) {
	datatest.Load(t)
	state := game.NewBattleState()
	ProcessLine(state, requestLine)

	if state.RequestID != 7 {
		t.Errorf("RequestID = %d, want 7", state.RequestID)
	}
	p1 := state.Players["p1"]
	if p1 == nil || len(p1.Team) != 2 || p1.TeamSize != 2 {
		t.Fatalf("p1 = %+v", p1)
	}
	chompy := p1.Team[0]
	if p1.Active != chompy {
		t.Errorf("active = %+v, want Chompy", p1.Active)
	}
	if chompy.HP != 250 || chompy.MaxHP != 300 || chompy.Level != 80 {
		t.Errorf("Chompy = %d/%d L%d", chompy.HP, chompy.MaxHP, chompy.Level)
	}
	if chompy.Stats == nil || chompy.Stats.Spe != 230 {
		t.Errorf("Chompy stats = %+v", chompy.Stats)
	}
	if len(chompy.Moves) != 2 || chompy.Moves[1].Name != "Dragon Claw" {
		t.Errorf("Chompy moves = %+v", chompy.Moves)
	}
	if !p1.Team[1].Fainted {
		t.Errorf("Clefable should be fainted")
	}

	// Malformed payloads are ignored.
	ProcessLine(state, "|request|{not json")
	if state.RequestID != 7 {
		t.Errorf("RequestID changed on bad payload: %d", state.RequestID)
	}
}

func TestProcessFrame(t *testing.T) {
	datatest.Load(t)
	state := game.NewBattleState()
	frame := "|\n|t:|1700000000\n|switch|p1a: Weavile|Weavile|100/100\n|-boost|p1a: Weavile|atk|1\n|turn|3"
	logged := ProcessFrame(state, frame)
	want := []string{"|switch|p1a: Weavile|Weavile|100/100", "|turn|3"}
	if len(logged) != len(want) {
		t.Fatalf("logged = %q, want %q", logged, want)
	}
	for i := range want {
		if logged[i] != want[i] {
			t.Errorf("logged[%d] = %q, want %q", i, logged[i], want[i])
		}
	}
	if state.Turn != 3 || state.Players["p1"].Active.Boosts["atk"] != 1 {
		t.Errorf("frame not applied: turn %d", state.Turn)
	}
}

func TestIgnoresUnknownAndShortLines(t *testing.T) {
	state := game.NewBattleState()
	for _, line := range []string{"", "|", "|switch|p1a", "|damage|p9a: Nobody|10/100", "|move|garbage", "|turn|x"} {
		ProcessLine(state, line)
	}
	if state.Turn != 0 || len(state.Players) != 0 {
		t.Errorf("state changed: %+v", state)
	}
}

func TestRenderBattleState(t *testing.T) {
	datatest.Load(t)
	state, _ := ParseLog(battleLog)
	state.Players["p2"].Active.Name = "<Rotom>"

	out := RenderBattleState(state, "p1", nil)
	for _, want := range []string{"Turno: 2", "Clima:</b> SunnyDay", "Chompy", "+2 Atk", "Sin recomendación todavía.", "&lt;Rotom&gt;"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<Rotom>") {
		t.Errorf("render did not escape names")
	}
	// Water is neutral on Dragon/Ground, so no effectiveness note.
	if !strings.Contains(out, "Hydro Pump [Water] Potencia estimada: 110</li>") {
		t.Errorf("dangerous moves missing Hydro Pump:\n%s", out)
	}
}

func TestDangerousMovesOrder(t *testing.T) {
	attacker := &game.Pokemon{Moves: []game.Move{
		{Name: "Ice Shard", Type: "Ice", Power: 40, Category: "Physical"},
		{Name: "Knock Off", Type: "Dark", Power: 65, Category: "Physical"},
		{Name: "Icicle Crash", Type: "Ice", Power: 85, Category: "Physical"},
	}}
	defender := &game.Pokemon{Type: []string{"Dragon", "Ground"}}
	got := dangerousMoves(attacker, defender)
	want := []string{"Icicle Crash", "Ice Shard", "Knock Off"}
	for i, m := range got {
		if m.Name != want[i] {
			t.Errorf("dangerousMoves[%d] = %s, want %s", i, m.Name, want[i])
		}
	}
}
