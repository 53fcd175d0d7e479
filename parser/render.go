package parser

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"showdown-advisor/advisor"
	"showdown-advisor/data"
	"showdown-advisor/game"
)

func effectivenessNote(eff float64) string {
	switch {
	case eff == 0:
		return " (No afecta)"
	case eff > 1:
		return " (¡Súper efectivo!)"
	case eff < 1:
		return " (No muy efectivo)"
	}
	return ""
}

// dangerousMoves ranks the attacker's known moves by power times
// effectiveness against the defender, top five.
func dangerousMoves(attacker, defender *game.Pokemon) []game.Move {
	type moveScore struct {
		move  game.Move
		score float64
	}
	var scored []moveScore
	for _, move := range attacker.Moves {
		power := move.Power
		if power == 0 && move.Category != "Status" {
			power = data.DefaultPower
		}
		score := float64(power) * data.TypeEffectiveness(move.Type, defender.Type)
		scored = append(scored, moveScore{move, score})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	res := []game.Move{}
	for i := 0; i < len(scored) && i < 5; i++ {
		res = append(res, scored[i].move)
	}
	return res
}

func renderActive(sb *strings.Builder, poke *game.Pokemon) {
	esc := template.HTMLEscapeString
	ps := "?/?"
	if poke.MaxHP > 0 {
		ps = fmt.Sprintf("%d/%d", poke.HP, poke.MaxHP)
	}
	fainted := ""
	if poke.Fainted {
		fainted = "<span style='color:#e74c3c;'>(Debilitado)</span>"
	}
	status := ""
	if poke.Status != "" {
		status = fmt.Sprintf("<span style='color:#f1c40f;'>[%s]</span>", esc(poke.Status))
	}
	ability := ""
	if poke.Ability != "" {
		ability = fmt.Sprintf("<span style='color:#7ed6df;'>%s</span>", esc(poke.Ability))
	}
	sb.WriteString(fmt.Sprintf("<b>%s</b> %s %s <span style='color:#aaa;'>[%s]</span> %s<br>", esc(poke.Name), fainted, status, ps, ability))
	if len(poke.Boosts) > 0 {
		titler := cases.Title(language.Und)
		stats := make([]string, 0, len(poke.Boosts))
		for stat := range poke.Boosts {
			stats = append(stats, stat)
		}
		sort.Strings(stats)
		boosts := make([]string, 0, len(stats))
		for _, stat := range stats {
			if val := poke.Boosts[stat]; val != 0 {
				boosts = append(boosts, fmt.Sprintf("%+d %s", val, titler.String(stat)))
			}
		}
		if len(boosts) > 0 {
			sb.WriteString("<span style='color:#e67e22;'>Boosts: " + esc(strings.Join(boosts, ", ")) + "</span><br>")
		}
	}
	if len(poke.Moves) > 0 {
		sb.WriteString("Movimientos vistos: ")
		moveNames := []string{}
		for _, m := range poke.Moves {
			moveNames = append(moveNames, esc(m.Name))
		}
		sb.WriteString(strings.Join(moveNames, ", "))
		sb.WriteString("<br>")
	}
}

// RenderBattleState summarizes the battle as an HTML fragment. me is the
// player the advice is for; advice may be nil.
func RenderBattleState(state *game.BattleState, me string, advice *advisor.Advice) string {
	var sb strings.Builder
	esc := template.HTMLEscapeString

	sb.WriteString("<div class='battle-summary'>")

	if state.Weather != "" {
		sb.WriteString(fmt.Sprintf("<div><b>Clima:</b> %s</div>", esc(state.Weather)))
	}
	if len(state.FieldEffects) > 0 {
		effects := make([]string, 0, len(state.FieldEffects))
		for eff := range state.FieldEffects {
			effects = append(effects, eff)
		}
		sort.Strings(effects)
		sb.WriteString("<div><b>Campo:</b> " + esc(strings.Join(effects, ", ")) + "</div>")
	}

	sb.WriteString(fmt.Sprintf("<h3>Turno: %d</h3>", state.Turn))

	ids := make([]string, 0, len(state.Players))
	for id := range state.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		player := state.Players[id]
		name := player.Name
		if name == "" {
			name = player.ID
		}
		sb.WriteString(fmt.Sprintf("<h4>%s</h4>", esc(name)))
		if player.Active != nil {
			renderActive(&sb, player.Active)
		}
	}

	p1 := state.Players[me]
	p2 := state.Opponent(me)
	if p1 != nil && p2 != nil && p1.Active != nil && p2.Active != nil {
		name := p1.Name
		if name == "" {
			name = p1.ID
		}
		sb.WriteString("<div class='suggestion'><b>Sugerencia para " + esc(name) + ":</b><br>")
		if advice != nil {
			sb.WriteString(fmt.Sprintf("Mejor acción: <b>%s</b>", esc(advice.Best.Label)))
			if advice.Best.Choice != "" {
				sb.WriteString(fmt.Sprintf(" <code>/choose %s</code>", esc(advice.Best.Choice)))
			}
			sb.WriteString(fmt.Sprintf(" (valor esperado %.2f)<br>", advice.Best.Value))
			sb.WriteString("<ul class='options'>")
			for _, opt := range advice.Options {
				sb.WriteString(fmt.Sprintf("<li>%s: %.2f</li>", esc(opt.Label), opt.Value))
			}
			sb.WriteString("</ul>")
		} else {
			sb.WriteString("Sin recomendación todavía.<br>")
		}
		if len(p2.Active.Moves) > 0 {
			sb.WriteString("<br>Movimientos peligrosos de " + esc(p2.Active.Name) + ":<ul>")
			for _, m := range dangerousMoves(p2.Active, p1.Active) {
				eff := data.TypeEffectiveness(m.Type, p1.Active.Type)
				sb.WriteString(fmt.Sprintf("<li>%s [%s] Potencia estimada: %d%s</li>", esc(m.Name), esc(m.Type), m.Power, effectivenessNote(eff)))
			}
			sb.WriteString("</ul>")
		}
		sb.WriteString("</div>")
	}

	sb.WriteString("</div>")
	return sb.String()
}
