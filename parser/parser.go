package parser

import (
	"encoding/json"
	"strconv"
	"strings"

	"showdown-advisor/data"
	"showdown-advisor/game"
)

// logPrefixes are the protocol lines echoed to the spectator stream.
var logPrefixes = []string{
	"|turn|", "|move|", "|switch|", "|drag|", "|damage|", "|-damage|", "|-heal|",
	"|faint|", "|start|", "|upkeep|", "|win|", "|lose|", "|tie|",
}

func ParseLog(logText string) (*game.BattleState, error) {
	state := game.NewBattleState()
	lines := strings.Split(logText, "\n")

	for _, line := range lines {
		ProcessLine(state, line)
	}

	return state, nil
}

// ProcessFrame applies every line of a server frame and returns the ones
// worth showing in the battle log.
func ProcessFrame(state *game.BattleState, frame string) []string {
	var logged []string
	for _, line := range strings.Split(frame, "\n") {
		ProcessLine(state, line)
		for _, p := range logPrefixes {
			if strings.HasPrefix(line, p) {
				logged = append(logged, line)
				break
			}
		}
	}
	return logged
}

// parseIdent splits "p2a: Chompy" into player id and name.
func parseIdent(ident string) (string, string, bool) {
	info := strings.SplitN(ident, ": ", 2)
	if len(info) != 2 || len(info[0]) < 2 {
		return "", "", false
	}
	return info[0][:2], strings.TrimSpace(info[1]), true
}

// parseDetails splits "Garchomp, L80, M" into species and level.
func parseDetails(details string) (string, int) {
	fields := strings.Split(details, ",")
	level := 100
	for _, f := range fields[1:] {
		f = strings.TrimSpace(f)
		if strings.HasPrefix(f, "L") {
			if l, err := strconv.Atoi(f[1:]); err == nil {
				level = l
			}
		}
	}
	return strings.TrimSpace(fields[0]), level
}

// applyCondition reads "85/100 par" or "0 fnt" into the Pokemon.
func applyCondition(poke *game.Pokemon, condition string) {
	fields := strings.Fields(condition)
	if len(fields) == 0 {
		return
	}
	hpInfo := strings.Split(fields[0], "/")
	hp, err := strconv.Atoi(hpInfo[0])
	if err != nil {
		return
	}
	poke.HP = hp
	if len(hpInfo) == 2 {
		if maxhp, err := strconv.Atoi(hpInfo[1]); err == nil {
			poke.MaxHP = maxhp
		}
	}
	poke.Status = ""
	if len(fields) > 1 {
		poke.Status = fields[1]
	}
	if poke.Status == "fnt" || hp <= 0 {
		poke.Status = ""
		poke.HP = 0
		poke.Fainted = true
	} else {
		poke.Fainted = false
	}
}

func lookup(state *game.BattleState, ident string) *game.Pokemon {
	playerID, name, ok := parseIdent(ident)
	if !ok {
		return nil
	}
	player, ok := state.Players[playerID]
	if !ok {
		return nil
	}
	return player.Find(name)
}

func learnMove(poke *game.Pokemon, name string) {
	if poke.KnowsMove(name) {
		return
	}
	md, _ := data.GetMove(name)
	poke.Moves = append(poke.Moves, game.Move{Name: md.Name, Type: md.Type, Power: md.Power, Category: md.Category})
}

type request struct {
	RQID int `json:"rqid"`
	Side struct {
		Name    string `json:"name"`
		ID      string `json:"id"`
		Pokemon []struct {
			Ident       string        `json:"ident"`
			Details     string        `json:"details"`
			Condition   string        `json:"condition"`
			Active      bool          `json:"active"`
			Stats       game.StatLine `json:"stats"`
			Moves       []string      `json:"moves"`
			BaseAbility string        `json:"baseAbility"`
		} `json:"pokemon"`
	} `json:"side"`
}

// processRequest reads the own side from a |request| payload: exact HP,
// stats and full movesets.
func processRequest(state *game.BattleState, payload string) {
	var req request
	if err := json.Unmarshal([]byte(payload), &req); err != nil || req.Side.ID == "" {
		return
	}
	state.RequestID = req.RQID
	player := state.Player(req.Side.ID)
	if req.Side.Name != "" {
		player.Name = req.Side.Name
	}
	player.TeamSize = len(req.Side.Pokemon)
	for _, rp := range req.Side.Pokemon {
		_, name, ok := parseIdent(rp.Ident)
		if !ok {
			continue
		}
		species, level := parseDetails(rp.Details)
		poke := player.Reveal(name, species)
		poke.Level = level
		poke.Type = data.GetPokemonTypes(species)
		stats := rp.Stats
		poke.Stats = &stats
		if rp.BaseAbility != "" {
			poke.Ability = rp.BaseAbility
		}
		applyCondition(poke, rp.Condition)
		for _, id := range rp.Moves {
			learnMove(poke, id)
		}
		if rp.Active {
			player.Active = poke
		}
	}
}

func ProcessLine(state *game.BattleState, line string) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "|request|") {
		processRequest(state, strings.TrimPrefix(line, "|request|"))
		return
	}
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return
	}
	switch parts[1] {
	case "player":
		if len(parts) >= 4 && parts[3] != "" {
			state.Player(parts[2]).Name = parts[3]
		}
	case "teamsize":
		if len(parts) >= 4 {
			if n, err := strconv.Atoi(parts[3]); err == nil {
				state.Player(parts[2]).TeamSize = n
			}
		}
	case "poke":
		if len(parts) >= 4 {
			species, level := parseDetails(parts[3])
			poke := state.Player(parts[2]).Reveal(species, species)
			poke.Level = level
			poke.Type = data.GetPokemonTypes(species)
		}
	case "switch", "drag":
		if len(parts) >= 5 {
			playerID, name, ok := parseIdent(parts[2])
			if !ok {
				return
			}
			species, level := parseDetails(parts[3])
			player := state.Player(playerID)
			poke := player.Reveal(name, species)
			poke.Level = level
			poke.Type = data.GetPokemonTypes(species)
			applyCondition(poke, parts[4])
			// Boosts do not survive switching out.
			if player.Active != nil && player.Active != poke {
				player.Active.Boosts = nil
			}
			player.Active = poke
		}
	case "move":
		if len(parts) >= 4 {
			if poke := lookup(state, parts[2]); poke != nil {
				learnMove(poke, parts[3])
			}
		}
	case "damage", "-damage", "-heal", "-sethp":
		if len(parts) >= 4 {
			if poke := lookup(state, parts[2]); poke != nil {
				applyCondition(poke, parts[3])
			}
		}
	case "faint":
		if len(parts) >= 3 {
			if poke := lookup(state, parts[2]); poke != nil {
				poke.HP = 0
				poke.Fainted = true
			}
		}
	case "turn":
		if len(parts) >= 3 {
			t, err := strconv.Atoi(parts[2])
			if err == nil {
				state.Turn = t
			}
		}
	case "win", "tie":
		state.Ended = true
	case "-status":
		if len(parts) >= 4 {
			if poke := lookup(state, parts[2]); poke != nil {
				poke.Status = parts[3]
			}
		}
	case "-curestatus":
		if len(parts) >= 4 {
			if poke := lookup(state, parts[2]); poke != nil {
				poke.Status = ""
			}
		}
	case "-boost", "-unboost", "-setboost":
		if len(parts) >= 5 {
			poke := lookup(state, parts[2])
			if poke == nil {
				return
			}
			stat := parts[3]
			amount, _ := strconv.Atoi(parts[4])
			if poke.Boosts == nil {
				poke.Boosts = make(map[string]int)
			}
			switch parts[1] {
			case "-boost":
				poke.Boosts[stat] += amount
			case "-unboost":
				poke.Boosts[stat] -= amount
			default:
				poke.Boosts[stat] = amount
			}
		}
	case "-clearboost":
		if len(parts) >= 3 {
			if poke := lookup(state, parts[2]); poke != nil {
				poke.Boosts = nil
			}
		}
	case "-weather":
		if len(parts) >= 3 {
			state.Weather = parts[2]
			if state.Weather == "none" {
				state.Weather = ""
			}
		}
	case "-fieldstart":
		if len(parts) >= 3 {
			effect := parts[2]
			state.FieldEffects[effect] = true
		}
	case "-fieldend":
		if len(parts) >= 3 {
			effect := parts[2]
			delete(state.FieldEffects, effect)
		}
	case "-ability":
		if len(parts) >= 4 {
			if poke := lookup(state, parts[2]); poke != nil {
				poke.Ability = parts[3]
			}
		}
	}
}
