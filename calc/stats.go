package calc

import (
	"math"

	"showdown-advisor/data"
	"showdown-advisor/engine"
)

// Random battle sets run 31 IVs and 84 EVs in every stat with a neutral
// nature; the formulas below assume the same.
const (
	iv      = 31
	evBonus = 84 / 4
)

func statCore(base, level int) float64 {
	return math.Floor(float64((2*base+iv+evBonus)*level) / 100)
}

func MaxHP(base, level int) float64 {
	return statCore(base, level) + float64(level) + 10
}

func Stat(base, level int) float64 {
	return statCore(base, level) + 5
}

// StatsAt converts base stats to effective stats at a level.
func StatsAt(base data.BaseStats, level int) engine.Stats {
	var s engine.Stats
	s[engine.StatAtk] = Stat(base.Atk, level)
	s[engine.StatDef] = Stat(base.Def, level)
	s[engine.StatSpA] = Stat(base.SpA, level)
	s[engine.StatSpD] = Stat(base.SpD, level)
	s[engine.StatSpe] = Stat(base.Spe, level)
	return s
}

var boostKeys = map[string]engine.Stat{
	"atk": engine.StatAtk,
	"def": engine.StatDef,
	"spa": engine.StatSpA,
	"spd": engine.StatSpD,
	"spe": engine.StatSpe,
}

// BoostMultiplier is the stat multiplier of a stage in [-6, 6].
func BoostMultiplier(stage int) float64 {
	if stage > 6 {
		stage = 6
	}
	if stage < -6 {
		stage = -6
	}
	if stage >= 0 {
		return float64(2+stage) / 2
	}
	return 2 / float64(2-stage)
}

func applyBoosts(s engine.Stats, boosts map[string]int) engine.Stats {
	for key, stage := range boosts {
		if st, ok := boostKeys[key]; ok {
			s[st] = math.Floor(s[st] * BoostMultiplier(stage))
		}
	}
	return s
}
