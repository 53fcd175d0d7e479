// Command advise prints the recommended action for a position given as a
// snapshot file or a saved battle log.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"k8s.io/klog/v2"

	"showdown-advisor/advisor"
	"showdown-advisor/config"
	"showdown-advisor/data"
	"showdown-advisor/engine"
	"showdown-advisor/parser"
)

func main() {
	klog.InitFlags(nil)
	configPath := flag.String("config", "", "YAML config file")
	snapshotPath := flag.String("snapshot", "", "YAML or JSON snapshot of the position")
	logPath := flag.String("log", "", "saved Showdown battle log")
	player := flag.String("player", "", "side to advise when reading a log (p1 or p2)")
	depth := flag.Int("depth", 0, "search depth, overrides the config")
	flag.Parse()
	defer klog.Flush()

	cfg, err := config.Load(*configPath)
	if err != nil {
		klog.Exitf("config: %v", err)
	}
	if *depth > 0 {
		cfg.Search.MaxDepth = *depth
	}
	if err := data.LoadPokemonData(cfg.PokedexPath); err != nil {
		klog.Exitf("Error cargando datos de Pokémon: %v", err)
	}
	if err := data.LoadMoveData(cfg.MovesPath); err != nil {
		klog.Exitf("Error cargando datos de movimientos: %v", err)
	}

	opts := advisor.Options{
		Level: cfg.Search.Level,
		Rules: engine.Rules{ForbidFaintedSwitch: cfg.Search.ForbidFaintedSwitch},
	}
	var bs *engine.BattleState
	switch {
	case *snapshotPath != "":
		snap, err := advisor.LoadSnapshot(*snapshotPath)
		if err != nil {
			klog.Exitf("snapshot: %v", err)
		}
		bs, err = snap.State(opts)
		if err != nil {
			klog.Exitf("snapshot: %v", err)
		}
	case *logPath != "":
		text, err := os.ReadFile(*logPath)
		if err != nil {
			klog.Exitf("log: %v", err)
		}
		state, err := parser.ParseLog(string(text))
		if err != nil {
			klog.Exitf("log: %v", err)
		}
		side := *player
		if side == "" {
			side = cfg.Perspective
		}
		bs, err = advisor.FromBattle(state, side, opts)
		if err != nil {
			klog.Exitf("log: %v", err)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: advise -snapshot file | -log file [-player p1|p2]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	sr := &engine.Searcher{MaxDepth: cfg.Search.MaxDepth, Workers: cfg.Search.Workers}
	adv, err := advisor.Advise(bs, sr)
	if err != nil {
		klog.Exitf("search: %v", err)
	}

	fmt.Printf("%s vs %s (heurística %.3f)\n\n",
		bs.ActiveCombatant(engine.Mine), bs.ActiveCombatant(engine.Yours), adv.Heuristic)
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tACCIÓN\tCHOOSE\tVALOR")
	for i, opt := range adv.Options {
		mark := ""
		if i == adv.BestIndex {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.3f\n", mark, opt.Label, opt.Choice, opt.Value)
	}
	tw.Flush()
}
