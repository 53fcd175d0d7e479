package engine

import (
	"sync"

	"k8s.io/klog/v2"
)

// DefaultMaxDepth is the search horizon in plies.
const DefaultMaxDepth = 2

// Searcher runs the depth-bounded expected-value search. The zero value
// searches to DefaultMaxDepth on one goroutine.
type Searcher struct {
	MaxDepth int
	// Workers > 1 evaluates the root's successor cells concurrently. Each
	// cell owns its state, so the result matches the sequential search.
	Workers int
}

// Result is the outcome of a search from the root.
type Result struct {
	Action  Action
	Index   int
	Value   float64
	Actions []Action
	Values  []float64
}

func (sr *Searcher) maxDepth() int {
	if sr.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return sr.MaxDepth
}

// Value returns the best expected value reachable from s and the expected
// value of each of my actions. At the horizon it returns the heuristic and
// no row values.
func (sr *Searcher) Value(s *BattleState, depth int) (float64, []float64, error) {
	if depth >= sr.maxDepth() {
		return s.Heuristic(), nil, nil
	}
	mine, yours := s.MyActions(), s.YourActions()
	if len(mine) == 0 {
		return 0, nil, ErrNoActions
	}
	cells, err := sr.expand(s, mine, yours, depth)
	if err != nil {
		return 0, nil, err
	}
	probs := Weights(cells)
	rows := make([]float64, len(mine))
	for i, row := range cells {
		for j, v := range row {
			rows[i] += probs[j] * v
		}
	}
	best := rows[0]
	for _, v := range rows[1:] {
		if v > best {
			best = v
		}
	}
	klog.V(2).Infof("depth %d: %d x %d actions, best %.4f", depth, len(mine), len(yours), best)
	return best, rows, nil
}

// expand evaluates the successor of every action pair one ply deeper and
// keeps only its best value.
func (sr *Searcher) expand(s *BattleState, mine, yours []Action, depth int) ([][]float64, error) {
	cells := make([][]float64, len(mine))
	for i := range cells {
		cells[i] = make([]float64, len(yours))
	}
	eval := func(i, j int) error {
		next, err := s.Successor(mine[i], yours[j])
		if err != nil {
			return err
		}
		v, _, err := sr.Value(next, depth+1)
		if err != nil {
			return err
		}
		cells[i][j] = v
		return nil
	}

	if depth > 0 || sr.Workers <= 1 {
		for i := range mine {
			for j := range yours {
				if err := eval(i, j); err != nil {
					return nil, err
				}
			}
		}
		return cells, nil
	}

	type cell struct{ i, j int }
	jobs := make(chan cell)
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for w := 0; w < sr.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				if err := eval(c.i, c.j); err != nil {
					once.Do(func() { firstErr = err })
				}
			}
		}()
	}
	for i := range mine {
		for j := range yours {
			jobs <- cell{i, j}
		}
	}
	close(jobs)
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return cells, nil
}

// Search evaluates every action I can take from s and picks the one with
// the highest expected value, the first one on ties.
func (sr *Searcher) Search(s *BattleState) (Result, error) {
	mine := s.MyActions()
	if len(mine) == 0 {
		return Result{}, ErrNoActions
	}
	best, rows, err := sr.Value(s, 0)
	if err != nil {
		return Result{}, err
	}
	pick := 0
	for i, v := range rows {
		if v == best {
			pick = i
			break
		}
	}
	res := Result{Action: mine[pick], Index: pick, Value: best, Actions: mine, Values: rows}
	klog.V(1).Infof("search %s vs %s: %d candidates, picked %s (%.4f)",
		s.ActiveCombatant(Mine), s.ActiveCombatant(Yours), len(mine), res.Action, best)
	return res, nil
}

func (sr *Searcher) BestAction(s *BattleState) (Action, error) {
	res, err := sr.Search(s)
	if err != nil {
		return Action{}, err
	}
	return res.Action, nil
}

// BestAction searches with the default settings.
func BestAction(s *BattleState) (Action, error) {
	var sr Searcher
	return sr.BestAction(s)
}
