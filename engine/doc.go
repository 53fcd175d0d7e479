// Package engine picks the action for one side of a singles battle.
//
// A BattleState holds both rosters and the active slot of each side. The
// Searcher expands every (my action, your action) pair into a successor
// state, recurses to a fixed horizon and scores horizon states with a
// matchup/health heuristic computed over the full rosters.
//
// Scores are always taken from the searching side's point of view, at every
// depth. The recursion never negates or swaps perspective the way classical
// minimax does; the opponent's replies are instead weighted by Weights, which
// treats the total value the searching side can reach against a reply as
// that reply's likelihood. Both choices are deliberate and pinned by tests.
package engine
