package engine

import (
	"sort"

	"github.com/lixenwraith/finality-race/chain"
)

// Standing is a finished lane with its display rank
type Standing struct {
	Chain chain.Chain
	Rank  int
}

// Standings ranks the finished lanes by declared finality, not by completion order
// Equal finality values rank in roster order regardless of which callback fired first
func Standings(roster *chain.Roster, finished []string) []Standing {
	if len(finished) == 0 {
		return nil
	}

	lanes := make([]chain.Chain, 0, len(finished))
	seen := make(map[string]struct{}, len(finished))
	for _, name := range finished {
		c, ok := roster.Lookup(name)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		lanes = append(lanes, c)
	}

	sort.SliceStable(lanes, func(i, j int) bool {
		if lanes[i].FinalityMs != lanes[j].FinalityMs {
			return lanes[i].FinalityMs < lanes[j].FinalityMs
		}
		return roster.Index(lanes[i].Name) < roster.Index(lanes[j].Name)
	})

	out := make([]Standing, len(lanes))
	for i, c := range lanes {
		out[i] = Standing{Chain: c, Rank: i + 1}
	}
	return out
}

// Rank returns the 1-based rank of name among finished lanes, 0 if it has not finished
func Rank(roster *chain.Roster, finished []string, name string) int {
	for _, s := range Standings(roster, finished) {
		if s.Chain.Name == name {
			return s.Rank
		}
	}
	return 0
}
