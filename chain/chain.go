// Package chain holds the static race dataset: one Chain per lane, validated once at load.
package chain

import (
	"time"
)

// Chain is one race lane with its advertised finality latency and display metadata
type Chain struct {
	Name       string `toml:"name"`
	FinalityMs int    `toml:"finality_ms"`
	Color      string `toml:"color"`
	Glow       string `toml:"glow"`
	Label      string `toml:"label"`
}

// Duration returns the lane's finality as a time.Duration
func (c Chain) Duration() time.Duration {
	return time.Duration(c.FinalityMs) * time.Millisecond
}

// Roster is an immutable, validated, ordered set of chains
type Roster struct {
	chains []Chain
	index  map[string]int
	max    time.Duration
}

// NewRoster validates chains and returns a roster preserving their order
func NewRoster(chains []Chain) (*Roster, error) {
	if err := Validate(chains); err != nil {
		return nil, err
	}

	r := &Roster{
		chains: make([]Chain, len(chains)),
		index:  make(map[string]int, len(chains)),
	}
	copy(r.chains, chains)

	for i, c := range r.chains {
		r.index[c.Name] = i
		if d := c.Duration(); d > r.max {
			r.max = d
		}
	}
	return r, nil
}

// All returns a copy of the chains in roster order
func (r *Roster) All() []Chain {
	out := make([]Chain, len(r.chains))
	copy(out, r.chains)
	return out
}

// Len returns the number of lanes
func (r *Roster) Len() int {
	return len(r.chains)
}

// Lookup finds a chain by name
func (r *Roster) Lookup(name string) (Chain, bool) {
	i, ok := r.index[name]
	if !ok {
		return Chain{}, false
	}
	return r.chains[i], true
}

// Index returns the roster position of name, or -1
func (r *Roster) Index(name string) int {
	if i, ok := r.index[name]; ok {
		return i
	}
	return -1
}

// Names returns chain names in roster order
func (r *Roster) Names() []string {
	names := make([]string, len(r.chains))
	for i, c := range r.chains {
		names[i] = c.Name
	}
	return names
}

// MaxFinality is the slowest lane's duration
func (r *Roster) MaxFinality() time.Duration {
	return r.max
}
