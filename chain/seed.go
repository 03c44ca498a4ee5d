package chain

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed seed.toml
var seedTOML []byte

type seedFile struct {
	Chains []Chain `toml:"chain"`
}

// Decode parses a TOML dataset and validates it into a Roster
func Decode(data []byte) (*Roster, error) {
	var f seedFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return NewRoster(f.Chains)
}

// LoadSeed returns the built-in dataset
func LoadSeed() (*Roster, error) {
	return Decode(seedTOML)
}

// MustLoadSeed panics if the embedded dataset is invalid
func MustLoadSeed() *Roster {
	r, err := LoadSeed()
	if err != nil {
		panic(err)
	}
	return r
}
