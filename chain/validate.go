package chain

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/multierr"
)

// ErrInvalidSeed is wrapped by every dataset validation failure
var ErrInvalidSeed = errors.New("invalid seed")

// Validate checks every record and reports all violations at once
func Validate(chains []Chain) error {
	if len(chains) == 0 {
		return fmt.Errorf("%w: no chains", ErrInvalidSeed)
	}

	var errs error
	seen := make(map[string]struct{}, len(chains))
	for i, c := range chains {
		if c.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("chain %d: empty name", i))
		} else if _, dup := seen[c.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("chain %d: duplicate name %q", i, c.Name))
		}
		seen[c.Name] = struct{}{}

		if c.FinalityMs <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("chain %q: finality_ms must be positive, got %d", c.Name, c.FinalityMs))
		}
		if _, err := colorful.Hex(c.Color); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("chain %q: color %q: %w", c.Name, c.Color, err))
		}
		// Glow is optional; render falls back to Color
		if c.Glow != "" {
			if _, err := colorful.Hex(c.Glow); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("chain %q: glow %q: %w", c.Name, c.Glow, err))
			}
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSeed, errs)
	}
	return nil
}
