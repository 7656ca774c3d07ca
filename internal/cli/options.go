package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Options are the tool's own knobs, distinct from the configuration being
// resolved. They come from the process environment and are overridden by
// flags where a matching flag exists.
type Options struct {
	Delimiter string `env:"CONFSTACK_DELIMITER" envDefault:","`
	Format    string `env:"CONFSTACK_FORMAT" envDefault:"text"`
	Verbose   bool   `env:"CONFSTACK_VERBOSE"`
}

// loadOptions populates Options from the environment via the caarlos0/env
// library.
func loadOptions() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Options{}, fmt.Errorf("reading tool options from environment: %w", err)
	}
	return opts, nil
}
