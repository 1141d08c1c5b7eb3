// Command vebcheck exercises a van Emde Boas tree: it replays the worked
// example and then cross-checks a seeded random workload against a reference
// ordered set.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/aglyzov/go-veb/internal/config"
	"github.com/aglyzov/go-veb/internal/logger"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("vebcheck failed")
	}

	log.Info().Msg("Everything works.")
}
