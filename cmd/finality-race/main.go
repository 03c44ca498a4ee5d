package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "finality-race",
		Short:         "Terminal race of blockchain finality times",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runFunc,
	}
	AddFlags(cmd.Flags())
	return cmd
}

func runFunc(cmd *cobra.Command, _ []string) error {
	v, err := newViper(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := ParseConfig(v)
	if err != nil {
		return err
	}

	logger, closeLog := setupLogging(cfg)
	defer closeLog()

	return run(cfg, logger)
}

func main() {
	if err := Command().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "finality-race: %v\n", err)
		os.Exit(1)
	}
}
