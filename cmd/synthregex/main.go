package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/synthregex/synthregex"
	"github.com/synthregex/synthregex/alphabet"
	"github.com/synthregex/synthregex/bench"
	"github.com/synthregex/synthregex/config"
)

var (
	flagProfile  bool
	flagAlphabet string
	flagInflateP bool
	flagConfig   string
	flagSeed     string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "synthregex <examples-file>",
		Short:         "synthesize a regular expression from labelled string examples",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE:          runSynthesize,
	}
	root.Flags().BoolVar(&flagProfile, "profile", false, "report search statistics and elapsed time to stderr")
	root.Flags().StringVar(&flagAlphabet, "alphabet", alphabet.DefaultAlphabet, "concrete symbol alphabet used to inflate placeholders and enumerate literals")
	root.Flags().BoolVar(&flagInflateP, "inflate-positive", false, "also inflate placeholder symbols in the positive example set")
	root.Flags().StringVar(&flagConfig, "config", "", "optional YAML batch-run config file; when set, the examples-file argument is ignored in favor of its runs list")
	root.Flags().StringVar(&flagSeed, "seed", "", "literal seed pattern to start the search from, instead of a bare hole")
	return root
}

func runSynthesize(cmd *cobra.Command, args []string) error {
	if flagConfig != "" {
		return runBatch(cmd, flagConfig)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	inst, err := bench.Parse(f)
	if err != nil {
		return err
	}

	return runOne(cmd, inst, flagAlphabet)
}

func runBatch(cmd *cobra.Command, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cfg.InflateP {
		flagInflateP = true
	}
	for _, run := range cfg.Runs {
		f, err := os.Open(run.File)
		if err != nil {
			return err
		}
		inst, err := bench.Parse(f)
		f.Close()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s (%s)\n", run.File, inst.Description)
		if err := runOne(cmd, inst, run.Alphabet); err != nil {
			return err
		}
	}
	return nil
}

func runOne(cmd *cobra.Command, inst *bench.Instance, alpha string) error {
	runID := uuid.New()
	start := time.Now()

	scfg := synthregex.DefaultConfig()
	scfg.Alphabet = alpha
	scfg.InflateP = flagInflateP
	scfg.Seed = flagSeed

	var popped int
	if flagProfile {
		scfg.Trace = func(step int, pattern string, alive bool) {
			popped = step
		}
	}

	pattern, err := synthregex.SynthesizeWithConfig(inst.Positive, inst.Negative, scfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), pattern)

	if flagProfile {
		fmt.Fprintf(cmd.ErrOrStderr(), "run %s: %s states popped, %s elapsed\n",
			runID, humanize.Comma(int64(popped)), time.Since(start))
	}
	return nil
}
