package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hn275/vigenere-cryptanalysis/keylen"
)

// Detection flags, shared by the root command and keylen.
var (
	showTable      bool
	detectMode     string
	detectStrategy string
	detectTarget   float64
	detectMin      int
	detectMax      int
)

var keylenCmd = &cobra.Command{
	Use:   "keylen",
	Short: "Detect the most plausible key length",
	Long: `Scores every candidate key length in the configured range and prints the
winner. --table also lists each candidate's score and diff.`,
	Args: cobra.NoArgs,
	RunE: runKeylen,
}

func addDetectionFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&showTable, "table", false, "print every candidate")
	cmd.Flags().StringVar(&detectMode, "mode", "", "partition mode: contiguous or interleaved")
	cmd.Flags().StringVar(&detectStrategy, "strategy", "", "sum-of-squares or column-average")
	cmd.Flags().Float64Var(&detectTarget, "target", 0, "reference index of coincidence")
	cmd.Flags().IntVar(&detectMin, "min", 0, "shortest candidate length")
	cmd.Flags().IntVar(&detectMax, "max", 0, "longest candidate length")
}

// applyDetectionFlags copies explicitly set flags into the config.
func applyDetectionFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Detection.Mode = detectMode
	}
	if flags.Changed("strategy") {
		cfg.Detection.Strategy = detectStrategy
	}
	if flags.Changed("target") {
		target := detectTarget
		cfg.Detection.TargetIoC = &target
	}
	if flags.Changed("min") {
		cfg.Detection.MinLength = detectMin
	}
	if flags.Changed("max") {
		cfg.Detection.MaxLength = detectMax
	}

	return cfg.Validate()
}

func runKeylen(cmd *cobra.Command, args []string) error {
	if err := applyDetectionFlags(cmd); err != nil {
		return err
	}
	res, err := detect(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showTable {
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "LENGTH\tSCORE\tDIFF\t")
		for _, c := range res.Candidates {
			mark := ""
			if c.Length == res.Length {
				mark = "*"
			}
			fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%s\n", c.Length, c.Score, c.Diff, mark)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "key length: %d\n", res.Length)

	return nil
}

// detect reads the configured ciphertext and runs the selector.
func detect(cmd *cobra.Command) (*keylen.Result, error) {
	text, err := cfg.ReadCiphertext(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	logger.Info("Detecting key length",
		zap.Int("letters", len(text)),
		zap.String("strategy", cfg.Detection.Strategy),
		zap.String("mode", cfg.Detection.Mode),
		zap.Float64("target", cfg.Detection.Target()))

	opts := append(cfg.DetectionOptions(), keylen.WithLogger(logger))
	res, err := keylen.Select(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("key length detection failed: %w", err)
	}
	logger.Info("Key length detected", zap.Int("length", res.Length), zap.Float64("diff", res.Diff))

	return res, nil
}
