package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hn275/vigenere-cryptanalysis/cipher"
	"github.com/hn275/vigenere-cryptanalysis/keyspace"
)

var (
	enumLength int
	enumLimit  uint64
	enumForce  bool
)

var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "Sweep every key of the detected (or given) length",
	Long: `Visits all 26^N keys of length N in base-26 order and offers each to the
key scorer. The built-in scorer is neutral, so the sweep reports the number
of keys visited and the first key.

Lengths above enumeration.max_key_length are refused unless --force is set:
26^6 is already about 309 million keys.`,
	Args: cobra.NoArgs,
	RunE: runEnumerate,
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	length := enumLength
	if length == 0 {
		res, err := detect(cmd)
		if err != nil {
			return err
		}
		length = res.Length
	}
	if length < 1 {
		return fmt.Errorf("invalid key length %d", length)
	}
	if length > cfg.Enumeration.MaxKeyLength && !enumForce {
		return fmt.Errorf("key length %d exceeds enumeration.max_key_length %d (use --force)",
			length, cfg.Enumeration.MaxKeyLength)
	}
	limit := cfg.Enumeration.Limit
	if cmd.Flags().Changed("limit") {
		limit = enumLimit
	}

	logger.Info("Enumerating keys", zap.Int("length", length), zap.Uint64("limit", limit))
	sum, err := keyspace.Enumerate(length, keyspace.Nop,
		keyspace.WithContext(cmd.Context()),
		keyspace.WithLimit(limit),
		keyspace.WithProgressEvery(cfg.Enumeration.ProgressEvery),
		keyspace.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("enumeration failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "key length: %d\n", sum.Length)
	fmt.Fprintf(out, "keys visited: %d\n", sum.Visited)
	fmt.Fprintf(out, "complete: %t\n", sum.Complete)
	fmt.Fprintf(out, "best key: %s\n", cipher.FormatKey(sum.Best))

	return nil
}
