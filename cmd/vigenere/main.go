// Command vigenere estimates the key length of a position-keyed Vigenère
// ciphertext and sweeps the key space for that length.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hn275/vigenere-cryptanalysis/internal/config"
	"github.com/hn275/vigenere-cryptanalysis/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool
	ciphertext string
	inputFile  string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vigenere",
	Short: "Index-of-coincidence key-length detection for Vigenère ciphertext",
	Long: `vigenere analyzes an uppercase ciphertext produced by a repeating-key
substitution cipher whose keystream also advances once per key-length block.

It scores candidate key lengths with an index-of-coincidence statistic and
reports the most plausible one. Run without a subcommand to do exactly that.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if ciphertext != "" {
			loaded.Ciphertext = ciphertext
			loaded.CiphertextFile = ""
		}
		if inputFile != "" {
			loaded.CiphertextFile = inputFile
		}
		if verbose {
			loaded.Logging.Level = "debug"
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Development)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runKeylen,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&ciphertext, "ciphertext", "", "ciphertext to analyze (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "read ciphertext from a file, - for stdin")

	addDetectionFlags(rootCmd)
	addDetectionFlags(keylenCmd)

	enumerateCmd.Flags().IntVar(&enumLength, "length", 0, "key length to sweep (0 detects it first)")
	enumerateCmd.Flags().Uint64Var(&enumLimit, "limit", 0, "stop after this many keys (overrides config)")
	enumerateCmd.Flags().BoolVar(&enumForce, "force", false, "allow lengths above enumeration.max_key_length")

	partitionCmd.Flags().IntVarP(&partitionLength, "length", "n", 0, "block length")
	partitionCmd.Flags().StringVar(&partitionMode, "mode", "contiguous", "contiguous or interleaved")
	_ = partitionCmd.MarkFlagRequired("length")

	encryptCmd.Flags().StringVarP(&textKey, "key", "k", "", "letter key, e.g. LEMON")
	decryptCmd.Flags().StringVarP(&textKey, "key", "k", "", "letter key, e.g. LEMON")
	_ = encryptCmd.MarkFlagRequired("key")
	_ = decryptCmd.MarkFlagRequired("key")

	rootCmd.AddCommand(keylenCmd, enumerateCmd, partitionCmd, encryptCmd, decryptCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
