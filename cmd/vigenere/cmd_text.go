package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hn275/vigenere-cryptanalysis/cipher"
	"github.com/hn275/vigenere-cryptanalysis/corpus"
)

var (
	partitionLength int
	partitionMode   string
	textKey         string
)

var partitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "Print the blocks of the ciphertext for one key length",
	Args:  cobra.NoArgs,
	RunE:  runPartition,
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt [plaintext...]",
	Short: "Encrypt uppercase text under a letter key",
	Long: `Encrypts the arguments (whitespace removed) with the position-keyed
schedule: letter i uses key[i mod len(key)] plus block position i / len(key).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncrypt,
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [ciphertext...]",
	Short: "Decrypt text under a letter key",
	Long:  `Decrypts the arguments, or the configured ciphertext when none are given.`,
	RunE:  runDecrypt,
}

func runPartition(cmd *cobra.Command, args []string) error {
	mode, err := corpus.ParseMode(partitionMode)
	if err != nil {
		return err
	}
	text, err := cfg.ReadCiphertext(cmd.InOrStdin())
	if err != nil {
		return err
	}
	blocks, err := corpus.Partition(text, partitionLength, corpus.WithMode(mode))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, b := range blocks {
		fmt.Fprintln(out, b)
	}

	return nil
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	text, err := corpus.Normalize(strings.Join(args, " "))
	if err != nil {
		return err
	}

	return applyKey(cmd, text, cipher.EncryptText)
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	var (
		text string
		err  error
	)
	if len(args) > 0 {
		text, err = corpus.Normalize(strings.Join(args, " "))
	} else {
		text, err = cfg.ReadCiphertext(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	return applyKey(cmd, text, cipher.DecryptText)
}

func applyKey(cmd *cobra.Command, text string, fn func(string, []int) (string, error)) error {
	key, err := cipher.ParseKey(textKey)
	if err != nil {
		return err
	}
	result, err := fn(text, key)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)

	return nil
}
