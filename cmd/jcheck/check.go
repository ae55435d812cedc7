// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"os"

	"github.com/creachadair/jcheck"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// exitInvalid is the process exit code for a syntactically invalid
// document, distinct from the generic failure code used for usage and
// I/O errors.
const exitInvalid = 2

var checkCmd = &cobra.Command{
	Use:   "check [flags] file.json",
	Short: "Validate the syntax of a JSON file",
	Long: `Check reads a JSON file and reports whether it is syntactically valid.

The process exits 0 for a valid document and 2 for an invalid one.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("tokens", false, "print the token stream before the verdict")
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	setColorMode(cmd)

	lx := jcheck.NewLexer(string(data))
	lx.Tokenize()

	if showTokens, _ := cmd.Flags().GetBool("tokens"); showTokens {
		formatTokensPretty(cmd.OutOrStdout(), lx.Tokens())
	}

	if err := jcheck.NewParser(lx.Tokens()).Parse(); err != nil {
		color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "invalid JSON: %v\n", err)
		os.Exit(exitInvalid)
	}
	color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "valid JSON")
	return nil
}
