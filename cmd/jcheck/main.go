// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jcheck reports whether a JSON document is syntactically valid.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "jcheck",
	Short: "JSON syntax checker",
	Long: `jcheck reports whether a JSON document is syntactically valid.

It tokenizes the input in one pass and validates the token stream against
the JSON grammar, without building a value tree. The first grammar
violation is reported with its position.`,
}

func main() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// setColorMode applies the persistent --color flag to the global color
// state before any verdict is printed.
func setColorMode(cmd *cobra.Command) {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}
