// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jcheck"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.json",
	Short: "Print the token stream for a JSON file",
	Long: `Tokenize prints the token stream the lexer produces for a file.

Tokenizing never fails: malformed input yields tokens that validation
would reject, so this command exits 0 even for invalid documents.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	lx := jcheck.NewLexer(string(data))
	lx.Tokenize()

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "pretty":
		formatTokensPretty(cmd.OutOrStdout(), lx.Tokens())
		return nil
	case "json":
		return formatTokensJSON(cmd.OutOrStdout(), lx.Tokens())
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func formatTokensPretty(w io.Writer, tokens []jcheck.Token) {
	for _, t := range tokens {
		if t.Kind.IsLiteral() {
			fmt.Fprintf(w, "%5d  %-12s %q\n", t.Pos, t.Kind, t.Value)
		} else {
			fmt.Fprintf(w, "%5d  %s\n", t.Pos, t.Kind)
		}
	}
}

// tokenJSON is the wire shape of a token in --format json output. The
// value field is present only for literal-bearing kinds.
type tokenJSON struct {
	Kind  string  `json:"kind"`
	Value *string `json:"value,omitempty"`
	Pos   int     `json:"pos"`
}

func formatTokensJSON(w io.Writer, tokens []jcheck.Token) error {
	out := make([]tokenJSON, len(tokens))
	for i, t := range tokens {
		out[i] = tokenJSON{Kind: t.Kind.String(), Pos: t.Pos}
		if t.Kind.IsLiteral() {
			v := t.Value
			out[i].Value = &v
		}
	}
	if err := json.MarshalWrite(w, out, jsontext.Multiline(true), jsontext.WithIndent("  ")); err != nil {
		return fmt.Errorf("could not marshal json: %w", err)
	}
	return nil
}
