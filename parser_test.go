// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jcheck"
	"github.com/google/go-cmp/cmp"
)

func TestParseValid(t *testing.T) {
	tests := []string{
		`{}`,
		`[]`,
		`[ ]`,
		`{"a":1}`,
		`{"a": true, "b": [null, 1, 0.5]}`,
		`{"nested": {"x": [true, false]}}`,
		`[[1], [2]]`,
		` [1, 2, 3] `,

		// Bare top-level scalars.
		`true`,
		`false`,
		`null`,
		`42`,
		`-1.5e3`,
		`"hello"`,
		`""`,

		// Duplicate keys are a semantic matter, not a syntactic one.
		`{"a":1, "a":2}`,

		// An unterminated string is truncated silently at lex time; the
		// resulting shape still satisfies the grammar.
		`"abc`,
	}

	for _, input := range tests {
		if err := jcheck.Check(input); err != nil {
			t.Errorf("Check(%#q): unexpected error: %v", input, err)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		input   string
		wantErr string
	}{
		// Missing value before the close.
		{`{"a":}`, "unexpected token (offset 5)"},

		// Trailing comma in an object.
		{`{"a":1,}`, "unexpected token (offset 7)"},

		// Missing colon after a key.
		{`{"a" 1}`, `unexpected token "1" (offset 5)`},

		// Non-string key.
		{`{1:2}`, `unexpected token "1:2" (offset 4)`},

		// Trailing comma in an array.
		{`[1,]`, "unexpected token (offset 3)"},

		// Missing separator between elements.
		{`[1 2]`, `unexpected token "2" (offset 4)`},

		// Missing separator between members.
		{`{"a":1 "b":2}`, `unexpected token "b" (offset 9)`},

		// Unclosed object and bare punctuation.
		{`{`, "unexpected token (offset 1)"},
		{`:`, "unexpected token (offset 0)"},

		// Malformed literals, rejected at validation time.
		{`truth`, `unexpected token "truth" (offset 4)`},
		{`nil`, `unexpected token "nil" (offset 2)`},
		{`1.2.3`, `unexpected token "1.2.3" (offset 4)`},
		{`[falsy]`, `unexpected token "falsy" (offset 6)`},

		// Trailing content after the top-level value.
		{`{} {}`, "trailing content after the top-level value (offset 2)"},
		{`[] 1`, `trailing content "1" after the top-level value (offset 2)`},
		{`true false`, `trailing content "false" after the top-level value (offset 9)`},
		{`"ab
cd"`, `trailing content "cd\"" after the top-level value (offset 6)`},
	}

	for _, test := range tests {
		err := jcheck.Check(test.input)
		if err == nil {
			t.Errorf("Check(%#q): got nil, want error", test.input)
			continue
		}
		if diff := cmp.Diff(test.wantErr, err.Error()); diff != "" {
			t.Errorf("Check(%#q): error (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t \r\n"} {
		err := jcheck.Check(input)
		if !errors.Is(err, jcheck.ErrEmptyDocument) {
			t.Errorf("Check(%#q): got %v, want %v", input, err, jcheck.ErrEmptyDocument)
		}
	}
}

func TestSyntaxErrorToken(t *testing.T) {
	err := jcheck.Check(`{"a":}`)
	var serr *jcheck.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Check: got %v, want a *SyntaxError", err)
	}
	if got, want := serr.Token.Kind, jcheck.RBrace; got != want {
		t.Errorf("Token kind: got %v, want %v", got, want)
	}
	if got, want := serr.Token.Pos, 5; got != want {
		t.Errorf("Token position: got %d, want %d", got, want)
	}
}

func TestParserReuse(t *testing.T) {
	lx := jcheck.NewLexer(`{"a": [1, 2]}`)
	lx.Tokenize()

	// Parsing the same sequence twice gives the same verdict; the cursor
	// is re-initialized on each call.
	p := jcheck.NewParser(lx.Tokens())
	if err := p.Parse(); err != nil {
		t.Errorf("First parse: unexpected error: %v", err)
	}
	if err := p.Parse(); err != nil {
		t.Errorf("Second parse: unexpected error: %v", err)
	}
}
