// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jcheck implements a two-stage JSON syntax checker.
//
// The checker does not build a value tree: its only output is a verdict,
// either nil for a well-formed document or a positioned error describing
// the first grammar violation.
//
// # Tokenizing
//
// The Lexer type converts an input text into a flat token sequence in one
// left-to-right pass. Construct a lexer from the full input text and call
// Tokenize; the resulting sequence always ends with an EOF token:
//
//	lx := jcheck.NewLexer(input)
//	lx.Tokenize()
//	for _, tok := range lx.Tokens() {
//	   log.Print(tok)
//	}
//
// Tokenize never fails. Literal-bearing tokens (strings, numbers, booleans,
// null) carry their raw text unchecked; deciding whether that text actually
// satisfies the literal's grammar is deferred to validation.
//
// # Validating
//
// The Parser type walks a token sequence with a single forward cursor and
// checks it against the JSON grammar: one top-level value, balanced objects
// and arrays, string keys, no trailing commas, and nothing after the value
// but the end of input. Validation stops at the first violation:
//
//	p := jcheck.NewParser(lx.Tokens())
//	if err := p.Parse(); err != nil {
//	   log.Fatalf("Invalid: %v", err)
//	}
//
// Grammar violations are reported as a *SyntaxError carrying the offending
// token; an input with no tokens at all is reported as ErrEmptyDocument.
//
// The Check function runs both stages over an input text:
//
//	if err := jcheck.Check(input); err != nil {
//	   log.Fatalf("Invalid: %v", err)
//	}
package jcheck
