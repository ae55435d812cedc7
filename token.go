// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import "fmt"

// A Kind is the lexical category of a token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // zero value, never produced by the lexer
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Colon               // colon ":"
	Comma               // comma ","
	String              // quoted string
	Number              // numeric literal
	Boolean             // boolean literal: true or false
	Null                // constant: null
	EOF                 // end of input
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Colon:   `":"`,
	Comma:   `","`,
	String:  "string",
	Number:  "number",
	Boolean: "boolean",
	Null:    "null",
	EOF:     "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// IsLiteral reports whether k is a literal-bearing kind whose tokens carry
// the raw text of the literal.
func (k Kind) IsLiteral() bool {
	return k == String || k == Number || k == Boolean || k == Null
}

// A Token is a single lexical token. Tokens are produced once by the lexer
// and never modified thereafter.
//
// Value holds the raw text of a literal-bearing token exactly as it was
// delimited in the input, with no check that the text satisfies the
// literal's grammar. That check happens during validation; see
// [Parser.Parse]. Punctuation and EOF tokens have no value.
//
// Pos is the lexer's running character count after the token's span. It is
// not a byte offset: whitespace skipped between tokens does not advance it,
// and error messages derived from it point near the end of a token rather
// than its start.
type Token struct {
	Kind  Kind
	Value string
	Pos   int
}

func (t Token) String() string {
	if t.Kind.IsLiteral() {
		return fmt.Sprintf("%v %q at %d", t.Kind, t.Value, t.Pos)
	}
	return fmt.Sprintf("%v at %d", t.Kind, t.Pos)
}
