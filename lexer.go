// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"strings"
	"unicode"
)

// A Lexer splits an input text into a flat token sequence in a single
// left-to-right pass. The lexer never fails: malformed input produces
// tokens whose raw text will be rejected during validation, not a lexical
// error.
type Lexer struct {
	input  string
	r      *strings.Reader
	pos    int // running count of consumed characters
	tokens []Token
}

// NewLexer constructs a lexer that consumes input.
func NewLexer(input string) *Lexer { return &Lexer{input: input} }

// Tokens returns the token sequence recorded by Tokenize. The slice is
// owned by the lexer; the caller must treat it as read-only.
func (l *Lexer) Tokens() []Token { return l.tokens }

// Tokenize scans the whole input and records the resulting tokens, ending
// with exactly one EOF token. Calling Tokenize again rescans the input from
// the beginning and yields the same sequence.
func (l *Lexer) Tokenize() {
	l.r = strings.NewReader(l.input)
	l.pos = 0
	l.tokens = l.tokens[:0]

	for {
		ch, _, err := l.r.ReadRune()
		if err != nil {
			break
		}
		if unicode.IsSpace(ch) {
			continue // skipped whitespace does not advance the position
		}
		switch ch {
		case '{':
			l.push(LBrace)
		case '}':
			l.push(RBrace)
		case '[':
			l.push(LSquare)
		case ']':
			l.push(RSquare)
		case ':':
			l.push(Colon)
		case ',':
			l.push(Comma)
		case '"':
			l.scanString()
		case 'f', 't':
			l.scanLiteral(ch, Boolean)
		case 'n':
			l.scanLiteral(ch, Null)
		default:
			l.scanLiteral(ch, Number)
		}
		l.pos++
	}
	l.push(EOF)
}

func (l *Lexer) push(kind Kind) {
	l.tokens = append(l.tokens, Token{Kind: kind, Pos: l.pos})
}

// scanString consumes characters up to the next quote or newline, exclusive
// of the terminator, and records the span as a String token. A newline ends
// the span silently, so an unterminated string is truncated rather than
// reported. Escape sequences are not interpreted; an escaped quote ends the
// string.
func (l *Lexer) scanString() {
	var buf strings.Builder
	for {
		ch, _, err := l.r.ReadRune()
		if err != nil {
			break
		}
		l.pos++
		if ch == '"' || ch == '\n' {
			break
		}
		buf.WriteRune(ch)
	}
	l.tokens = append(l.tokens, Token{Kind: String, Value: buf.String(), Pos: l.pos})
}

// scanLiteral consumes a boolean, null, or number span seeded with first.
// The scan ends at whitespace or at one of "," "}" "]".  A punctuation
// terminator is consumed by the scan rather than pushed back, so a token
// standing in for it is recorded here, at the same position as the literal.
func (l *Lexer) scanLiteral(first rune, kind Kind) {
	var buf strings.Builder
	buf.WriteRune(first)

	var term rune
	for {
		ch, _, err := l.r.ReadRune()
		if err != nil {
			break
		}
		l.pos++
		if unicode.IsSpace(ch) {
			break
		}
		if ch == ',' || ch == '}' || ch == ']' {
			term = ch
			break
		}
		buf.WriteRune(ch)
	}

	l.tokens = append(l.tokens, Token{Kind: kind, Value: buf.String(), Pos: l.pos})
	switch term {
	case ',':
		l.push(Comma)
	case '}':
		l.push(RBrace)
	case ']':
		l.push(RSquare)
	}
}
