// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"errors"
	"fmt"
	"strconv"

	"go4.org/mem"
)

// ErrEmptyDocument is reported by Parse when the input contains no tokens
// before the end-of-input marker.
var ErrEmptyDocument = errors.New("empty JSON document")

// SyntaxError is the concrete type of errors reported by Parse for grammar
// violations. It records the offending token.
type SyntaxError struct {
	Token   Token
	Message string
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Message, e.Token.Pos)
}

func unexpected(t Token) *SyntaxError {
	msg := "unexpected token"
	if t.Kind.IsLiteral() {
		msg = fmt.Sprintf("unexpected token %q", t.Value)
	}
	return &SyntaxError{Token: t, Message: msg}
}

func trailing(t Token) *SyntaxError {
	msg := "trailing content after the top-level value"
	if t.Kind.IsLiteral() {
		msg = fmt.Sprintf("trailing content %q after the top-level value", t.Value)
	}
	return &SyntaxError{Token: t, Message: msg}
}

// A Parser validates a token sequence against the JSON grammar. It walks
// the sequence with a single forward cursor and reports the first
// violation. The parser does not modify the sequence and retains no state
// beyond one Parse call.
type Parser struct {
	tokens []Token
	cur    int
}

// NewParser constructs a parser for tokens, which must be a sequence
// produced by a Lexer; in particular it must end with an EOF token.
func NewParser(tokens []Token) *Parser { return &Parser{tokens: tokens} }

// Check tokenizes input and validates the result. It returns nil if input
// is a single well-formed JSON document, or the first syntax error found.
func Check(input string) error {
	lx := NewLexer(input)
	lx.Tokenize()
	return NewParser(lx.Tokens()).Parse()
}

// Parse validates the token sequence as a single JSON document: one
// top-level value with nothing after it but the end of input. It returns
// nil on success, ErrEmptyDocument for an empty input, or a *SyntaxError
// describing the first grammar violation. Validation stops at the first
// error.
func (p *Parser) Parse() error {
	p.cur = 0
	switch first := p.current(); first.Kind {
	case EOF:
		return ErrEmptyDocument
	case LBrace:
		p.advance()
		if err := p.validateObject(); err != nil {
			return err
		}
	case LSquare:
		p.advance()
		if err := p.validateArray(); err != nil {
			return err
		}
	default:
		// A bare top-level scalar.
		if err := p.validateValue(); err != nil {
			return err
		}
	}
	if next := p.peek(); next.Kind != EOF {
		return trailing(next)
	}
	return nil
}

func (p *Parser) current() Token { return p.tokens[p.cur] }

// advance moves the cursor forward unless it already rests on the final
// token, the EOF marker.
func (p *Parser) advance() {
	if p.cur < len(p.tokens)-1 {
		p.cur++
	}
}

// peek returns the token after the current one, or the final token if the
// cursor is already at the end.
func (p *Parser) peek() Token {
	if p.cur+1 < len(p.tokens) {
		return p.tokens[p.cur+1]
	}
	return p.tokens[len(p.tokens)-1]
}

// validateValue checks the current token in value position. Strings are
// valid by construction; boolean, null, and number tokens have their raw
// text checked against the literal grammar here, deferred from lex time.
// An opening brace or bracket descends into the corresponding structure.
func (p *Parser) validateValue() error {
	switch t := p.current(); t.Kind {
	case String:
		return nil
	case Boolean:
		if !isBoolean(t.Value) {
			return unexpected(t)
		}
	case Null:
		if !isNull(t.Value) {
			return unexpected(t)
		}
	case Number:
		if !isNumber(t.Value) {
			return unexpected(t)
		}
	case LBrace:
		p.advance()
		return p.validateObject()
	case LSquare:
		p.advance()
		return p.validateArray()
	default:
		return unexpected(t)
	}
	return nil
}

// validateObject checks "key": value members up to the closing brace.
// Precondition: the cursor is past the opening brace.
// Postcondition: the cursor rests on the closing brace.
func (p *Parser) validateObject() error {
	for {
		switch t := p.current(); t.Kind {
		case RBrace:
			return nil // empty or fully drained object
		case String:
			p.advance()
			if p.current().Kind != Colon {
				return unexpected(p.current())
			}
			p.advance()
			if err := p.validateValue(); err != nil {
				return err
			}
			p.advance()

			switch p.current().Kind {
			case Comma:
				p.advance()
				// A comma must introduce another member, so a trailing
				// comma before the closing brace is rejected here.
				if p.current().Kind != String {
					return unexpected(p.current())
				}
			case RBrace:
				return nil
			default:
				return unexpected(p.current())
			}
		default:
			return unexpected(t)
		}
	}
}

// validateArray checks comma-separated elements up to the closing bracket.
// Precondition: the cursor is past the opening bracket.
// Postcondition: the cursor rests on the closing bracket.
func (p *Parser) validateArray() error {
	for {
		if p.current().Kind == RSquare {
			return nil
		}
		if err := p.validateValue(); err != nil {
			return err
		}
		p.advance()

		switch p.current().Kind {
		case Comma:
			p.advance()
			// After a comma there must be another element, not a
			// separator, a close, or the end of the input.
			switch k := p.current().Kind; k {
			case Colon, Comma, RBrace, RSquare, EOF:
				return unexpected(p.current())
			}
		case RSquare:
			return nil
		default:
			return unexpected(p.current())
		}
	}
}

func isNull(text string) bool { return mem.S(text).Equal(mem.S("null")) }

func isBoolean(text string) bool {
	v := mem.S(text)
	return v.Equal(mem.S("true")) || v.Equal(mem.S("false"))
}

func isNumber(text string) bool {
	_, err := strconv.ParseFloat(text, 64)
	return err == nil
}
