// SPDX-License-Identifier: MIT
package parser

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"gitlab.com/fisherprime/rdparse/lexer"
)

type (
	// Prefix validates prefix-notation expressions:
	//
	//	S -> '+' S S | '-' S S | 'a'
	//
	// The first mismatch aborts the parse.
	Prefix struct {
		cfg   config
		state state
	}
)

// Prefix grammar terminals.
const (
	prefixPlus    = "+"
	prefixMinus   = "-"
	prefixOperand = "a"
)

// NewPrefix instantiates a Prefix parser over tokens.
func NewPrefix(tokens []lexer.Token, opts ...Option) *Prefix {
	return &Prefix{cfg: newConfig(opts), state: newState(tokens)}
}

// Lookahead obtains the next unconsumed Token.
func (p *Prefix) Lookahead() (lexer.Token, bool) { return p.state.lookahead() }

// Parse consumes the whole input as one statement.
//
// Empty input is accepted; trailing tokens are an error.
func (p *Prefix) Parse() (err error) {
	defer func() {
		if err != nil && p.cfg.debug {
			p.cfg.logger.Debugf("prefix parse failed: %v\nstate: %s", err, spew.Sdump(p.state))
		}
	}()

	if err = p.stmt(); err != nil {
		return
	}

	if t, ok := p.state.lookahead(); ok {
		err = fmt.Errorf("%w: %w: %q at line %d", ErrSyntax, ErrTrailingTokens, t.Text, t.Line)
	}

	return
}

// stmt applies the production selected by the lookahead; absent lookahead derives nothing.
func (p *Prefix) stmt() (err error) {
	t, ok := p.state.lookahead()
	if !ok {
		return
	}

	switch t.Text {
	case prefixPlus, prefixMinus:
		if err = p.match(t.Text); err != nil {
			return
		}
		if err = p.operand(); err != nil {
			return
		}
		err = p.operand()
	case prefixOperand:
		err = p.match(prefixOperand)
	default:
		err = fmt.Errorf("%w: %w: %q at line %d", ErrSyntax, ErrUnexpectedToken, t.Text, t.Line)
	}

	return
}

// operand parses a required sub-expression.
func (p *Prefix) operand() error {
	if _, ok := p.state.lookahead(); !ok {
		return fmt.Errorf("%w: %w: missing operand", ErrSyntax, ErrUnexpectedEnd)
	}

	return p.stmt()
}

// match consumes the lookahead if it holds `expected`.
func (p *Prefix) match(expected string) error {
	t, ok := p.state.lookahead()
	switch {
	case !ok:
		return fmt.Errorf("%w: %w: expected %q", ErrSyntax, ErrUnexpectedEnd, expected)
	case t.Text != expected:
		return fmt.Errorf("%w: %w: expected %q got %q at line %d", ErrSyntax, ErrUnexpectedToken, expected, t.Text, t.Line)
	}
	p.state.advance()

	return nil
}
