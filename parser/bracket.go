// SPDX-License-Identifier: MIT
package parser

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"gitlab.com/fisherprime/rdparse/lexer"
)

type (
	// Bracket validates balanced `0`…`1` sequences:
	//
	//	S -> '0' E '1'
	//	E -> S | ε
	//
	// Mismatches never abort the parse; Parse reports them.
	Bracket struct {
		cfg   config
		state state

		// missing holds the terminals expected after the input ran out.
		missing []string
	}

	// Report is the outcome of a Bracket parse.
	Report struct {
		// Leftover holds the Tokens the grammar did not consume.
		Leftover []lexer.Token
		// Missing holds the terminals a match expected once the input was exhausted.
		Missing []string
	}
)

// Bracket grammar terminals.
const (
	bracketOpen  = "0"
	bracketClose = "1"

	// reportSyntaxError is the report for a rejected input.
	reportSyntaxError = "Syntax Error"
	reportAccepted    = "accepted"
)

// NewBracket instantiates a Bracket parser over tokens.
func NewBracket(tokens []lexer.Token, opts ...Option) *Bracket {
	return &Bracket{cfg: newConfig(opts), state: newState(tokens)}
}

// Lookahead obtains the next unconsumed Token.
func (b *Bracket) Lookahead() (lexer.Token, bool) { return b.state.lookahead() }

// Parse runs a single statement then reports unconsumed input.
func (b *Bracket) Parse() (r Report) {
	b.stmt()

	r = Report{Leftover: b.state.unconsumed(), Missing: b.missing}
	if !r.Accepted() && b.cfg.debug {
		b.cfg.logger.Debugf("bracket parse rejected: %s\nstate: %s", r.Err(), spew.Sdump(b.state))
	}

	return
}

func (b *Bracket) stmt() {
	if !b.state.is(bracketOpen) {
		// Absent or unexpected lookahead derives nothing.
		return
	}

	b.match(bracketOpen)
	b.optexpr()
	b.match(bracketClose)
}

func (b *Bracket) optexpr() {
	if b.state.is(bracketOpen) {
		b.stmt()
	}
}

// match consumes the lookahead if it holds `expected`, otherwise does nothing.
func (b *Bracket) match(expected string) {
	t, ok := b.state.lookahead()
	switch {
	case !ok:
		b.missing = append(b.missing, expected)
	case t.Text == expected:
		b.state.advance()
	}
}

// Accepted reports whether the input was consumed without missing terminals.
func (r Report) Accepted() bool { return len(r.Leftover) == 0 && len(r.Missing) == 0 }

// String is the fmt.Stringer implementation for Report.
func (r Report) String() string {
	if r.Accepted() {
		return reportAccepted
	}

	return reportSyntaxError
}

// Err converts a rejected Report to an error wrapping ErrSyntax.
func (r Report) Err() error {
	switch {
	case len(r.Leftover) > 0:
		t := r.Leftover[0]
		return fmt.Errorf("%w: %w: %q at line %d", ErrSyntax, ErrTrailingTokens, t.Text, t.Line)
	case len(r.Missing) > 0:
		return fmt.Errorf("%w: %w: expected %q", ErrSyntax, ErrUnexpectedEnd, r.Missing[0])
	default:
		return nil
	}
}
