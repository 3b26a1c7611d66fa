// SPDX-License-Identifier: MIT
package parser

import (
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/rdparse/lexer"
)

type (
	// state is a parser's cursor over the Tokens it owns.
	//
	// The lookahead is tokens[pos]; it is absent once pos reaches the end of tokens.
	state struct {
		tokens []lexer.Token
		pos    int
	}

	// config defines options shared by the parsers.
	config struct {
		debug  bool
		logger logrus.FieldLogger
	}

	// Option defines the parser functional option type.
	Option func(*config)
)

// Parsing errors.
var (
	ErrSyntax = errors.New("syntax error")

	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEnd   = errors.New("unexpected end of input")
	ErrTrailingTokens  = errors.New("trailing tokens")
)

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *config) { c.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *config) { c.logger = logger } }

func newConfig(opts []Option) (c config) {
	c.logger = logrus.New()
	for _, opt := range opts {
		opt(&c)
	}

	return
}

// newState copies tokens; the parser owns its input.
func newState(tokens []lexer.Token) state { return state{tokens: slices.Clone(tokens)} }

// lookahead obtains the next unconsumed Token.
func (s *state) lookahead() (t lexer.Token, ok bool) {
	if s.pos >= len(s.tokens) {
		return
	}

	return s.tokens[s.pos], true
}

// is reports whether the lookahead is present & holds `text`.
func (s *state) is(text string) bool {
	t, ok := s.lookahead()
	return ok && t.Text == text
}

// advance consumes the lookahead.
func (s *state) advance() {
	if s.pos < len(s.tokens) {
		s.pos++
	}
}

// remaining lists the Tokens after the lookahead.
func (s *state) remaining() []lexer.Token {
	if s.pos+1 >= len(s.tokens) {
		return nil
	}

	return s.tokens[s.pos+1:]
}

// unconsumed lists the lookahead & the Tokens after it.
func (s *state) unconsumed() []lexer.Token {
	if s.pos >= len(s.tokens) {
		return nil
	}

	return s.tokens[s.pos:]
}
