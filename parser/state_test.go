// SPDX-License-Identifier: MIT
package parser

import (
	"reflect"
	"testing"

	"gitlab.com/fisherprime/rdparse/lexer"
)

func TestState(t *testing.T) {
	tokens := lexer.New().TokenizeLine(1, "+ a a")
	s := newState(tokens)

	// The state owns a copy.
	tokens[0].Text = "changed"

	for _, want := range []string{"+", "a", "a"} {
		got, ok := s.lookahead()
		if !ok || got.Text != want {
			t.Fatalf("state.lookahead() = %v, %v, want %q", got, ok, want)
		}
		// remaining never holds the lookahead.
		if rest, unconsumed := s.remaining(), s.unconsumed(); len(rest) != len(unconsumed)-1 ||
			(len(rest) > 0 && !reflect.DeepEqual(rest, unconsumed[1:])) {
			t.Errorf("state.remaining() = %v, unconsumed %v", rest, unconsumed)
		}
		s.advance()
	}

	if got, ok := s.lookahead(); ok {
		t.Errorf("state.lookahead() = %v, want absent", got)
	}
	if s.remaining() != nil || s.unconsumed() != nil {
		t.Errorf("exhausted state holds tokens: %v", s.unconsumed())
	}

	// Advancing an exhausted state is a no-op.
	s.advance()
	if s.pos != 3 {
		t.Errorf("state.pos = %d, want 3", s.pos)
	}
}

func TestState_empty(t *testing.T) {
	s := newState(nil)

	if _, ok := s.lookahead(); ok {
		t.Errorf("state.lookahead() present for empty input")
	}
	if s.is("a") {
		t.Errorf("state.is() true for empty input")
	}
	if got := s.unconsumed(); !reflect.DeepEqual(got, []lexer.Token(nil)) {
		t.Errorf("state.unconsumed() = %v, want nil", got)
	}
}
