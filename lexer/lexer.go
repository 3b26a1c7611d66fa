// SPDX-License-Identifier: MIT
package lexer

// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/rdparse/types"
)

type (
	// Lexer holds the breaker & keyword sets shared by the scan & classify operations.
	//
	// A Lexer is read-only after New; it may be shared by concurrent streams.
	Lexer struct {
		debug  bool
		logger logrus.FieldLogger

		breakers breakerSet
		keywords map[string]struct{}

		workers int
	}

	// scanFn type for the next scanner state to be executed.
	scanFn func(*scanner) scanFn

	// scanner splits a single line into lexemes.
	scanner struct {
		breakers *breakerSet

		// src holds the line's runes.
		src []rune
		// start is the first rune of the lexeme being scanned, pos the current position.
		start, pos int

		out types.StringSlice
	}
)

// New creates a Lexer; the default breakers & keywords apply unless overridden.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		logger:   logrus.New(),
		breakers: newBreakerSet(DefaultBreakers),
		workers:  defaultWorkers(),
	}
	WithKeywords(DefaultKeywords...)(l)

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Breakers obtains the configured breakers.
func (l *Lexer) Breakers() string { return string(l.breakers.runes()) }

// Keywords obtains the configured keywords, sorted.
func (l *Lexer) Keywords() (keywords []string) {
	keywords = maps.Keys(l.keywords)
	slices.Sort(keywords)

	return
}

// IsBreaker reports whether `r` is a configured breaker.
func (l *Lexer) IsBreaker(r rune) bool { return l.breakers.contains(r) }

// ScanLine splits a line into lexemes.
//
// Whitespace separates lexemes & is discarded; a breaker ends the lexeme before it & is a
// single-rune lexeme of its own.
func (l *Lexer) ScanLine(line string) types.StringSlice {
	s := &scanner{
		breakers: &l.breakers,
		src:      []rune(line),
		out:      make(types.StringSlice, 0),
	}

	for state := scanWhitespace; state != nil; {
		state = state(s)
	}

	return s.out
}

// Classify tags a lexeme.
//
// Integers take priority over punctuation, punctuation over keywords; anything else is an
// Identifier.
func (l *Lexer) Classify(lexeme string) Tag {
	if _, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
		return Number
	}

	if utf8.RuneCountInString(lexeme) == 1 {
		r, _ := utf8.DecodeRuneInString(lexeme)
		if tag, ok := punctuation[r]; ok {
			return tag
		}

		return Identifier
	}

	if _, ok := l.keywords[lexeme]; ok {
		return KeywordFlag
	}

	return Identifier
}

// scanWhitespace discards whitespace, selecting the state for the next lexeme.
func scanWhitespace(s *scanner) scanFn {
	for s.pos < len(s.src) && unicode.IsSpace(s.src[s.pos]) {
		s.pos++
	}
	s.start = s.pos

	switch {
	case s.pos >= len(s.src):
		return nil
	case s.breakers.contains(s.src[s.pos]):
		return scanBreaker
	default:
		return scanWord
	}
}

// scanBreaker consumes a single breaker rune.
func scanBreaker(s *scanner) scanFn {
	s.pos++
	s.emit()

	return scanWhitespace
}

// scanWord consumes runes up to whitespace, a breaker or the end of the line.
func scanWord(s *scanner) scanFn {
	for s.pos < len(s.src) {
		r := s.src[s.pos]
		if unicode.IsSpace(r) || s.breakers.contains(r) {
			break
		}
		s.pos++
	}
	s.emit()

	return scanWhitespace
}

// emit appends the runes between start & pos to the output.
func (s *scanner) emit() {
	s.out = append(s.out, string(s.src[s.start:s.pos]))
	s.start = s.pos
}
