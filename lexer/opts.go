// SPDX-License-Identifier: MIT
package lexer

import (
	"runtime"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

type (
	// Option defines the Lexer functional option type.
	Option func(*Lexer)
)

const (
	// DefaultBreakers are the symbols that always end a lexeme & stand as lexemes of their own.
	DefaultBreakers = "&(){}[]?/<>*+-='\"\\:;"

	// BinaryBreakers lexes bracket-language input, `0011` yields `0 0 1 1`.
	BinaryBreakers = "01"
)

// DefaultKeywords lists the words tagged as KeywordFlag.
var DefaultKeywords = []string{
	"int", "for", "while", "and", "bool", "if", "or", "return",
	"true", "false",
}

// WithBreakers configures the breaker set; every rune in `symbols` is a breaker.
func WithBreakers(symbols string) Option {
	return func(l *Lexer) { l.breakers = newBreakerSet(symbols) }
}

// WithKeywords configures the keyword set, replacing the default.
func WithKeywords(keywords ...string) Option {
	return func(l *Lexer) {
		l.keywords = make(map[string]struct{}, len(keywords))
		for _, keyword := range keywords {
			l.keywords[keyword] = struct{}{}
		}
	}
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithWorkers configures the pool size used by TokenizeFiles.
func WithWorkers(n int) Option {
	return func(l *Lexer) {
		if n > 0 {
			l.workers = n
		}
	}
}

func defaultWorkers() int { return runtime.NumCPU() }

type (
	// breakerSet holds the breaker runes.
	//
	// ASCII lookups use the table; reduces function cost improving the probability of inlining.
	breakerSet struct {
		ascii [utf8.RuneSelf]bool
		other map[rune]struct{}
	}
)

func newBreakerSet(symbols string) (b breakerSet) {
	for _, r := range symbols {
		if r < utf8.RuneSelf {
			b.ascii[r] = true
			continue
		}

		if b.other == nil {
			b.other = make(map[rune]struct{})
		}
		b.other[r] = struct{}{}
	}

	return
}

func (b *breakerSet) contains(r rune) bool {
	if r >= 0 && r < utf8.RuneSelf {
		return b.ascii[r]
	}
	_, ok := b.other[r]

	return ok
}

// runes lists the breakers in ascending order.
func (b *breakerSet) runes() (list []rune) {
	for r := range b.ascii {
		if b.ascii[r] {
			list = append(list, rune(r))
		}
	}
	for r := range b.other {
		list = append(list, r)
	}
	slices.Sort(list)

	return
}
