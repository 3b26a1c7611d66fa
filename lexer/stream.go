// SPDX-License-Identifier: MIT
package lexer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

type (
	// Stream lexes a source line by line, communicating Tokens over a channel.
	//
	// A Stream is consumed once; it is not restartable.
	Stream struct {
		lexer *Lexer

		// source is the input source.
		source io.Reader

		// c is a channel for communicating lexed Tokens.
		c chan Token

		// err holds the reason the stream stopped early; read after c is closed.
		err error

		lines int
	}
)

const (
	defBufferSize = 10

	// maxLineSize bounds the length of a single source line.
	maxLineSize = 1 << 20
)

// Lexing errors.
var (
	ErrReadSource = errors.New("failed to read source")
)

// TokenizeLine scans, filters & classifies a single line.
func (l *Lexer) TokenizeLine(lineNumber int, line string) (tokens []Token) {
	lexemes := FilterComments(l.ScanLine(line))

	tokens = make([]Token, len(lexemes))
	for index, lexeme := range lexemes {
		tokens[index] = Token{Line: lineNumber, Text: lexeme, Tag: l.Classify(lexeme)}
	}

	return
}

// Stream creates a Stream over source.
func (l *Lexer) Stream(source io.Reader) *Stream {
	return &Stream{
		lexer:  l,
		source: source,
		c:      make(chan Token, defBufferSize),
	}
}

// Tokenize lexes the whole source into a reusable Token slice.
func (l *Lexer) Tokenize(ctx context.Context, source io.Reader) (tokens []Token, err error) {
	s := l.Stream(source)
	go s.Lex(ctx)

	tokens = make([]Token, 0)
	for {
		token, proceed := s.Token()
		if !proceed {
			break
		}
		tokens = append(tokens, token)
	}

	if err = s.Err(); err != nil {
		if l.debug {
			l.logger.Debugf("stream remnants: %s", spew.Sprint(tokens))
		}
		tokens = nil
	}

	return
}

// Lex reads the source line by line, emitting Tokens until the source is exhausted.
//
// The Token channel is closed on return.
func (s *Stream) Lex(ctx context.Context) {
	defer close(s.c)

	reader := bufio.NewScanner(s.source)
	reader.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for reader.Scan() {
		select {
		case <-ctx.Done():
			s.err = ctx.Err()
			return
		default:
		}

		s.lines++
		for _, token := range s.lexer.TokenizeLine(s.lines, reader.Text()) {
			if s.lexer.debug {
				// Debug operation makes this operation un-inlinable.
				s.lexer.logger.Debugf("lexer emit: %v", token)
			}

			select {
			case <-ctx.Done():
				s.err = ctx.Err()
				return
			case s.c <- token:
			}
		}
	}

	if err := reader.Err(); err != nil {
		s.err = fmt.Errorf("%w: line %d: %v", ErrReadSource, s.lines+1, err)
	}
}

// Token return a lexed Token from the source.
func (s *Stream) Token() (t Token, ok bool) {
	t, ok = <-s.c
	return
}

// Err reports why the Stream stopped early, nil at the end of the source.
//
// The result is valid once Token reports the channel closed.
func (s *Stream) Err() error { return s.err }

// Lines obtains the count of lines read; valid once Token reports the channel closed.
func (s *Stream) Lines() int { return s.lines }
