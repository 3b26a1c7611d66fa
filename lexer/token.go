// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// Token is a classified lexeme & the line it was read from.
	Token struct {
		Text string // The lexeme.
		Line int    // 1-based source line.
		Tag  Tag    // The class of the lexeme.
	}
)

// String renders the Token in the token report format.
func (t Token) String() string {
	return fmt.Sprintf("Line %d token %s tag %s", t.Line, t.Text, t.Tag)
}

// Texts lists the lexemes of a Token slice.
func Texts(tokens []Token) (texts []string) {
	texts = make([]string, len(tokens))
	for index := range tokens {
		texts[index] = tokens[index].Text
	}

	return
}
