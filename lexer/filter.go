// SPDX-License-Identifier: MIT
package lexer

import "gitlab.com/fisherprime/rdparse/types"

const (
	// commentSymbol, doubled, starts a line comment.
	commentSymbol = "/"
)

// FilterComments truncates the lexemes at the first line comment marker; two consecutive `/`.
//
// Lexemes without a marker are returned unchanged.
func FilterComments(lexemes types.StringSlice) types.StringSlice {
	lexemes.Truncate(lexemes.LocateRun(commentSymbol, 2))

	return lexemes
}
