// SPDX-License-Identifier: MIT
package lexer

type (
	// Tag identifies the class of a lexed Token.
	Tag int
)

// Token classes.
//
// KeywordFlag covers every keyword; true & false are not told apart.
const (
	Number Tag = iota
	Identifier
	KeywordFlag
	Semicolon
	Backslash
	Equals
	Minus
	Plus
	Asterisk
	ForwardSlash
	QuestionMark
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
	LeftParen
	RightParen
	SingleQuote
	DoubleQuote
	Colon
	LessThan
	GreaterThan
	Ampersand
	None
)

var tagNames = [...]string{
	Number:       "Number",
	Identifier:   "ID",
	KeywordFlag:  "True",
	Semicolon:    "SEMICOLON",
	Backslash:    "BACKSLASH",
	Equals:       "EQUALS",
	Minus:        "MINUS",
	Plus:         "PLUS",
	Asterisk:     "ASTERISK",
	ForwardSlash: "FORWARDSLASH",
	QuestionMark: "QUESTIONMARK",
	LeftBracket:  "LEFTBRACKET",
	RightBracket: "RIGHTBRACKET",
	LeftBrace:    "LEFTBRACE",
	RightBrace:   "RIGHTBRACE",
	LeftParen:    "LEFTPAREN",
	RightParen:   "RIGHTPAREN",
	SingleQuote:  "SINGLEQUOTE",
	DoubleQuote:  "DOUBLEQUOTE",
	Colon:        "COLON",
	LessThan:     "LESSTHAN",
	GreaterThan:  "GREATERTHAN",
	Ampersand:    "ANDSYMBOL",
	None:         "Nil",
}

// punctuation maps single-rune tokens to their Tag.
var punctuation = map[rune]Tag{
	'(':  LeftParen,
	')':  RightParen,
	'{':  LeftBrace,
	'}':  RightBrace,
	'[':  LeftBracket,
	']':  RightBracket,
	'?':  QuestionMark,
	'/':  ForwardSlash,
	'<':  LessThan,
	'>':  GreaterThan,
	'*':  Asterisk,
	'+':  Plus,
	'-':  Minus,
	'=':  Equals,
	'\'': SingleQuote,
	'"':  DoubleQuote,
	'\\': Backslash,
	';':  Semicolon,
	':':  Colon,
	'&':  Ampersand,
}

// String is the fmt.Stringer implementation for Tag.
func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return tagNames[None]
	}

	return tagNames[t]
}
