package lexer

import "unicode/utf8"

// ASCII character lookup tables for fast classification
//
//	if ch < 128 && isIdentStart[ch] { ... }
//
// Non-ASCII bytes only appear inside strings, symbols and comments.
var (
	isWhitespace [128]bool // Space, tab, carriage return, newline, form feed
	isLetter     [128]bool // a-z, A-Z, _
	isDigit      [128]bool // 0-9
	isIdentStart [128]bool // Letter or _
	isIdentPart  [128]bool // Letter, digit or _
	isSymbolStop [128]bool // Delimiters that end a backtick symbol
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)

		isWhitespace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
		isLetter[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
		isDigit[i] = '0' <= ch && ch <= '9'
		isIdentStart[i] = isLetter[i]
		isIdentPart[i] = isLetter[i] || isDigit[i]

		switch ch {
		case ',', ';', ':', '(', ')', '[', ']', '{', '}':
			isSymbolStop[i] = true
		}
	}
}

// runeLen returns the byte length of the first rune in s, at least 1.
func runeLen(s string) int {
	_, size := utf8.DecodeRuneInString(s)
	if size <= 0 {
		return 1
	}
	return size
}
