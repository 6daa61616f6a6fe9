package lexer

import "slices"

// TokenType represents lexical tokens of the Jasmine language
type TokenType int

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Identifiers, dotted names included (a.b.c)
	IDENT

	// Scalar literals
	BOOLEAN   // 1b, 0b
	INTEGER   // 12, -3, 7i16, 9u8
	DECIMAL   // 1.5, .5, -2., 3f32
	DATE      // 2024-04-01
	TIME      // 09:30:00, 09:30:00.000123
	DATETIME  // 2024-04-01T09:30:00.123
	TIMESTAMP // 2024-04-01D09:30:00.123456789
	DURATION  // 1D, 1D02:00:00, 30s, -5m, 10ns
	SYMBOL    // `abc
	STRING    // "text"

	// Keywords
	FN
	IF
	WHILE
	TRY
	CATCH
	RETURN
	RAISE
	NONE

	// Query keywords
	FROM
	FILTER
	GROUP
	SELECT
	UPDATE
	DELETE
	SORT
	TAKE

	// Punctuation
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LSQUARE
	RSQUARE
	COMMA
	SEMICOLON
	COLON
	EQUALS

	// Binary operator, the symbol is the token text
	OPERATOR

	// Run-together symbols such as `a`b`c
	SYMBOLS
)

// Token represents a lexical token
type Token struct {
	Type           TokenType
	Text           string
	Start          int  // byte offset of the first byte
	End            int  // byte offset one past the last byte
	HasSpaceBefore bool // True if whitespace or a comment preceded this token
}

// String returns the token text (for testing and debugging)
func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return t.Text
}

// IsLiteral reports whether the token is a scalar literal.
func (t TokenType) IsLiteral() bool {
	return t >= BOOLEAN && t <= STRING
}

// IsQueryKeyword reports whether the token opens a query clause.
func (t TokenType) IsQueryKeyword() bool {
	return t >= FROM && t <= TAKE
}

// endsValue reports whether a token of this type can end an operand, which
// makes a directly following '-' a binary minus.
func (t TokenType) endsValue() bool {
	return t == IDENT || t.IsLiteral() || t == SYMBOLS || t == NONE || t == RPAREN || t == RSQUARE || t == RBRACE
}

var tokenNames = map[TokenType]string{
	EOF:       "EOF",
	ILLEGAL:   "ILLEGAL",
	IDENT:     "IDENT",
	BOOLEAN:   "BOOLEAN",
	INTEGER:   "INTEGER",
	DECIMAL:   "DECIMAL",
	DATE:      "DATE",
	TIME:      "TIME",
	DATETIME:  "DATETIME",
	TIMESTAMP: "TIMESTAMP",
	DURATION:  "DURATION",
	SYMBOL:    "SYMBOL",
	STRING:    "STRING",
	FN:        "FN",
	IF:        "IF",
	WHILE:     "WHILE",
	TRY:       "TRY",
	CATCH:     "CATCH",
	RETURN:    "RETURN",
	RAISE:     "RAISE",
	NONE:      "NONE",
	FROM:      "FROM",
	FILTER:    "FILTER",
	GROUP:     "GROUP",
	SELECT:    "SELECT",
	UPDATE:    "UPDATE",
	DELETE:    "DELETE",
	SORT:      "SORT",
	TAKE:      "TAKE",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	LSQUARE:   "LSQUARE",
	RSQUARE:   "RSQUARE",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	COLON:     "COLON",
	EQUALS:    "EQUALS",
	OPERATOR:  "OPERATOR",
	SYMBOLS:   "SYMBOLS",
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Keywords maps reserved words to their token types
var Keywords = map[string]TokenType{
	"fn":     FN,
	"if":     IF,
	"while":  WHILE,
	"try":    TRY,
	"catch":  CATCH,
	"return": RETURN,
	"raise":  RAISE,
	"none":   NONE,
	"from":   FROM,
	"filter": FILTER,
	"group":  GROUP,
	"select": SELECT,
	"update": UPDATE,
	"delete": DELETE,
	"sort":   SORT,
	"take":   TAKE,
}

// QueryKeywords lists the clause keywords in canonical order.
var QueryKeywords = []string{"from", "filter", "group", "select", "update", "delete", "sort", "take"}

// SingleCharTokens maps single characters to their token types
var SingleCharTokens = map[byte]TokenType{
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	'[': LSQUARE,
	']': RSQUARE,
	',': COMMA,
	';': SEMICOLON,
	':': COLON,
}

// Operators lists binary operators, two-character ones first so the
// longest match wins.
var Operators = []string{
	"!=", "<=", ">=", "==", "++", "**", "//",
	">", "<", "@", "$", "?", "+", "-", "*", "/", "%", "|", "&", "#", "^", "!",
}

// IsOperator reports whether s is a binary operator symbol.
func IsOperator(s string) bool {
	return slices.Contains(Operators, s)
}
