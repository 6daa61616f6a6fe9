package lexer

import (
	"regexp"
	"strings"
)

// LexerOpt represents a lexer configuration option
type LexerOpt func(*LexerConfig)

// TelemetryMode controls telemetry collection
type TelemetryMode int

const (
	TelemetryOff   TelemetryMode = iota // Zero overhead (default)
	TelemetryBasic                      // Token counts only
)

// LexerConfig holds lexer configuration
type LexerConfig struct {
	telemetry TelemetryMode
}

// WithTelemetryBasic enables basic telemetry (token counts only)
func WithTelemetryBasic() LexerOpt {
	return func(c *LexerConfig) {
		c.telemetry = TelemetryBasic
	}
}

// Lexer turns Jasmine source into tokens. Offsets are byte offsets into the
// input; the lexer never allocates token text, it slices the input.
type Lexer struct {
	input    string
	position int

	// last emitted token type, used to tell binary minus from a sign
	prev TokenType

	tokens     []Token
	tokenIndex int
	done       bool

	telemetryMode TelemetryMode
	tokenCounts   map[TokenType]int
}

// NewLexer creates a new lexer instance with optional configuration
func NewLexer(input string, opts ...LexerOpt) *Lexer {
	config := &LexerConfig{}
	for _, opt := range opts {
		opt(config)
	}

	lexer := &Lexer{
		tokens:        make([]Token, 0, 64),
		telemetryMode: config.telemetry,
	}
	if config.telemetry > TelemetryOff {
		lexer.tokenCounts = make(map[TokenType]int)
	}

	lexer.Init(input)
	return lexer
}

// Init resets the lexer with new input (following Go scanner pattern)
func (l *Lexer) Init(input string) {
	l.input = input
	l.position = 0
	l.prev = ILLEGAL
	l.tokens = l.tokens[:0]
	l.tokenIndex = 0
	l.done = false
	for k := range l.tokenCounts {
		delete(l.tokenCounts, k)
	}
}

// TokenCounts returns per-type token counts, nil when telemetry is off
func (l *Lexer) TokenCounts() map[TokenType]int {
	if l.telemetryMode == TelemetryOff {
		return nil
	}
	result := make(map[TokenType]int, len(l.tokenCounts))
	for k, v := range l.tokenCounts {
		result[k] = v
	}
	return result
}

// NextToken returns the next token using streaming interface. Once EOF is
// reached it keeps returning EOF.
func (l *Lexer) NextToken() Token {
	if l.tokenIndex < len(l.tokens) {
		tok := l.tokens[l.tokenIndex]
		l.tokenIndex++
		return tok
	}
	if l.done {
		return Token{Type: EOF, Start: len(l.input), End: len(l.input)}
	}

	tok := l.lexToken()
	if tok.Type == EOF {
		l.done = true
	}
	if l.telemetryMode > TelemetryOff {
		l.tokenCounts[tok.Type]++
	}
	l.prev = tok.Type
	l.tokens = append(l.tokens, tok)
	l.tokenIndex++
	return tok
}

// GetTokens returns all tokens, ending with EOF, using batch interface.
// Tokens already consumed via NextToken are included.
func (l *Lexer) GetTokens() []Token {
	for {
		if tok := l.NextToken(); tok.Type == EOF {
			break
		}
	}
	out := make([]Token, len(l.tokens))
	copy(out, l.tokens)
	return out
}

// Tokenize is shorthand for NewLexer(input).GetTokens().
func Tokenize(input string, opts ...LexerOpt) []Token {
	return NewLexer(input, opts...).GetTokens()
}

// lexToken performs the actual tokenization work
func (l *Lexer) lexToken() Token {
	hadSpace, illegal := l.skipTrivia()
	if illegal != nil {
		return *illegal
	}

	if l.position >= len(l.input) {
		return Token{Type: EOF, Start: len(l.input), End: len(l.input), HasSpaceBefore: hadSpace}
	}

	start := l.position
	ch := l.input[start]

	if ch < 128 && isIdentStart[ch] {
		return l.lexIdentifier(start, hadSpace)
	}

	if ch < 128 && isDigit[ch] || ch == '.' && l.digitAt(start+1) {
		return l.lexLiteral(start, start, hadSpace)
	}

	switch ch {
	case '"':
		return l.lexString(start, hadSpace)
	case '`':
		return l.lexSymbol(start, hadSpace)
	case '=':
		if l.peek(1) != '=' {
			l.position++
			return l.emit(EQUALS, start, hadSpace)
		}
	case '-':
		if l.signAllowed(hadSpace) && (l.digitAt(start+1) || l.peek(1) == '.' && l.digitAt(start+2)) {
			return l.lexLiteral(start, start+1, hadSpace)
		}
	}

	if typ, ok := SingleCharTokens[ch]; ok {
		l.position++
		return l.emit(typ, start, hadSpace)
	}

	for _, op := range Operators {
		if strings.HasPrefix(l.input[start:], op) {
			l.position += len(op)
			return l.emit(OPERATOR, start, hadSpace)
		}
	}

	// Unrecognized character, consume the whole rune
	l.position += runeLen(l.input[start:])
	return l.emit(ILLEGAL, start, hadSpace)
}

// signAllowed reports whether a '-' at the current position may start a
// negative literal. Directly after an operand it is a binary minus, so
// `x-1` subtracts while `x -1` applies x to -1.
func (l *Lexer) signAllowed(hadSpace bool) bool {
	return hadSpace || !l.prev.endsValue()
}

func (l *Lexer) emit(typ TokenType, start int, hadSpace bool) Token {
	return Token{
		Type:           typ,
		Text:           l.input[start:l.position],
		Start:          start,
		End:            l.position,
		HasSpaceBefore: hadSpace,
	}
}

// skipTrivia skips whitespace and comments. A `//` starts a line comment
// at the start of input or after whitespace; elsewhere it is the floor
// division operator. An unterminated block comment yields an ILLEGAL token.
func (l *Lexer) skipTrivia() (bool, *Token) {
	start := l.position
	for l.position < len(l.input) {
		ch := l.input[l.position]
		switch {
		case ch < 128 && isWhitespace[ch]:
			l.position++
		case strings.HasPrefix(l.input[l.position:], "/*"):
			end := strings.Index(l.input[l.position+2:], "*/")
			if end < 0 {
				tok := Token{
					Type:           ILLEGAL,
					Text:           l.input[l.position:],
					Start:          l.position,
					End:            len(l.input),
					HasSpaceBefore: l.position > start,
				}
				l.position = len(l.input)
				return true, &tok
			}
			l.position += end + 4
		case strings.HasPrefix(l.input[l.position:], "//") && (l.position == 0 || l.position > start || l.spaceAt(l.position-1)):
			end := strings.IndexByte(l.input[l.position:], '\n')
			if end < 0 {
				l.position = len(l.input)
			} else {
				l.position += end
			}
		default:
			return l.position > start, nil
		}
	}
	return l.position > start, nil
}

// lexIdentifier reads an identifier or keyword. Dots join identifier parts
// (a.b.c) when a letter follows them.
func (l *Lexer) lexIdentifier(start int, hadSpace bool) Token {
	for l.position < len(l.input) {
		ch := l.input[l.position]
		if ch < 128 && isIdentPart[ch] {
			l.position++
			continue
		}
		if ch == '.' && l.position+1 < len(l.input) && l.input[l.position+1] < 128 && isIdentStart[l.input[l.position+1]] {
			l.position++
			continue
		}
		break
	}

	typ := IDENT
	if kw, ok := Keywords[l.input[start:l.position]]; ok {
		typ = kw
	}
	return l.emit(typ, start, hadSpace)
}

// lexString reads a double quoted string. Strings have no escapes and may
// span lines; a missing closing quote yields ILLEGAL.
func (l *Lexer) lexString(start int, hadSpace bool) Token {
	end := strings.IndexByte(l.input[start+1:], '"')
	if end < 0 {
		l.position = len(l.input)
		return l.emit(ILLEGAL, start, hadSpace)
	}
	l.position = start + end + 2
	return l.emit(STRING, start, hadSpace)
}

// lexSymbol reads a backtick symbol. The name runs to whitespace, a
// delimiter or a closing backtick, which is included in the token.
func (l *Lexer) lexSymbol(start int, hadSpace bool) Token {
	l.position++
	for l.position < len(l.input) {
		ch := l.input[l.position]
		if ch == '`' {
			l.position++
			break
		}
		if ch < 128 && (isWhitespace[ch] || isSymbolStop[ch]) {
			break
		}
		l.position++
	}
	closed := l.position-start > 1 && l.input[l.position-1] == '`'
	if !closed || l.position >= len(l.input) || l.input[l.position] >= 128 || !isIdentPart[l.input[l.position]] {
		return l.emit(SYMBOL, start, hadSpace)
	}
	// a name straight after the closing backtick runs the symbols together
	for l.position < len(l.input) {
		ch := l.input[l.position]
		if ch < 128 && (isWhitespace[ch] || isSymbolStop[ch]) {
			break
		}
		l.position++
	}
	return l.emit(SYMBOLS, start, hadSpace)
}

// literalForm is one scalar literal shape; forms are tried in order and the
// first one that ends on a token boundary wins.
type literalForm struct {
	typ    TokenType
	re     *regexp.Regexp
	signed bool
}

const clock = `\d{2}:\d{2}:\d{2}(\.\d*)?`

var literalForms = []literalForm{
	{TIMESTAMP, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}D(` + clock + `)?`), false},
	{DATETIME, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T(` + clock + `)?`), false},
	{DATE, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`), false},
	{DURATION, regexp.MustCompile(`^\d+D(` + clock + `)?`), true},
	{TIME, regexp.MustCompile(`^` + clock), false},
	{DURATION, regexp.MustCompile(`^\d+(ns|s|m|h)`), true},
	{BOOLEAN, regexp.MustCompile(`^[01]b`), false},
	{DECIMAL, regexp.MustCompile(`^(\d+\.\d*|\.\d+)(f32|f64)?`), true},
	{DECIMAL, regexp.MustCompile(`^\d+(f32|f64)`), true},
	{INTEGER, regexp.MustCompile(`^\d+(i8|u8|i16|u16|i32|u32|i64|u64)?`), true},
}

// lexLiteral reads a scalar literal whose digits start at body. When body
// is past start, the byte at start is a minus sign.
func (l *Lexer) lexLiteral(start, body int, hadSpace bool) Token {
	signed := body > start
	rest := l.input[body:]
	for _, form := range literalForms {
		if signed && !form.signed {
			continue
		}
		m := form.re.FindString(rest)
		if m == "" || !l.boundaryAt(body+len(m)) {
			continue
		}
		l.position = body + len(m)
		return l.emit(form.typ, start, hadSpace)
	}

	if signed {
		// a sign that starts no literal is a plain minus
		l.position = start + 1
		return l.emit(OPERATOR, start, hadSpace)
	}

	// Malformed literal such as 12ab, consume the whole run
	l.position = body
	for l.position < len(l.input) && l.input[l.position] < 128 && (isIdentPart[l.input[l.position]] || l.input[l.position] == '.') {
		l.position++
	}
	return l.emit(ILLEGAL, start, hadSpace)
}

func (l *Lexer) boundaryAt(i int) bool {
	if i >= len(l.input) {
		return true
	}
	ch := l.input[i]
	return ch >= 128 || !isIdentPart[ch] && ch != '.'
}

func (l *Lexer) peek(n int) byte {
	if l.position+n >= len(l.input) {
		return 0
	}
	return l.input[l.position+n]
}

func (l *Lexer) digitAt(i int) bool {
	return i < len(l.input) && l.input[i] < 128 && isDigit[l.input[i]]
}

func (l *Lexer) spaceAt(i int) bool {
	return i >= 0 && i < len(l.input) && l.input[i] < 128 && isWhitespace[l.input[i]]
}
