package syntax

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jasmine-lang/jasmine/core/diag"
	"github.com/jasmine-lang/jasmine/runtime/lexer"
)

// marker remembers where a node may later be opened
type marker struct {
	event int
	tok   int
}

// mark returns a marker at the current event and token
func (p *parser) mark() marker {
	return marker{event: len(p.events), tok: p.pos}
}

// wrap opens a node at m and closes it here, so everything emitted since
// m becomes its children
func (p *parser) wrap(m marker, rule Rule) {
	p.events = slices.Insert(p.events, m.event, Event{
		Kind: EventOpen,
		Data: uint32(rule),
		Tok:  uint32(m.tok),
	})
	p.events = append(p.events, Event{
		Kind: EventClose,
		Data: uint32(rule),
	})
}

// leaf wraps the current token in a node of its own
func (p *parser) leaf(rule Rule) {
	m := p.mark()
	p.token()
	p.wrap(m, rule)
}

// empty emits a node without tokens at the current position
func (p *parser) empty(rule Rule) {
	p.wrap(p.mark(), rule)
}

// token emits a Token event and advances
func (p *parser) token() {
	p.events = append(p.events, Event{
		Kind: EventToken,
		Data: uint32(p.pos),
	})
	p.advance()
}

// at checks if current token is of given type
func (p *parser) at(typ lexer.TokenType) bool {
	return p.current().Type == typ
}

// current returns the current token
func (p *parser) current() lexer.Token {
	return p.peek(0)
}

// peek returns the token n positions ahead, EOF past the end
func (p *parser) peek(n int) lexer.Token {
	if p.pos+n >= len(p.tokens) {
		end := len(p.source)
		return lexer.Token{Type: lexer.EOF, Start: end, End: end}
	}
	return p.tokens[p.pos+n]
}

// advance moves to the next token
func (p *parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

// expect consumes a token of the expected type or fails
func (p *parser) expect(expected lexer.TokenType, context string) {
	if p.at(expected) {
		p.token()
		return
	}
	p.errorExpected(describeType(expected), context)
}

// expectLeaf consumes a token of the expected type as a leaf node or fails
func (p *parser) expectLeaf(expected lexer.TokenType, rule Rule, context string) {
	if p.at(expected) {
		p.leaf(rule)
		return
	}
	p.errorExpected(describeType(expected), context)
}

// errorExpected reports a missing token
func (p *parser) errorExpected(expected, context string) {
	tok := p.current()
	if tok.Type == lexer.ILLEGAL {
		p.fail(illegalError(p.span(tok), tok))
	}
	msg := "expected " + expected
	if context != "" {
		msg += " " + context
	}
	p.fail(syntaxError(p.span(tok), "%s, found %s", msg, describe(tok)))
}

// errorUnexpected reports the current token as unexpected
func (p *parser) errorUnexpected(expected string) {
	tok := p.current()
	if tok.Type == lexer.ILLEGAL {
		p.fail(illegalError(p.span(tok), tok))
	}
	p.fail(syntaxError(p.span(tok), "unexpected %s, expected %s", describe(tok), expected))
}

// fail aborts the parse with err
func (p *parser) fail(err *diag.Error) {
	panic(bailout{err: err})
}

// span returns the byte range of tok; EOF is empty and sits at the end
func (p *parser) span(tok lexer.Token) diag.Span {
	return diag.Span{Start: tok.Start, End: tok.End}
}

func syntaxError(span diag.Span, format string, args ...interface{}) *diag.Error {
	err := diag.Syntaxf(span, format, args...)
	err.Op = "syntax.Parse"
	return err
}

func illegalError(span diag.Span, tok lexer.Token) *diag.Error {
	switch {
	case strings.HasPrefix(tok.Text, `"`):
		return syntaxError(span, "unterminated string literal")
	case strings.HasPrefix(tok.Text, "/*"):
		return syntaxError(span, "unterminated block comment")
	case tok.Text != "" && (tok.Text[0] >= '0' && tok.Text[0] <= '9' || tok.Text[0] == '-' || tok.Text[0] == '.'):
		return syntaxError(span, "invalid literal '%s'", tok.Text)
	default:
		return syntaxError(span, "unexpected character '%s'", tok.Text)
	}
}

// describe names a token for error messages
func describe(tok lexer.Token) string {
	switch {
	case tok.Type == lexer.EOF:
		return "end of input"
	case tok.Type == lexer.IDENT:
		return fmt.Sprintf("identifier '%s'", tok.Text)
	case tok.Type.IsLiteral():
		return fmt.Sprintf("literal %s", tok.Text)
	case tok.Type >= lexer.FN && tok.Type <= lexer.TAKE:
		return fmt.Sprintf("keyword '%s'", tok.Text)
	default:
		return fmt.Sprintf("'%s'", tok.Text)
	}
}

var punctuation = map[lexer.TokenType]string{
	lexer.LPAREN:    "'('",
	lexer.RPAREN:    "')'",
	lexer.LBRACE:    "'{'",
	lexer.RBRACE:    "'}'",
	lexer.LSQUARE:   "'['",
	lexer.RSQUARE:   "']'",
	lexer.COMMA:     "','",
	lexer.SEMICOLON: "';'",
	lexer.COLON:     "':'",
	lexer.EQUALS:    "'='",
}

// describeType names a token type for error messages
func describeType(typ lexer.TokenType) string {
	if s, ok := punctuation[typ]; ok {
		return s
	}
	switch typ {
	case lexer.IDENT:
		return "identifier"
	case lexer.CATCH:
		return "'catch'"
	case lexer.EOF:
		return "end of input"
	}
	return strings.ToLower(typ.String())
}
