// Package syntax is the Jasmine grammar. It turns tokens into an event
// stream that folds into Pair trees tagged with Rule values.
//
// The language has no operator precedence. Binary operators associate to the
// right and juxtaposition applies a function to everything on its right:
//
//	Program      = [Exp] { ";" [Exp] } EOI
//	Exp          = ReturnExp | RaiseExp | IfExp | WhileExp | TryExp | SqlExp | Operation
//	Operation    = Term "=" Exp | Term BinaryOp Exp | Term Exp | Term
//	Term         = Primary { "(" Arg { "," Arg } ")" }
//	Primary      = Id | scalar | Series | Fn | Dict | "(" Exp ")"
//	             | "df[" cols "]" | "x[" cols "]" | "l[" items "]" | "d[" "[" keys "]" "," "[" values "]" "]"
//	SqlExp       = clause { clause }
//	clause       = "from" Term | "filter" "{" ... "}" | "group" "{" ... "}"
//	             | ("select" | "update" | "delete") "{" ... "}" | "sort" "{" ... "}" | "take" Exp
package syntax

import (
	"fmt"
	"strings"

	"github.com/jasmine-lang/jasmine/core/diag"
	"github.com/jasmine-lang/jasmine/runtime/lexer"
)

// DefaultMaxDepth bounds expression nesting.
const DefaultMaxDepth = 256

// Opt represents a grammar configuration option
type Opt func(*Config)

// Config holds grammar configuration
type Config struct {
	maxDepth int
}

// WithMaxDepth sets the maximum expression nesting depth
func WithMaxDepth(depth int) Opt {
	return func(c *Config) {
		c.maxDepth = depth
	}
}

// Parse tokenizes and parses source. It stops at the first error, which is
// always a *diag.Error of kind syntax or depth.
func Parse(source string, opts ...Opt) (tree *Tree, err error) {
	config := &Config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(config)
	}

	tokens := lexer.Tokenize(source)

	// Heuristic: ~3 events per token (Open, Token, Close for simple nodes)
	eventCap := len(tokens) * 3
	if eventCap < 16 {
		eventCap = 16
	}

	p := &parser{
		source: source,
		tokens: tokens,
		events: make([]Event, 0, eventCap),
		config: config,
	}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			tree, err = nil, b.err
		}
	}()

	p.program()

	return &Tree{Source: source, Tokens: tokens, Events: p.events}, nil
}

// ParsePairs is Parse followed by Tree.Pairs.
func ParsePairs(source string, opts ...Opt) ([]*Pair, error) {
	tree, err := Parse(source, opts...)
	if err != nil {
		return nil, err
	}
	return tree.Pairs(), nil
}

// bailout carries the first error up to Parse
type bailout struct {
	err *diag.Error
}

// parser is the internal parser state
type parser struct {
	source string
	tokens []lexer.Token
	pos    int
	events []Event
	config *Config
	depth  int
	sql    bool // inside the braces of a query clause
}

// termKind classifies what Term produced, which decides whether `=`, `(`
// and juxtaposition may follow
type termKind int

const (
	termValue   termKind = iota // literal or collection
	termId                      // bare identifier
	termIndex                   // call on a bare identifier, f(...)
	termCall                    // any other call
	termBracket                 // (exp)
	termFn                      // fn(...){...}
)

func (t termKind) callable() bool { return t != termValue }

func (t termKind) assignable() bool { return t == termId || t == termIndex }

// program parses the top-level statement list. Separators between
// statements belong to no node, so they emit no event.
func (p *parser) program() {
	for !p.at(lexer.EOF) {
		if p.at(lexer.SEMICOLON) {
			p.advance()
			continue
		}
		p.exp()
		if !p.at(lexer.SEMICOLON) && !p.at(lexer.EOF) {
			p.errorUnexpected("';' or end of input")
		}
	}
	m := p.mark()
	p.token()
	p.wrap(m, RuleEOI)
}

// exp parses one expression wrapped in an Exp node
func (p *parser) exp() {
	p.enter()
	defer p.leave()

	m := p.mark()
	switch typ := p.current().Type; {
	case typ == lexer.RETURN:
		p.keywordExp(RuleReturnExp)
	case typ == lexer.RAISE:
		p.keywordExp(RuleRaiseExp)
	case typ == lexer.IF:
		p.conditional(RuleIfExp)
	case typ == lexer.WHILE:
		p.conditional(RuleWhileExp)
	case typ == lexer.TRY:
		p.tryExp()
	case typ.IsQueryKeyword():
		p.query()
	default:
		p.operation()
	}
	p.wrap(m, RuleExp)
}

// operation parses assignment, binary and unary application
func (p *parser) operation() {
	m := p.mark()
	kind := p.term()
	switch {
	case p.at(lexer.EQUALS) && kind.assignable():
		p.token()
		p.exp()
		p.wrap(m, RuleAssignmentExp)
	case p.at(lexer.OPERATOR):
		p.leaf(RuleBinaryOp)
		p.exp()
		p.wrap(m, RuleBinaryExp)
	case kind.callable() && p.startsExp():
		p.exp()
		p.wrap(m, RuleUnaryExp)
	}
}

// sqlExp parses an expression inside query braces. It has no assignment
// and no Exp wrappers.
func (p *parser) sqlExp() {
	p.enter()
	defer p.leave()

	m := p.mark()
	kind := p.term()
	switch {
	case p.at(lexer.OPERATOR):
		p.leaf(RuleBinaryOp)
		p.sqlExp()
		p.wrap(m, RuleBinarySqlExp)
	case kind.callable() && p.startsExp():
		p.sqlExp()
		p.wrap(m, RuleUnarySqlExp)
	}
}

// startsExp reports whether the current token can begin an expression
// operand in application position
func (p *parser) startsExp() bool {
	switch typ := p.current().Type; {
	case typ == lexer.IDENT, typ == lexer.NONE, typ == lexer.FN, typ == lexer.SYMBOLS, typ.IsLiteral():
		return true
	case typ == lexer.LSQUARE, typ == lexer.LBRACE, typ == lexer.LPAREN:
		return true
	case typ == lexer.FROM:
		return !p.sql
	}
	return false
}

// term parses a primary followed by any number of call argument lists
func (p *parser) term() termKind {
	m := p.mark()
	kind := p.primary()
	for p.at(lexer.LPAREN) && kind.callable() {
		p.args()
		p.wrap(m, RuleFnCall)
		if kind == termId {
			kind = termIndex
		} else {
			kind = termCall
		}
	}
	return kind
}

// primary parses a single operand
func (p *parser) primary() termKind {
	tok := p.current()
	switch {
	case tok.Type == lexer.IDENT:
		if next := p.peek(1); next.Type == lexer.LSQUARE && !next.HasSpaceBefore {
			switch tok.Text {
			case "df":
				p.columns(RuleDataframe)
				return termValue
			case "x":
				p.columns(RuleMatrix)
				return termValue
			case "l":
				p.list()
				return termValue
			case "d":
				p.keysValues()
				return termValue
			}
		}
		if p.peek(1).Type == lexer.LPAREN {
			p.leaf(RuleGlobalId)
		} else {
			p.leaf(RuleId)
		}
		return termId

	case tok.Type.IsLiteral() || tok.Type == lexer.NONE:
		p.leaf(scalarRule(tok.Type))
		return termValue

	case tok.Type == lexer.SYMBOLS:
		p.leaf(RuleSyms)
		return termValue

	case tok.Type == lexer.FN:
		p.fn()
		return termFn

	case tok.Type == lexer.LSQUARE:
		p.series()
		return termValue

	case tok.Type == lexer.LBRACE:
		p.dict()
		return termValue

	case tok.Type == lexer.LPAREN:
		m := p.mark()
		p.token()
		if p.sql {
			p.sqlExp()
			p.expect(lexer.RPAREN, "to close the bracket")
			p.wrap(m, RuleBracketSqlExp)
		} else {
			p.exp()
			p.expect(lexer.RPAREN, "to close the bracket")
			p.wrap(m, RuleBracketExp)
		}
		return termBracket
	}

	p.errorUnexpected("an expression")
	return termValue
}

func scalarRule(typ lexer.TokenType) Rule {
	switch typ {
	case lexer.BOOLEAN:
		return RuleBoolean
	case lexer.INTEGER:
		return RuleInteger
	case lexer.DECIMAL:
		return RuleDecimal
	case lexer.DATE:
		return RuleDate
	case lexer.TIME:
		return RuleTime
	case lexer.DATETIME:
		return RuleDatetime
	case lexer.TIMESTAMP:
		return RuleTimestamp
	case lexer.DURATION:
		return RuleDuration
	case lexer.SYMBOL:
		return RuleEnum
	case lexer.STRING:
		return RuleString
	default:
		return RuleNone
	}
}

// args parses a call argument list; an empty slot is a Skip
func (p *parser) args() {
	p.token() // (
	for {
		m := p.mark()
		if p.at(lexer.COMMA) || p.at(lexer.RPAREN) {
			p.empty(RuleSkip)
		} else {
			p.withSQL(false, p.exp)
		}
		p.wrap(m, RuleArg)
		if !p.at(lexer.COMMA) {
			break
		}
		p.token()
	}
	p.expect(lexer.RPAREN, "to close the argument list")
}

// fn parses fn(params){statements}
func (p *parser) fn() {
	m := p.mark()
	p.token() // fn
	p.expect(lexer.LPAREN, "after 'fn'")

	pm := p.mark()
	for !p.at(lexer.RPAREN) {
		p.expectLeaf(lexer.IDENT, RuleId, "as parameter name")
		if !p.at(lexer.COMMA) {
			break
		}
		p.token()
	}
	p.wrap(pm, RuleParams)
	p.expect(lexer.RPAREN, "to close the parameter list")

	p.expect(lexer.LBRACE, "to open the function body")
	p.withSQL(false, func() { p.statements(lexer.RBRACE) })
	p.expect(lexer.RBRACE, "to close the function body")
	p.wrap(m, RuleFn)
}

// statements parses `;` separated expressions up to end
func (p *parser) statements(end lexer.TokenType) {
	for !p.at(end) {
		if p.at(lexer.SEMICOLON) {
			p.token()
			continue
		}
		if p.at(lexer.EOF) {
			p.expect(end, "")
		}
		p.exp()
		if !p.at(lexer.SEMICOLON) && !p.at(end) {
			p.errorUnexpected(fmt.Sprintf("';' or %s", describeType(end)))
		}
	}
}

// block parses { statements } into a Statements node
func (p *parser) block(context string) {
	p.expect(lexer.LBRACE, "to open the "+context)
	m := p.mark()
	p.statements(lexer.RBRACE)
	p.wrap(m, RuleStatements)
	p.expect(lexer.RBRACE, "to close the "+context)
}

// keywordExp parses return/raise followed by an expression
func (p *parser) keywordExp(rule Rule) {
	m := p.mark()
	p.token()
	p.exp()
	p.wrap(m, rule)
}

// conditional parses if(cond){...} and while(cond){...}
func (p *parser) conditional(rule Rule) {
	m := p.mark()
	keyword := p.current().Text
	p.token()
	p.expect(lexer.LPAREN, "after '"+keyword+"'")
	cm := p.mark()
	p.operation()
	p.wrap(cm, RuleConditionExp)
	p.expect(lexer.RPAREN, "to close the condition")
	p.block(keyword + " body")
	p.wrap(m, rule)
}

// tryExp parses try {...} catch(name) {...}
func (p *parser) tryExp() {
	m := p.mark()
	p.token() // try
	p.block("try body")
	p.expect(lexer.CATCH, "after the try body")
	p.expect(lexer.LPAREN, "after 'catch'")
	p.expectLeaf(lexer.IDENT, RuleId, "as error name")
	p.expect(lexer.RPAREN, "to close the catch binding")
	p.block("catch body")
	p.wrap(m, RuleTryExp)
}

// series parses [a, b c, , d]: elements are scalar tokens separated by
// commas or whitespace, an empty comma slot is a null element
func (p *parser) series() {
	m := p.mark()
	p.token() // [
	filled := false
	for !p.at(lexer.RSQUARE) {
		switch tok := p.current(); {
		case tok.Type == lexer.COMMA:
			if !filled {
				p.empty(RuleUnknown)
			}
			p.token()
			filled = false
		case isElement(tok):
			p.leaf(RuleUnknown)
			filled = true
		default:
			p.errorUnexpected("a scalar series element or ']'")
		}
	}
	p.token() // ]
	p.wrap(m, RuleSeries)
}

func isElement(tok lexer.Token) bool {
	if tok.Type.IsLiteral() || tok.Type == lexer.NONE {
		return true
	}
	return tok.Type == lexer.IDENT && (tok.Text == "true" || tok.Text == "false")
}

// columns parses df[...] and x[...] column lists
func (p *parser) columns(rule Rule) {
	m := p.mark()
	p.token() // prefix
	p.token() // [
	p.withSQL(false, func() {
		p.commaList(lexer.RSQUARE, func() {
			p.seriesExp(func() {
				p.enter()
				defer p.leave()
				p.operation()
			})
		})
	})
	p.expect(lexer.RSQUARE, "to close the "+strings.ToLower(rule.String()))
	p.wrap(m, rule)
}

// seriesExp parses `name = value` or value
func (p *parser) seriesExp(value func()) {
	m := p.mark()
	if p.at(lexer.IDENT) && p.peek(1).Type == lexer.EQUALS {
		rm := p.mark()
		p.leaf(RuleSeriesName)
		p.token() // =
		value()
		p.wrap(rm, RuleRenameSeriesExp)
	} else {
		value()
	}
	p.wrap(m, RuleSeriesExp)
}

// list parses l[...]; a bare binary operator is an element of its own
func (p *parser) list() {
	m := p.mark()
	p.token() // l
	p.token() // [
	p.withSQL(false, func() {
		p.commaList(lexer.RSQUARE, func() {
			if p.at(lexer.OPERATOR) {
				if next := p.peek(1).Type; next == lexer.COMMA || next == lexer.RSQUARE {
					p.leaf(RuleBinaryOp)
					return
				}
			}
			p.exp()
		})
	})
	p.expect(lexer.RSQUARE, "to close the list")
	p.wrap(m, RuleList)
}

// keysValues parses d[[keys...], [values...]]
func (p *parser) keysValues() {
	m := p.mark()
	p.token() // d
	p.token() // [
	p.withSQL(false, func() {
		for i, rule := range []Rule{RuleKeys, RuleValues} {
			if i > 0 {
				p.expect(lexer.COMMA, "between dict keys and values")
			}
			p.expect(lexer.LSQUARE, "to open dict "+strings.ToLower(rule.String()))
			rm := p.mark()
			p.commaList(lexer.RSQUARE, p.exp)
			p.wrap(rm, rule)
			p.expect(lexer.RSQUARE, "to close dict "+strings.ToLower(rule.String()))
		}
	})
	p.expect(lexer.RSQUARE, "to close the dict")
	p.wrap(m, RuleDict)
}

// dict parses {key: value, ...}; keys are identifiers, symbols or strings
func (p *parser) dict() {
	m := p.mark()
	p.token() // {
	p.withSQL(false, func() {
		p.commaList(lexer.RBRACE, func() {
			km := p.mark()
			switch p.current().Type {
			case lexer.IDENT:
				p.leaf(RuleId)
			case lexer.SYMBOL:
				p.leaf(RuleEnum)
			case lexer.STRING:
				p.leaf(RuleString)
			default:
				p.errorUnexpected("a dict key")
			}
			p.expect(lexer.COLON, "after dict key")
			p.exp()
			p.wrap(km, RuleKeyValueExp)
		})
	})
	p.expect(lexer.RBRACE, "to close the dict")
	p.wrap(m, RuleDict)
}

// commaList calls item for each comma separated element up to end,
// accepting a trailing comma
func (p *parser) commaList(end lexer.TokenType, item func()) {
	for !p.at(end) {
		item()
		if !p.at(lexer.COMMA) {
			return
		}
		p.token()
	}
}

// withSQL runs fn with the query brace context set to sql
func (p *parser) withSQL(sql bool, fn func()) {
	saved := p.sql
	p.sql = sql
	defer func() { p.sql = saved }()
	fn()
}

// enter tracks nesting depth and fails once it exceeds the limit
func (p *parser) enter() {
	p.depth++
	if p.depth > p.config.maxDepth {
		p.fail(diag.Depth(p.span(p.current()), p.config.maxDepth))
	}
}

func (p *parser) leave() {
	p.depth--
}
