package syntax

import (
	"github.com/jasmine-lang/jasmine/runtime/lexer"
)

// query parses the clauses of a query. Clauses may come in any order but
// each at most once, and only one of select, update and delete may appear.
// A missing from clause is left for the walker to report.
func (p *parser) query() {
	m := p.mark()
	seen := make(map[lexer.TokenType]bool)
	var (
		operation lexer.Token
		hasOp     bool
	)

	for p.current().Type.IsQueryKeyword() {
		tok := p.current()
		if seen[tok.Type] {
			p.fail(syntaxError(p.span(tok), "duplicate '%s' clause", tok.Text))
		}
		seen[tok.Type] = true

		switch tok.Type {
		case lexer.FROM:
			cm := p.mark()
			p.token()
			p.withSQL(false, func() { p.term() })
			p.wrap(cm, RuleFromExp)

		case lexer.FILTER:
			p.clause(RuleFilterExp, p.sqlExp)

		case lexer.GROUP:
			p.clause(RuleGroupExp, func() { p.seriesExp(p.sqlExp) })

		case lexer.SELECT, lexer.UPDATE, lexer.DELETE:
			if hasOp {
				p.fail(syntaxError(p.span(tok), "query already has a '%s' clause", operation.Text))
			}
			operation, hasOp = tok, true
			switch tok.Type {
			case lexer.SELECT:
				p.clause(RuleSelectOp, func() { p.seriesExp(p.sqlExp) })
			case lexer.UPDATE:
				p.clause(RuleUpdateOp, func() { p.seriesExp(p.sqlExp) })
			default:
				p.clause(RuleDeleteOp, func() { p.expectLeaf(lexer.IDENT, RuleSeriesName, "as column name") })
			}

		case lexer.SORT:
			p.clause(RuleSortOp, p.sortName)

		case lexer.TAKE:
			cm := p.mark()
			p.token()
			p.withSQL(false, p.exp)
			p.wrap(cm, RuleTakeOp)
		}
	}

	// fitler {...} reads better as a typo than as an unexpected identifier
	if tok := p.current(); tok.Type == lexer.IDENT && p.peek(1).Type == lexer.LBRACE {
		if suggestion := closestClause(tok.Text); suggestion != "" {
			err := syntaxError(p.span(tok), "unknown query clause '%s'", tok.Text)
			err.Suggestion = suggestion
			p.fail(err)
		}
	}

	p.wrap(m, RuleSqlExp)
}

// clause parses keyword { item, item, ... }
func (p *parser) clause(rule Rule, item func()) {
	m := p.mark()
	keyword := p.current().Text
	p.token()
	p.expect(lexer.LBRACE, "after '"+keyword+"'")
	p.withSQL(true, func() { p.commaList(lexer.RBRACE, item) })
	p.expect(lexer.RBRACE, "to close the '"+keyword+"' clause")
	p.wrap(m, rule)
}

// sortName parses col or -col into a single SortName leaf
func (p *parser) sortName() {
	m := p.mark()
	if p.at(lexer.OPERATOR) && p.current().Text == "-" {
		if next := p.peek(1); next.Type == lexer.IDENT && !next.HasSpaceBefore {
			p.token()
		}
	}
	if !p.at(lexer.IDENT) {
		p.errorUnexpected("a column name")
	}
	p.token()
	p.wrap(m, RuleSortName)
}
