package parser

import (
	"go.uber.org/zap"

	"github.com/jasmine-lang/jasmine/core/ast"
	"github.com/jasmine-lang/jasmine/runtime/syntax"
)

// queryOps names the query kind for each operation clause
var queryOps = map[syntax.Rule]string{
	syntax.RuleSelectOp: "select",
	syntax.RuleUpdateOp: "update",
	syntax.RuleDeleteOp: "delete",
}

// sql decomposes a query into its clauses. The grammar guarantees each
// clause appears at most once; from is checked here.
func (w *walker) sql(p *syntax.Pair) (ast.Node, error) {
	q := &ast.Sql{
		Op:       "select",
		Sorts:    []ast.Node{},
		Start:    p.Span.Start,
		SourceID: w.sourceID,
	}

	var err error
	for _, clause := range p.Inner {
		switch clause.Rule {
		case syntax.RuleFromExp:
			q.From, err = w.exp(clause.Inner[0])

		case syntax.RuleFilterExp:
			q.Filters, err = w.exps(clause.Inner)

		case syntax.RuleGroupExp:
			q.Groups, err = w.columnExps(clause.Inner)

		case syntax.RuleSelectOp, syntax.RuleUpdateOp:
			q.Op = queryOps[clause.Rule]
			q.Ops, err = w.columnExps(clause.Inner)

		case syntax.RuleDeleteOp:
			q.Op = queryOps[clause.Rule]
			q.Ops = w.ids(clause.Inner)

		case syntax.RuleSortOp:
			q.Sorts = w.ids(clause.Inner)

		case syntax.RuleTakeOp:
			q.Take, err = w.exp(clause.Inner[0])

		default:
			return nil, w.errorf(clause.Span, "unexpected %s in query", clause.Rule)
		}
		if err != nil {
			return nil, err
		}
	}

	if q.From == nil {
		return nil, w.errorf(p.Span, "query requires a 'from' clause")
	}

	w.log.Debug("query",
		zap.String("op", q.Op),
		zap.Int("filters", len(q.Filters)),
		zap.Int("groups", len(q.Groups)),
		zap.Int("ops", len(q.Ops)),
		zap.Int("sorts", len(q.Sorts)),
		zap.Bool("take", q.Take != nil))

	return q, nil
}

func (w *walker) exps(pairs []*syntax.Pair) ([]ast.Node, error) {
	nodes := make([]ast.Node, 0, len(pairs))
	for _, pair := range pairs {
		node, err := w.exp(pair)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// columnExps builds group and projection items: `name = exp` becomes a
// SeriesExp, anything else stays the plain expression
func (w *walker) columnExps(pairs []*syntax.Pair) ([]ast.Node, error) {
	nodes := make([]ast.Node, 0, len(pairs))
	for _, seriesExp := range pairs {
		value := seriesExp.Inner[0]
		if value.Rule != syntax.RuleRenameSeriesExp {
			node, err := w.exp(value)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
			continue
		}

		exp, err := w.exp(value.Inner[1])
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, &ast.SeriesExp{Name: value.Inner[0].Text, Exp: exp})
	}
	return nodes, nil
}

// ids builds column names of delete and sort; a descending sort keeps its
// leading minus in the name
func (w *walker) ids(pairs []*syntax.Pair) []ast.Node {
	nodes := make([]ast.Node, 0, len(pairs))
	for _, pair := range pairs {
		nodes = append(nodes, w.id(pair))
	}
	return nodes
}
