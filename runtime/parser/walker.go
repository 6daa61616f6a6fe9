package parser

import (
	"go.uber.org/zap"

	"github.com/jasmine-lang/jasmine/core/ast"
	"github.com/jasmine-lang/jasmine/core/diag"
	"github.com/jasmine-lang/jasmine/core/invariant"
	"github.com/jasmine-lang/jasmine/runtime/syntax"
)

// walker builds AST nodes from grammar pairs of one source unit
type walker struct {
	source   string
	sourceID int
	maxDepth int
	depth    int
	log      *zap.Logger
}

// exp builds the node for any expression pair
func (w *walker) exp(p *syntax.Pair) (ast.Node, error) {
	switch p.Rule {
	case syntax.RuleExp, syntax.RuleBinarySqlExp, syntax.RuleUnarySqlExp:
		if err := w.enter(p); err != nil {
			return nil, err
		}
		defer w.leave()
	}

	switch p.Rule {
	case syntax.RuleExp, syntax.RuleBracketExp, syntax.RuleBracketSqlExp:
		invariant.Invariant(len(p.Inner) == 1, "%s must wrap one expression, has %d", p.Rule, len(p.Inner))
		return w.exp(p.Inner[0])

	case syntax.RuleUnaryExp, syntax.RuleUnarySqlExp:
		return w.unary(p)

	case syntax.RuleBinaryExp, syntax.RuleBinarySqlExp:
		return w.binary(p)

	case syntax.RuleAssignmentExp:
		return w.assignment(p)

	case syntax.RuleId, syntax.RuleGlobalId:
		return w.id(p), nil

	case syntax.RuleFn:
		return w.fn(p)

	case syntax.RuleFnCall:
		return w.call(p)

	case syntax.RuleIfExp:
		cond, stmts, err := w.conditional(p)
		if err != nil {
			return nil, err
		}
		return &ast.If{Cond: cond, Stmts: stmts}, nil

	case syntax.RuleWhileExp:
		cond, stmts, err := w.conditional(p)
		if err != nil {
			return nil, err
		}
		return &ast.While{Cond: cond, Stmts: stmts}, nil

	case syntax.RuleTryExp:
		return w.try(p)

	case syntax.RuleReturnExp:
		exp, err := w.exp(p.Inner[0])
		if err != nil {
			return nil, err
		}
		return &ast.Return{Exp: exp}, nil

	case syntax.RuleRaiseExp:
		exp, err := w.exp(p.Inner[0])
		if err != nil {
			return nil, err
		}
		return &ast.Raise{Exp: exp}, nil

	case syntax.RuleSeries:
		return w.series(p)

	case syntax.RuleDataframe:
		return w.dataframe(p)

	case syntax.RuleMatrix:
		return w.matrix(p)

	case syntax.RuleList:
		return w.list(p)

	case syntax.RuleDict:
		return w.dict(p)

	case syntax.RuleSqlExp:
		return w.sql(p)

	case syntax.RuleSyms:
		return w.syms(p), nil
	}

	if p.Rule.IsScalar() {
		return w.scalar(p)
	}
	return nil, w.errorf(p.Span, "unexpected %s expression", p.Rule)
}

// unary builds `f x`: the left term applied to everything on its right
func (w *walker) unary(p *syntax.Pair) (ast.Node, error) {
	op, err := w.exp(p.Inner[0])
	if err != nil {
		return nil, err
	}
	exp, err := w.exp(p.Inner[1])
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOp{Op: op, Exp: exp}, nil
}

// binary builds `lhs op rhs`
func (w *walker) binary(p *syntax.Pair) (ast.Node, error) {
	lhs, err := w.exp(p.Inner[0])
	if err != nil {
		return nil, err
	}
	rhs, err := w.exp(p.Inner[2])
	if err != nil {
		return nil, err
	}
	return &ast.BinOp{Op: w.op(p.Inner[1]), Lhs: lhs, Rhs: rhs}, nil
}

// assignment builds `x = exp`, or an index assignment for `x(i, j) = exp`
func (w *walker) assignment(p *syntax.Pair) (ast.Node, error) {
	target := p.Inner[0]
	exp, err := w.exp(p.Inner[1])
	if err != nil {
		return nil, err
	}

	if target.Rule != syntax.RuleFnCall {
		return &ast.Assign{Name: target.Text, Exp: exp}, nil
	}

	indices, err := w.args(target.Inner[1:])
	if err != nil {
		return nil, err
	}
	return &ast.IndexAssign{Name: target.Inner[0].Text, Indices: indices, Exp: exp}, nil
}

func (w *walker) id(p *syntax.Pair) *ast.Id {
	return &ast.Id{Name: p.Text, Start: p.Span.Start, SourceID: w.sourceID}
}

func (w *walker) op(p *syntax.Pair) *ast.Op {
	return &ast.Op{Name: p.Text, Start: p.Span.Start, SourceID: w.sourceID}
}

// fn builds a function literal; Body keeps its source text verbatim
func (w *walker) fn(p *syntax.Pair) (ast.Node, error) {
	params := p.Inner[0]
	invariant.Invariant(params.Rule == syntax.RuleParams, "fn must start with params, got %s", params.Rule)

	names := make([]string, 0, len(params.Inner))
	for _, id := range params.Inner {
		names = append(names, id.Text)
	}

	stmts, err := w.statements(p.Inner[1:], false)
	if err != nil {
		return nil, err
	}

	return &ast.Fn{
		Stmts:    stmts,
		ArgNames: names,
		Body:     p.Text,
		Start:    p.Span.Start,
		SourceID: w.sourceID,
	}, nil
}

// call builds `f(a, , b)`
func (w *walker) call(p *syntax.Pair) (ast.Node, error) {
	f, err := w.exp(p.Inner[0])
	if err != nil {
		return nil, err
	}
	args, err := w.args(p.Inner[1:])
	if err != nil {
		return nil, err
	}
	return &ast.Call{F: f, Args: args, Start: p.Span.Start, SourceID: w.sourceID}, nil
}

// args builds call arguments; an empty slot is a Skip
func (w *walker) args(pairs []*syntax.Pair) ([]ast.Node, error) {
	args := make([]ast.Node, 0, len(pairs))
	for _, arg := range pairs {
		inner := arg.Inner[0]
		if inner.Rule == syntax.RuleSkip {
			args = append(args, &ast.Skip{})
			continue
		}
		node, err := w.exp(inner)
		if err != nil {
			return nil, err
		}
		args = append(args, node)
	}
	return args, nil
}

// conditional builds the condition and body shared by if and while
func (w *walker) conditional(p *syntax.Pair) (ast.Node, []ast.Node, error) {
	cond, err := w.exp(p.Inner[0].Inner[0])
	if err != nil {
		return nil, nil, err
	}
	stmts, err := w.statements(p.Inner[1].Inner, true)
	if err != nil {
		return nil, nil, err
	}
	return cond, stmts, nil
}

// try builds try {...} catch(name) {...}
func (w *walker) try(p *syntax.Pair) (ast.Node, error) {
	tries, err := w.statements(p.Inner[0].Inner, false)
	if err != nil {
		return nil, err
	}
	catches, err := w.statements(p.Inner[2].Inner, false)
	if err != nil {
		return nil, err
	}
	return &ast.Try{Tries: tries, CatchID: p.Inner[1].Text, Catches: catches}, nil
}

// statements builds a body. With untilReturn, statements after the first
// return are dropped since they can never run.
func (w *walker) statements(pairs []*syntax.Pair, untilReturn bool) ([]ast.Node, error) {
	stmts := make([]ast.Node, 0, len(pairs))
	for i, pair := range pairs {
		node, err := w.exp(pair)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, node)
		if _, ok := node.(*ast.Return); ok && untilReturn {
			if dropped := len(pairs) - i - 1; dropped > 0 {
				w.log.Debug("dropped unreachable statements", zap.Int("count", dropped))
			}
			break
		}
	}
	return stmts, nil
}

// enter tracks nesting depth and fails once it exceeds the limit
func (w *walker) enter(p *syntax.Pair) error {
	w.depth++
	if w.depth > w.maxDepth {
		err := diag.Depth(p.Span, w.maxDepth)
		err.Op = "parser.Parse"
		return err
	}
	return nil
}

func (w *walker) leave() {
	w.depth--
}

// errorf returns a construction error at span
func (w *walker) errorf(span diag.Span, format string, args ...interface{}) *diag.Error {
	err := diag.Constructf(span, format, args...)
	err.Op = "parser.Parse"
	err.SourceID = w.sourceID
	return err
}

// wrap returns a construction error at span carrying cause's message
func (w *walker) wrap(span diag.Span, cause error) *diag.Error {
	return w.errorf(span, "%s", cause.Error())
}
