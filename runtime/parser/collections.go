package parser

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jasmine-lang/jasmine/core/ast"
	"github.com/jasmine-lang/jasmine/core/diag"
	"github.com/jasmine-lang/jasmine/core/j"
	"github.com/jasmine-lang/jasmine/runtime/classify"
	"github.com/jasmine-lang/jasmine/runtime/syntax"
)

// column is one resolved dataframe or matrix column. Exactly one of series
// and exp is set: series when the column folded to a constant.
type column struct {
	name   string
	series *j.Series
	exp    ast.Node
	span   diag.Span
}

// columns resolves every column of a dataframe or matrix literal and
// reports whether all of them are constant. Unnamed columns are called
// col00, col01, ... by position; a bare identifier keeps its own name.
func (w *walker) columns(p *syntax.Pair) ([]column, bool, error) {
	cols := make([]column, 0, len(p.Inner))
	constant := true

	for i, seriesExp := range p.Inner {
		value := seriesExp.Inner[0]
		name := fmt.Sprintf("col%02d", i)
		named := false
		if value.Rule == syntax.RuleRenameSeriesExp {
			name = value.Inner[0].Text
			value = value.Inner[1]
			named = true
		}

		node, err := w.exp(value)
		if err != nil {
			return nil, false, err
		}

		col := column{name: name, span: value.Span}
		switch n := node.(type) {
		case *ast.J:
			s, err := j.IntoSeries(n.Value)
			if err != nil {
				return nil, false, w.wrap(value.Span, err)
			}
			col.series = s.Rename(name)
		case *ast.Id:
			if !named {
				col.name = n.Name
			}
			col.exp = n
			constant = false
		default:
			col.exp = node
			constant = false
		}
		cols = append(cols, col)
	}
	return cols, constant, nil
}

// entries lists columns for a deferred literal: constants as named series,
// the rest as SeriesExp nodes
func entries(cols []column) []ast.Node {
	nodes := make([]ast.Node, 0, len(cols))
	for _, c := range cols {
		if c.series != nil {
			nodes = append(nodes, &ast.J{Value: c.series})
		} else {
			nodes = append(nodes, &ast.SeriesExp{Name: c.name, Exp: c.exp})
		}
	}
	return nodes
}

func constantSeries(cols []column) []*j.Series {
	series := make([]*j.Series, len(cols))
	for i, c := range cols {
		series[i] = c.series
	}
	return series
}

// dataframe folds df[...] to a constant frame when every column is constant
func (w *walker) dataframe(p *syntax.Pair) (ast.Node, error) {
	cols, constant, err := w.columns(p)
	if err != nil {
		return nil, err
	}
	w.log.Debug("dataframe literal", zap.Int("columns", len(cols)), zap.Bool("folded", constant))

	if !constant {
		return &ast.Dataframe{Exps: entries(cols)}, nil
	}
	df, err := j.NewDataFrame(constantSeries(cols)...)
	if err != nil {
		return nil, w.wrap(p.Span, err)
	}
	return &ast.J{Value: df}, nil
}

// matrix folds x[...] to a constant matrix when every column is constant.
// Constant columns must be numeric or boolean.
func (w *walker) matrix(p *syntax.Pair) (ast.Node, error) {
	cols, constant, err := w.columns(p)
	if err != nil {
		return nil, err
	}
	for _, c := range cols {
		if c.series == nil {
			continue
		}
		if dtype := c.series.DType(); !dtype.IsNumeric() && !dtype.IsBool() {
			return nil, w.errorf(c.span, "Requires numeric data type, got '%s'", dtype)
		}
	}
	w.log.Debug("matrix literal", zap.Int("columns", len(cols)), zap.Bool("folded", constant))

	if !constant {
		return &ast.Matrix{Exps: entries(cols)}, nil
	}
	df, err := j.NewDataFrame(constantSeries(cols)...)
	if err != nil {
		return nil, w.wrap(p.Span, err)
	}
	m, err := df.ToMatrix()
	if err != nil {
		return nil, w.wrap(p.Span, err)
	}
	return &ast.J{Value: m}, nil
}

// list builds l[...]; a bare operator element is an Op
func (w *walker) list(p *syntax.Pair) (ast.Node, error) {
	exps := make([]ast.Node, 0, len(p.Inner))
	for _, item := range p.Inner {
		if item.Rule == syntax.RuleBinaryOp {
			exps = append(exps, w.op(item))
			continue
		}
		node, err := w.exp(item)
		if err != nil {
			return nil, err
		}
		exps = append(exps, node)
	}
	return &ast.List{Exps: exps}, nil
}

// dict builds {k: v, ...} and d[[keys...], [values...]]
func (w *walker) dict(p *syntax.Pair) (ast.Node, error) {
	d := &ast.Dict{}
	seen := make(map[string]bool)

	add := func(key string, span diag.Span, value ast.Node) error {
		if seen[key] {
			return w.errorf(span, "duplicate dict key '%s'", key)
		}
		seen[key] = true
		d.Keys = append(d.Keys, key)
		d.Values = append(d.Values, value)
		return nil
	}

	if len(p.Inner) == 2 && p.Inner[0].Rule == syntax.RuleKeys {
		keys, values := p.Inner[0].Inner, p.Inner[1].Inner
		if len(keys) != len(values) {
			return nil, w.errorf(p.Span, "dict has %d keys but %d values", len(keys), len(values))
		}
		for i, k := range keys {
			key, err := w.dictKey(k)
			if err != nil {
				return nil, err
			}
			value, err := w.exp(values[i])
			if err != nil {
				return nil, err
			}
			if err := add(key, k.Span, value); err != nil {
				return nil, err
			}
		}
		return d, nil
	}

	for _, kv := range p.Inner {
		k := kv.Inner[0]
		key := k.Text
		switch k.Rule {
		case syntax.RuleEnum:
			key = classify.TrimSymbol(k.Text)
		case syntax.RuleString:
			key = k.Text[1 : len(k.Text)-1]
		}
		value, err := w.exp(kv.Inner[1])
		if err != nil {
			return nil, err
		}
		if err := add(key, k.Span, value); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// dictKey resolves a key of the keys/values form: an identifier or a
// constant symbol or string
func (w *walker) dictKey(p *syntax.Pair) (string, error) {
	node, err := w.exp(p)
	if err != nil {
		return "", err
	}
	switch n := node.(type) {
	case *ast.Id:
		return n.Name, nil
	case *ast.J:
		switch v := n.Value.(type) {
		case j.Symbol:
			return string(v), nil
		case j.String:
			return string(v), nil
		}
		return "", w.errorf(p.Span, "dict key must be a symbol or string, got '%s'", j.TypeName(n.Value))
	}
	return "", w.errorf(p.Span, "dict key must be a symbol or string")
}
