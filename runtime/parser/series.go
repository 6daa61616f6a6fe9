package parser

import (
	"go.uber.org/zap"

	"github.com/jasmine-lang/jasmine/core/ast"
	"github.com/jasmine-lang/jasmine/core/j"
	"github.com/jasmine-lang/jasmine/runtime/classify"
	"github.com/jasmine-lang/jasmine/runtime/syntax"
)

// scalarClasses maps scalar rules to the class that parses them. Integer
// and decimal literals pick their width from the suffix instead.
var scalarClasses = map[syntax.Rule]classify.Class{
	syntax.RuleBoolean:   classify.Bool,
	syntax.RuleDate:      classify.Date,
	syntax.RuleTime:      classify.Time,
	syntax.RuleDatetime:  classify.Datetime,
	syntax.RuleTimestamp: classify.Timestamp,
	syntax.RuleDuration:  classify.Duration,
	syntax.RuleEnum:      classify.Symbol,
	syntax.RuleString:    classify.String,
	syntax.RuleNone:      classify.None,
}

// scalar builds a constant from a single literal
func (w *walker) scalar(p *syntax.Pair) (ast.Node, error) {
	class, ok := scalarClasses[p.Rule]
	if !ok {
		class = classify.Classify(p.Text)
	}
	v, err := class.Parse(p.Text)
	if err != nil {
		return nil, w.wrap(p.Span, err)
	}
	return &ast.J{Value: v}, nil
}

// syms builds the symbol series spelled `a`b`c
func (w *walker) syms(p *syntax.Pair) ast.Node {
	names := classify.SplitSymbols(p.Text)
	values := make([]j.J, len(names))
	for i, name := range names {
		values[i] = j.Symbol(name)
	}
	return &ast.J{Value: j.NewSeries("", j.DTypeSym, values...)}
}

// series builds a constant series. The first non-null element decides the
// element type and every element is parsed as that type; an element that
// does not fit fails at its own span. A first element no rule recognises
// yields an all-null series of the same length.
func (w *walker) series(p *syntax.Pair) (ast.Node, error) {
	class := classify.None
	for _, elem := range p.Inner {
		if !classify.IsNull(elem.Text) {
			class = classify.Classify(elem.Text)
			break
		}
	}

	w.log.Debug("classified series",
		zap.Stringer("class", class),
		zap.Int("len", len(p.Inner)),
		zap.Int("offset", p.Span.Start))

	if class == classify.None || class == classify.Unknown {
		return &ast.J{Value: j.NullSeries("", len(p.Inner))}, nil
	}

	b := j.NewSeriesBuilder(class.DType(), len(p.Inner))
	for _, elem := range p.Inner {
		v, err := class.Parse(elem.Text)
		if err != nil {
			return nil, w.wrap(elem.Span, err)
		}
		b.Append(v)
	}
	return &ast.J{Value: b.Finish("")}, nil
}
