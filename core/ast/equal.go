package ast

import (
	"slices"

	"github.com/jasmine-lang/jasmine/core/j"
)

// Equal reports structural equality of two trees. Constants compare with
// j.Equal; offsets and source ids take part in the comparison.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if Kind(a) != Kind(b) {
		return false
	}

	switch a := a.(type) {
	case *J:
		return j.Equal(a.Value, b.(*J).Value)
	case *Fn:
		b := b.(*Fn)
		return a.Body == b.Body && a.Start == b.Start && a.SourceID == b.SourceID &&
			slices.Equal(a.ArgNames, b.ArgNames) && equalAll(a.Stmts, b.Stmts) && equalAll(a.Args, b.Args)
	case *UnaryOp:
		b := b.(*UnaryOp)
		return Equal(a.Op, b.Op) && Equal(a.Exp, b.Exp)
	case *BinOp:
		b := b.(*BinOp)
		return Equal(a.Op, b.Op) && Equal(a.Lhs, b.Lhs) && Equal(a.Rhs, b.Rhs)
	case *Assign:
		b := b.(*Assign)
		return a.Name == b.Name && Equal(a.Exp, b.Exp)
	case *IndexAssign:
		b := b.(*IndexAssign)
		return a.Name == b.Name && equalAll(a.Indices, b.Indices) && Equal(a.Exp, b.Exp)
	case *Op:
		return *a == *b.(*Op)
	case *Id:
		return *a == *b.(*Id)
	case *Call:
		b := b.(*Call)
		return a.Start == b.Start && a.SourceID == b.SourceID && Equal(a.F, b.F) && equalAll(a.Args, b.Args)
	case *If:
		b := b.(*If)
		return Equal(a.Cond, b.Cond) && equalAll(a.Stmts, b.Stmts)
	case *While:
		b := b.(*While)
		return Equal(a.Cond, b.Cond) && equalAll(a.Stmts, b.Stmts)
	case *Try:
		b := b.(*Try)
		return a.CatchID == b.CatchID && equalAll(a.Tries, b.Tries) && equalAll(a.Catches, b.Catches)
	case *Return:
		return Equal(a.Exp, b.(*Return).Exp)
	case *Raise:
		return Equal(a.Exp, b.(*Raise).Exp)
	case *Dataframe:
		return equalAll(a.Exps, b.(*Dataframe).Exps)
	case *Matrix:
		return equalAll(a.Exps, b.(*Matrix).Exps)
	case *Dict:
		b := b.(*Dict)
		return slices.Equal(a.Keys, b.Keys) && equalAll(a.Values, b.Values)
	case *List:
		return equalAll(a.Exps, b.(*List).Exps)
	case *SeriesExp:
		b := b.(*SeriesExp)
		return a.Name == b.Name && Equal(a.Exp, b.Exp)
	case *Sql:
		b := b.(*Sql)
		return a.Op == b.Op && a.Start == b.Start && a.SourceID == b.SourceID &&
			Equal(a.From, b.From) && Equal(a.Take, b.Take) &&
			equalAll(a.Filters, b.Filters) && equalAll(a.Groups, b.Groups) &&
			equalAll(a.Ops, b.Ops) && equalAll(a.Sorts, b.Sorts)
	case *Skip:
		return true
	}
	return false
}

func equalAll(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
