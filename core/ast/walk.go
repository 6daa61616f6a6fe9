package ast

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result of Visit is not nil, Walk visits each of the children.
type Visitor interface {
	Visit(Node) Visitor
}

// Walk traverses the tree in depth-first order, calling v.Visit for each node
// until completion or v.Visit returns nil.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}
	for _, c := range Children(n) {
		Walk(v, c)
	}
}

// Inspect calls fn for each node in depth-first order. Children are skipped
// when fn returns false.
func Inspect(n Node, fn func(Node) bool) {
	Walk(inspector(fn), n)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Fn:
		return n.Stmts
	case *UnaryOp:
		return []Node{n.Op, n.Exp}
	case *BinOp:
		return []Node{n.Lhs, n.Op, n.Rhs}
	case *Assign:
		return []Node{n.Exp}
	case *IndexAssign:
		return append(append([]Node(nil), n.Indices...), n.Exp)
	case *Call:
		return append([]Node{n.F}, n.Args...)
	case *If:
		return append([]Node{n.Cond}, n.Stmts...)
	case *While:
		return append([]Node{n.Cond}, n.Stmts...)
	case *Try:
		return append(append([]Node(nil), n.Tries...), n.Catches...)
	case *Return:
		return []Node{n.Exp}
	case *Raise:
		return []Node{n.Exp}
	case *Dataframe:
		return n.Exps
	case *Matrix:
		return n.Exps
	case *Dict:
		return n.Values
	case *List:
		return n.Exps
	case *SeriesExp:
		return []Node{n.Exp}
	case *Sql:
		out := []Node{n.From}
		out = append(out, n.Filters...)
		out = append(out, n.Groups...)
		out = append(out, n.Ops...)
		out = append(out, n.Sorts...)
		if n.Take != nil {
			out = append(out, n.Take)
		}
		return out
	default:
		return nil
	}
}
