// Package ast defines the typed tree produced by the Jasmine parser.
//
// Every node owns its children; nothing is shared and nothing points back up
// the tree. Nodes are built once per parse and never mutated afterwards.
// Offsets (Start) are byte offsets into the source unit identified by
// SourceID.
package ast

import (
	"github.com/jasmine-lang/jasmine/core/diag"
	"github.com/jasmine-lang/jasmine/core/j"
)

// Node is any AST node. The interface is sealed.
type Node interface {
	isNode()
}

// Type enumerates node variants with the codes exposed to hosts.
type Type uint8

const (
	TypeJ Type = iota
	TypeFn
	TypeUnaryOp
	TypeBinOp
	TypeAssign
	TypeIndexAssign
	TypeOp
	TypeId
	TypeCall
	TypeIf
	TypeWhile
	TypeTry
	TypeReturn
	TypeRaise
	TypeDataframe
	TypeMatrix
	TypeDict
	TypeList
	TypeSeries
	TypeSql
	_ // code 20 belongs to bracketed SQL in older hosts
	TypeSkip
)

var typeNames = map[Type]string{
	TypeJ:           "J",
	TypeFn:          "Fn",
	TypeUnaryOp:     "UnaryOp",
	TypeBinOp:       "BinOp",
	TypeAssign:      "Assign",
	TypeIndexAssign: "IndexAssign",
	TypeOp:          "Op",
	TypeId:          "Id",
	TypeCall:        "Call",
	TypeIf:          "If",
	TypeWhile:       "While",
	TypeTry:         "Try",
	TypeReturn:      "Return",
	TypeRaise:       "Raise",
	TypeDataframe:   "Dataframe",
	TypeMatrix:      "Matrix",
	TypeDict:        "Dict",
	TypeList:        "List",
	TypeSeries:      "SeriesExp",
	TypeSql:         "Sql",
	TypeSkip:        "Skip",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// J is a constant value.
type J struct {
	Value j.J
}

// Fn is a function literal.
type Fn struct {
	Stmts    []Node
	ArgNames []string
	// Args holds runtime bindings; the parser always leaves it empty.
	Args     []Node
	Body     string // verbatim source text of the literal
	Start    int
	SourceID int
}

// UnaryOp applies Op to Exp, e.g. `sum x`.
type UnaryOp struct {
	Op  Node
	Exp Node
}

// BinOp applies Op to Lhs and Rhs.
type BinOp struct {
	Op  Node
	Lhs Node
	Rhs Node
}

// Assign binds Exp to Name.
type Assign struct {
	Name string
	Exp  Node
}

// IndexAssign assigns Exp into Name at Indices, e.g. `x(1, 2) = 3`.
type IndexAssign struct {
	Name    string
	Indices []Node
	Exp     Node
}

// Op is an operator symbol such as + or #.
type Op struct {
	Name     string
	Start    int
	SourceID int
}

// Id is an identifier reference.
type Id struct {
	Name     string
	Start    int
	SourceID int
}

// Call is a call with explicit arguments, e.g. `f(1, , 3)`.
type Call struct {
	F        Node
	Args     []Node
	Start    int
	SourceID int
}

// If runs Stmts when Cond holds.
type If struct {
	Cond  Node
	Stmts []Node
}

// While runs Stmts as long as Cond holds.
type While struct {
	Cond  Node
	Stmts []Node
}

// Try runs Tries and on failure binds the error to CatchID and runs Catches.
type Try struct {
	Tries   []Node
	CatchID string
	Catches []Node
}

// Return leaves the enclosing function with Exp.
type Return struct {
	Exp Node
}

// Raise raises Exp as an error.
type Raise struct {
	Exp Node
}

// Dataframe is a dataframe literal with at least one non-constant column.
// Each entry is a *SeriesExp or a *J holding a named series.
type Dataframe struct {
	Exps []Node
}

// Matrix is a matrix literal with at least one non-constant column.
type Matrix struct {
	Exps []Node
}

// Dict is a dict literal.
type Dict struct {
	Keys   []string
	Values []Node
}

// List is a list literal.
type List struct {
	Exps []Node
}

// SeriesExp is a named column whose value is computed at runtime.
type SeriesExp struct {
	Name string
	Exp  Node
}

// Sql is a query. Op is "select", "update" or "delete". Take is nil when the
// query has no limit.
type Sql struct {
	Op       string
	From     Node
	Filters  []Node
	Groups   []Node
	Ops      []Node
	Sorts    []Node
	Take     Node
	Start    int
	SourceID int
}

// Skip stands for an omitted argument.
type Skip struct{}

func (*J) isNode()           {}
func (*Fn) isNode()          {}
func (*UnaryOp) isNode()     {}
func (*BinOp) isNode()       {}
func (*Assign) isNode()      {}
func (*IndexAssign) isNode() {}
func (*Op) isNode()          {}
func (*Id) isNode()          {}
func (*Call) isNode()        {}
func (*If) isNode()          {}
func (*While) isNode()       {}
func (*Try) isNode()         {}
func (*Return) isNode()      {}
func (*Raise) isNode()       {}
func (*Dataframe) isNode()   {}
func (*Matrix) isNode()      {}
func (*Dict) isNode()        {}
func (*List) isNode()        {}
func (*SeriesExp) isNode()   {}
func (*Sql) isNode()         {}
func (*Skip) isNode()        {}

// Equal lets go-cmp compare constant nodes by value.
func (n *J) Equal(o *J) bool {
	if n == nil || o == nil {
		return n == o
	}
	return j.Equal(n.Value, o.Value)
}

// Kind returns the variant of n.
func Kind(n Node) Type {
	switch n.(type) {
	case *J:
		return TypeJ
	case *Fn:
		return TypeFn
	case *UnaryOp:
		return TypeUnaryOp
	case *BinOp:
		return TypeBinOp
	case *Assign:
		return TypeAssign
	case *IndexAssign:
		return TypeIndexAssign
	case *Op:
		return TypeOp
	case *Id:
		return TypeId
	case *Call:
		return TypeCall
	case *If:
		return TypeIf
	case *While:
		return TypeWhile
	case *Try:
		return TypeTry
	case *Return:
		return TypeReturn
	case *Raise:
		return TypeRaise
	case *Dataframe:
		return TypeDataframe
	case *Matrix:
		return TypeMatrix
	case *Dict:
		return TypeDict
	case *List:
		return TypeList
	case *SeriesExp:
		return TypeSeries
	case *Sql:
		return TypeSql
	default:
		return TypeSkip
	}
}

// narrow returns n as a T or a narrowing error naming what and n's kind.
func narrow[T Node](n Node, what string) (T, error) {
	v, ok := n.(T)
	if !ok {
		var zero T
		return zero, diag.Narrow(what, Kind(n).String())
	}
	return v, nil
}

// AsJ narrows n to a constant.
func AsJ(n Node) (*J, error) { return narrow[*J](n, "ast j") }

// AsFn narrows n to a function literal.
func AsFn(n Node) (*Fn, error) { return narrow[*Fn](n, "ast fn") }

// AsId narrows n to an identifier.
func AsId(n Node) (*Id, error) { return narrow[*Id](n, "ast id") }

// AsOp narrows n to an operator.
func AsOp(n Node) (*Op, error) { return narrow[*Op](n, "ast op") }

// AsCall narrows n to a call.
func AsCall(n Node) (*Call, error) { return narrow[*Call](n, "ast call") }

// AsAssign narrows n to an assignment.
func AsAssign(n Node) (*Assign, error) { return narrow[*Assign](n, "ast assign") }

// AsSql narrows n to a query.
func AsSql(n Node) (*Sql, error) { return narrow[*Sql](n, "ast sql") }

// AsSeriesExp narrows n to a deferred column.
func AsSeriesExp(n Node) (*SeriesExp, error) { return narrow[*SeriesExp](n, "ast series") }

// Value returns the constant held by n, if n is a *J.
func Value(n Node) (j.J, bool) {
	if c, ok := n.(*J); ok {
		return c.Value, true
	}
	return nil, false
}
