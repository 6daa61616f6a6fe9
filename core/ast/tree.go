package ast

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/jasmine-lang/jasmine/core/j"
)

// Tree renders nodes as an indented tree, one root branch per statement.
func Tree(nodes []Node) string {
	root := treeprint.New()
	for _, n := range nodes {
		addTree(root, "", n)
	}
	return root.String()
}

// Label returns the one-line description of n used by Tree.
func Label(n Node) string {
	switch n := n.(type) {
	case *J:
		return fmt.Sprintf("J %s %s", j.TypeName(n.Value), j.Format(n.Value))
	case *Fn:
		return fmt.Sprintf("Fn(%s)", strings.Join(n.ArgNames, ", "))
	case *Assign:
		return "Assign " + n.Name
	case *IndexAssign:
		return "IndexAssign " + n.Name
	case *Op:
		return "Op " + n.Name
	case *Id:
		return "Id " + n.Name
	case *Try:
		return fmt.Sprintf("Try catch(%s)", n.CatchID)
	case *SeriesExp:
		return "SeriesExp " + n.Name
	case *Sql:
		return "Sql " + n.Op
	default:
		return Kind(n).String()
	}
}

func addTree(t treeprint.Tree, meta string, n Node) {
	label := Label(n)
	if meta != "" {
		label = meta + ": " + label
	}

	switch n := n.(type) {
	case *Sql:
		b := t.AddBranch(label)
		addTree(b, "from", n.From)
		addClause(b, "filter", n.Filters)
		addClause(b, "group", n.Groups)
		addClause(b, "ops", n.Ops)
		addClause(b, "sort", n.Sorts)
		if n.Take != nil {
			addTree(b, "take", n.Take)
		}
	case *Dict:
		b := t.AddBranch(label)
		for i, k := range n.Keys {
			addTree(b, k, n.Values[i])
		}
	case *Try:
		b := t.AddBranch(label)
		addClause(b, "try", n.Tries)
		addClause(b, "catch", n.Catches)
	default:
		children := Children(n)
		if len(children) == 0 {
			t.AddNode(label)
			return
		}
		b := t.AddBranch(label)
		for _, c := range children {
			addTree(b, "", c)
		}
	}
}

func addClause(t treeprint.Tree, name string, nodes []Node) {
	if len(nodes) == 0 {
		return
	}
	b := t.AddBranch(name)
	for _, n := range nodes {
		addTree(b, "", n)
	}
}

// ToMap encodes n as nested maps and slices suitable for YAML or JSON output.
func ToMap(n Node) map[string]any {
	if n == nil {
		return nil
	}
	m := map[string]any{"type": Kind(n).String()}

	switch n := n.(type) {
	case *J:
		m["jtype"] = j.TypeName(n.Value)
		m["value"] = j.Format(n.Value)
	case *Fn:
		m["args"] = n.ArgNames
		m["body"] = n.Body
		m["stmts"] = toMaps(n.Stmts)
		m["start"] = n.Start
		m["source_id"] = n.SourceID
	case *UnaryOp:
		m["op"] = ToMap(n.Op)
		m["exp"] = ToMap(n.Exp)
	case *BinOp:
		m["op"] = ToMap(n.Op)
		m["lhs"] = ToMap(n.Lhs)
		m["rhs"] = ToMap(n.Rhs)
	case *Assign:
		m["name"] = n.Name
		m["exp"] = ToMap(n.Exp)
	case *IndexAssign:
		m["name"] = n.Name
		m["indices"] = toMaps(n.Indices)
		m["exp"] = ToMap(n.Exp)
	case *Op:
		m["name"] = n.Name
		m["start"] = n.Start
		m["source_id"] = n.SourceID
	case *Id:
		m["name"] = n.Name
		m["start"] = n.Start
		m["source_id"] = n.SourceID
	case *Call:
		m["f"] = ToMap(n.F)
		m["args"] = toMaps(n.Args)
		m["start"] = n.Start
		m["source_id"] = n.SourceID
	case *If:
		m["cond"] = ToMap(n.Cond)
		m["stmts"] = toMaps(n.Stmts)
	case *While:
		m["cond"] = ToMap(n.Cond)
		m["stmts"] = toMaps(n.Stmts)
	case *Try:
		m["tries"] = toMaps(n.Tries)
		m["catch_id"] = n.CatchID
		m["catches"] = toMaps(n.Catches)
	case *Return:
		m["exp"] = ToMap(n.Exp)
	case *Raise:
		m["exp"] = ToMap(n.Exp)
	case *Dataframe:
		m["exps"] = toMaps(n.Exps)
	case *Matrix:
		m["exps"] = toMaps(n.Exps)
	case *Dict:
		m["keys"] = n.Keys
		m["values"] = toMaps(n.Values)
	case *List:
		m["exps"] = toMaps(n.Exps)
	case *SeriesExp:
		m["name"] = n.Name
		m["exp"] = ToMap(n.Exp)
	case *Sql:
		m["op"] = n.Op
		m["from"] = ToMap(n.From)
		m["filters"] = toMaps(n.Filters)
		m["groups"] = toMaps(n.Groups)
		m["ops"] = toMaps(n.Ops)
		m["sorts"] = toMaps(n.Sorts)
		if n.Take != nil {
			m["take"] = ToMap(n.Take)
		}
		m["start"] = n.Start
		m["source_id"] = n.SourceID
	}
	return m
}

func toMaps(nodes []Node) []map[string]any {
	out := make([]map[string]any, len(nodes))
	for i, n := range nodes {
		out[i] = ToMap(n)
	}
	return out
}
