package syntax

import (
	"strings"

	"github.com/jasmine-lang/jasmine/core/diag"
	"github.com/jasmine-lang/jasmine/core/invariant"
	"github.com/jasmine-lang/jasmine/runtime/lexer"
)

// Tree is the raw result of a successful parse: the token stream and the
// flat event list the grammar produced. Pairs folds the events into nodes.
type Tree struct {
	Source string
	Tokens []lexer.Token
	Events []Event
}

// Event represents a parse tree construction event
type Event struct {
	Kind EventKind
	Data uint32 // rule for Open and Close, token index for Token
	Tok  uint32 // token index current when a node opened; places empty nodes
}

// EventKind represents the type of parse event
type EventKind uint8

const (
	EventOpen  EventKind = iota // Open syntax node
	EventClose                  // Close syntax node
	EventToken                  // Consume token
)

// Pair is a syntax node: a rule tag, the byte span it matched and its
// children. Tokens that carry no rule of their own (keywords, punctuation)
// only widen the span of the enclosing node.
type Pair struct {
	Rule  Rule
	Span  diag.Span
	Text  string
	Inner []*Pair
}

// Pairs folds the event list into top-level nodes: one Exp per statement
// followed by a single EOI.
func (t *Tree) Pairs() []*Pair {
	type frame struct {
		pair  *Pair
		open  int
		empty bool
	}

	var (
		roots []*Pair
		stack []frame
	)
	for _, evt := range t.Events {
		switch evt.Kind {
		case EventOpen:
			stack = append(stack, frame{pair: &Pair{Rule: Rule(evt.Data)}, open: int(evt.Tok), empty: true})

		case EventToken:
			invariant.Invariant(len(stack) > 0, "token event outside of a node")
			tok := t.Tokens[evt.Data]
			widen(&stack[len(stack)-1].pair.Span, &stack[len(stack)-1].empty, diag.Span{Start: tok.Start, End: tok.End})

		case EventClose:
			invariant.Invariant(len(stack) > 0, "unbalanced close event")
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			invariant.Invariant(top.pair.Rule == Rule(evt.Data), "close %s does not match open %s", Rule(evt.Data), top.pair.Rule)

			if top.empty {
				at := len(t.Source)
				if top.open < len(t.Tokens) {
					at = t.Tokens[top.open].Start
				}
				top.pair.Span = diag.Span{Start: at, End: at}
			}
			top.pair.Text = t.Source[top.pair.Span.Start:top.pair.Span.End]

			if len(stack) == 0 {
				roots = append(roots, top.pair)
				continue
			}
			parent := &stack[len(stack)-1]
			parent.pair.Inner = append(parent.pair.Inner, top.pair)
			if !top.empty {
				widen(&parent.pair.Span, &parent.empty, top.pair.Span)
			}
		}
	}
	invariant.Invariant(len(stack) == 0, "%d unclosed nodes", len(stack))
	return roots
}

func widen(span *diag.Span, empty *bool, by diag.Span) {
	if *empty {
		*span = by
		*empty = false
		return
	}
	if by.Start < span.Start {
		span.Start = by.Start
	}
	if by.End > span.End {
		span.End = by.End
	}
}

// Format renders pairs one per line in the compact arrow notation used by
// tests: a node with a single child continues on the same line, siblings
// go on their own indented lines.
func Format(pairs []*Pair) string {
	var b strings.Builder
	for _, p := range pairs {
		formatPair(&b, p, 0)
	}
	return b.String()
}

func formatPair(b *strings.Builder, p *Pair, indent int) {
	b.WriteString(p.Rule.String())
	switch len(p.Inner) {
	case 0:
		b.WriteByte('\n')
	case 1:
		b.WriteString(" -> ")
		formatPair(b, p.Inner[0], indent+1)
	default:
		b.WriteByte('\n')
		for _, c := range p.Inner {
			b.WriteString(strings.Repeat("  ", indent))
			b.WriteString(" -> ")
			formatPair(b, c, indent+1)
		}
	}
}
