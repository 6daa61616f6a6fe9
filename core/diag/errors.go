// Package diag holds the diagnostics shared by every stage of the Jasmine
// front-end: the span-tagged Error type and the caret trace renderer.
package diag

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an Error so callers can react without parsing messages.
type Kind int

const (
	KindInternal  Kind = iota // not produced by the front-end
	KindSyntax                // source text does not match the grammar
	KindConstruct             // grammatical text that cannot be built into a value or node
	KindDepth                 // maximum nesting depth exceeded
	KindNarrow                // a node or value is not the variant the caller asked for
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax error"
	case KindConstruct:
		return "construction error"
	case KindDepth:
		return "depth error"
	case KindNarrow:
		return "narrowing error"
	default:
		return "internal error"
	}
}

// Span is a half-open byte range [Start, End) into one source unit.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Error is a front-end failure.
//
// Syntax, construction and depth errors always carry the Span of the offending
// text and the SourceID of the unit it came from, so a host holding several
// units can render the right one. Narrowing errors carry no span.
//
// To create an error at a span:
//
//	diag.Constructf(span, "Not a valid date, %s", text)
//
// To attach the operation that failed and a cause:
//
//	diag.NewError(
//	    diag.WithKind(diag.KindConstruct),
//	    diag.WithOp("parser.series"),
//	    diag.WithErr(err),
//	)
type Error struct {
	Kind       Kind
	Msg        string
	Span       Span
	SourceID   int
	Suggestion string
	Op         string
	Err        error
}

// NewError returns an instance of an error.
func NewError(options ...func(*Error)) *Error {
	err := &Error{}
	for _, o := range options {
		o(err)
	}
	return err
}

// WithKind sets the kind on the error.
func WithKind(kind Kind) func(*Error) {
	return func(e *Error) { e.Kind = kind }
}

// WithMsg sets the message on the error.
func WithMsg(msg string) func(*Error) {
	return func(e *Error) { e.Msg = msg }
}

// WithSpan sets the byte span on the error.
func WithSpan(span Span) func(*Error) {
	return func(e *Error) { e.Span = span }
}

// WithSourceID sets the source unit id on the error.
func WithSourceID(id int) func(*Error) {
	return func(e *Error) { e.SourceID = id }
}

// WithSuggestion sets a "did you mean" hint on the error.
func WithSuggestion(s string) func(*Error) {
	return func(e *Error) { e.Suggestion = s }
}

// WithOp sets the operation on the error.
func WithOp(op string) func(*Error) {
	return func(e *Error) { e.Op = op }
}

// WithErr sets the wrapped cause on the error.
func WithErr(err error) func(*Error) {
	return func(e *Error) { e.Err = err }
}

// Syntaxf returns a syntax error at span.
func Syntaxf(span Span, format string, args ...interface{}) *Error {
	return &Error{Kind: KindSyntax, Span: span, Msg: fmt.Sprintf(format, args...)}
}

// Constructf returns a construction error at span.
func Constructf(span Span, format string, args ...interface{}) *Error {
	return &Error{Kind: KindConstruct, Span: span, Msg: fmt.Sprintf(format, args...)}
}

// Depth returns the error raised when nesting exceeds limit at span.
func Depth(span Span, limit int) *Error {
	return &Error{
		Kind: KindDepth,
		Span: span,
		Msg:  fmt.Sprintf("exceeded maximum nesting depth of %d", limit),
	}
}

// Narrow returns the error for a failed narrowing of a from-variant to what.
func Narrow(what, from string) *Error {
	return &Error{Kind: KindNarrow, Msg: fmt.Sprintf("failed to refer %s from %s", what, from)}
}

// Error implements the error interface by writing out the recursive messages.
func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		var b strings.Builder
		b.WriteString(e.Msg)
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
		return b.String()
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	}
	return fmt.Sprintf("<%s>", e.Kind)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.Err }

// Render formats the error with a caret trace into source.
// path is printed in front of the row and column and may be empty.
func (e *Error) Render(source, path string) string {
	offset := e.Span.Start
	if offset > len(source) {
		offset = len(source)
	}
	msg := e.Error()
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return Trace(source, path, offset, msg)
}

// KindOf returns the kind of the first *Error in err's chain,
// or KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind
	}
	return KindInternal
}

// IsParse reports whether err is a parse failure, that is a syntax,
// construction or depth error. Hosts map these to their parse exception.
func IsParse(err error) bool {
	switch KindOf(err) {
	case KindSyntax, KindConstruct, KindDepth:
		return true
	}
	return false
}

// SpanOf returns the span of the first *Error in err's chain.
func SpanOf(err error) (Span, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil && e.Kind != KindNarrow {
		return e.Span, true
	}
	return Span{}, false
}
