package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jasmine-lang/jasmine/core/invariant"
)

// Locate returns the 1-based row and column of offset in source, and the byte
// offset where that row starts. "\r\n" counts as a single line break and
// columns count Unicode scalar values.
func Locate(source string, offset int) (row, col, lineStart int) {
	invariant.InRange(offset, 0, len(source), "offset")

	row, col = 1, 1
	for i := 0; i < offset; {
		switch c := source[i]; {
		case c == '\r' && i+1 < len(source) && source[i+1] == '\n':
			i += 2
			row++
			col = 1
			lineStart = i
		case c == '\n':
			i++
			row++
			col = 1
			lineStart = i
		default:
			_, size := utf8.DecodeRuneInString(source[i:])
			i += size
			col++
		}
	}
	return row, col, lineStart
}

// Trace renders msg against the line of source containing offset:
//
//	--> {path}{row}:{col}
//
//	{line}
//	{col-1 spaces}^
//
//	= {msg}
//
// An offset past the end of source is a programmer error and panics.
func Trace(source, path string, offset int, msg string) string {
	row, col, start := Locate(source, offset)

	// an offset between '\r' and '\n' has already moved start to the next row
	from := max(offset, start)
	end := len(source)
	if i := strings.IndexAny(source[from:], "\r\n"); i >= 0 {
		end = from + i
	}

	return fmt.Sprintf("--> %s%d:%d\n\n%s\n%s^\n\n= %s",
		path, row, col, source[start:end], strings.Repeat(" ", col-1), msg)
}
