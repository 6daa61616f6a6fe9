// Package classify decides the element type of a series literal.
//
// Classification Rules
//
// The first element of a series literal is matched against an ordered table
// of anchored patterns. The first rule that matches wins, even when a later
// rule would be more specific:
//
//	 1  true|false|1b|0b                                   bool
//	 2  \d+u8                                              u8
//	 3  -?\d+i8                                            i8
//	 4  \d+u16                                             u16
//	 5  -?\d+i16                                           i16
//	 6  \d+u32                                             u32
//	 7  -?\d+i32                                           i32
//	 8  \d+u64                                             u64
//	 9  -?\d+(i64)?                                        i64
//	10  -?\d*\.?\d*f32                                     f32
//	11  -?\d*\.?\d*(f64)?                                  f64
//	12  \d{4}-\d{2}-\d{2}                                  date
//	13  \d{2}:\d{2}:\d{2}(\.\d{0,9})?                      time
//	14  \d{4}-\d{2}-\d{2}T(\d{2}:\d{2}:\d{2}(\.\d{0,9})?)?  datetime
//	15  \d{4}-\d{2}-\d{2}D(\d{2}:\d{2}:\d{2}(\.\d{0,9})?)?  timestamp
//	16  -?\d+D(\d{2}:\d{2}:\d{2}(\.\d{0,9})?)?             duration
//	17  -?\d+(ns|s|m|h)                                    duration
//	18  `\S*                                               sym
//	19  "[^"]*"                                            str
//	20  none                                               null
//
// Rules 9 and 11 never overlap because every pattern must match the whole
// lexeme. A lexeme no rule accepts is Unknown.
//
// Once a class is chosen, every element of the series goes through that
// class's Parse; an element that does not conform is an error for that
// element alone.
package classify

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jasmine-lang/jasmine/core/j"
	"github.com/jasmine-lang/jasmine/core/temporal"
)

// Class is the element type selected for a series literal
type Class int

const (
	Unknown Class = iota // no rule matched
	Bool
	U8
	I8
	U16
	I16
	U32
	I32
	U64
	I64
	F32
	F64
	Date
	Time
	Datetime
	Timestamp
	Duration
	Symbol
	String
	None
)

var classNames = [...]string{
	Unknown:   "unknown",
	Bool:      "bool",
	U8:        "u8",
	I8:        "i8",
	U16:       "u16",
	I16:       "i16",
	U32:       "u32",
	I32:       "i32",
	U64:       "u64",
	I64:       "i64",
	F32:       "f32",
	F64:       "f64",
	Date:      "date",
	Time:      "time",
	Datetime:  "datetime",
	Timestamp: "timestamp",
	Duration:  "duration",
	Symbol:    "sym",
	String:    "str",
	None:      "none",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

var dtypes = [...]j.DType{
	Unknown:   j.DTypeNull,
	Bool:      j.DTypeBool,
	U8:        j.DTypeU8,
	I8:        j.DTypeI8,
	U16:       j.DTypeU16,
	I16:       j.DTypeI16,
	U32:       j.DTypeU32,
	I32:       j.DTypeI32,
	U64:       j.DTypeU64,
	I64:       j.DTypeI64,
	F32:       j.DTypeF32,
	F64:       j.DTypeF64,
	Date:      j.DTypeDate,
	Time:      j.DTypeTime,
	Datetime:  j.DTypeDatetime,
	Timestamp: j.DTypeTimestamp,
	Duration:  j.DTypeDuration,
	Symbol:    j.DTypeSym,
	String:    j.DTypeStr,
	None:      j.DTypeNull,
}

// DType returns the series dtype built for c. Unknown and None build null
// series.
func (c Class) DType() j.DType {
	if c < 0 || int(c) >= len(dtypes) {
		return j.DTypeNull
	}
	return dtypes[c]
}

// Rule is one row of the classification table
type Rule struct {
	Class   Class
	Pattern string // unanchored source of the pattern
	re      *regexp.Regexp
}

// Match reports whether the whole lexeme matches the rule
func (r Rule) Match(lexeme string) bool {
	return r.re.MatchString(lexeme)
}

const clock = `\d{2}:\d{2}:\d{2}(\.\d{0,9})?`

var rules = compile([]Rule{
	{Class: Bool, Pattern: `true|false|1b|0b`},
	{Class: U8, Pattern: `\d+u8`},
	{Class: I8, Pattern: `-?\d+i8`},
	{Class: U16, Pattern: `\d+u16`},
	{Class: I16, Pattern: `-?\d+i16`},
	{Class: U32, Pattern: `\d+u32`},
	{Class: I32, Pattern: `-?\d+i32`},
	{Class: U64, Pattern: `\d+u64`},
	{Class: I64, Pattern: `-?\d+(i64)?`},
	{Class: F32, Pattern: `-?\d*\.?\d*f32`},
	{Class: F64, Pattern: `-?\d*\.?\d*(f64)?`},
	{Class: Date, Pattern: `\d{4}-\d{2}-\d{2}`},
	{Class: Time, Pattern: clock},
	{Class: Datetime, Pattern: `\d{4}-\d{2}-\d{2}T(` + clock + `)?`},
	{Class: Timestamp, Pattern: `\d{4}-\d{2}-\d{2}D(` + clock + `)?`},
	{Class: Duration, Pattern: `-?\d+D(` + clock + `)?`},
	{Class: Duration, Pattern: `-?\d+(ns|s|m|h)`},
	{Class: Symbol, Pattern: "`\\S*"},
	{Class: String, Pattern: `"[^"]*"`},
	{Class: None, Pattern: `none`},
})

func compile(table []Rule) []Rule {
	for i := range table {
		table[i].re = regexp.MustCompile(`^(?:` + table[i].Pattern + `)$`)
	}
	return table
}

// Rules returns the classification table in evaluation order
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// Classify returns the class of the first rule matching lexeme
func Classify(lexeme string) Class {
	if lexeme == "" {
		return None
	}
	for _, r := range rules {
		if r.Match(lexeme) {
			return r.Class
		}
	}
	return Unknown
}

// IsNull reports whether an element lexeme stands for a null slot
func IsNull(lexeme string) bool {
	return lexeme == "" || lexeme == "none"
}

// Parse converts one lexeme to a scalar of class c. Integers of every width
// come back as j.I64 and floats as j.F64, range checked for the width; the
// series builder narrows them.
func (c Class) Parse(lexeme string) (j.J, error) {
	if c != Unknown && IsNull(lexeme) {
		return j.None{}, nil
	}

	switch c {
	case Bool:
		switch lexeme {
		case "true", "1b":
			return j.Boolean(true), nil
		case "false", "0b":
			return j.Boolean(false), nil
		}

	case U8, U16, U32, U64:
		body := strings.TrimSuffix(lexeme, c.String())
		if n, err := strconv.ParseUint(body, 10, c.DType().BitSize()); err == nil && n <= 1<<63-1 {
			return j.I64(int64(n)), nil
		}

	case I8, I16, I32, I64:
		body := strings.TrimSuffix(lexeme, c.String())
		if n, err := strconv.ParseInt(body, 10, c.DType().BitSize()); err == nil {
			return j.I64(n), nil
		}

	case F32, F64:
		body := strings.TrimSuffix(lexeme, c.String())
		if isDecimal(body) {
			if f, err := strconv.ParseFloat(body, c.DType().BitSize()); err == nil {
				return j.F64(f), nil
			}
		}

	case Date:
		days, err := temporal.ParseDate(lexeme)
		if err != nil {
			return nil, err
		}
		return j.Date(days), nil

	case Time:
		ns, err := temporal.ParseTime(lexeme)
		if err != nil {
			return nil, err
		}
		return j.Time(ns), nil

	case Datetime:
		ms, err := temporal.ParseDatetime(lexeme)
		if err != nil {
			return nil, err
		}
		return j.Datetime(ms), nil

	case Timestamp:
		ns, err := temporal.ParseTimestamp(lexeme)
		if err != nil {
			return nil, err
		}
		return j.Timestamp(ns), nil

	case Duration:
		ns, err := temporal.ParseDuration(lexeme)
		if err != nil {
			return nil, err
		}
		return j.Duration(ns), nil

	case Symbol:
		if strings.HasPrefix(lexeme, "`") {
			return j.Symbol(TrimSymbol(lexeme)), nil
		}

	case String:
		if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
			return j.String(lexeme[1 : len(lexeme)-1]), nil
		}

	case None:
		// only null slots fit a none series

	default:
		return nil, fmt.Errorf("unrecognized literal '%s'", lexeme)
	}
	return nil, fmt.Errorf("Not a valid %s, %s", c, lexeme)
}

// TrimSymbol strips the leading back-tick of a symbol and one trailing
// back-tick when present: `a` and `a both give a.
func TrimSymbol(lexeme string) string {
	s := strings.TrimPrefix(lexeme, "`")
	return strings.TrimSuffix(s, "`")
}

// SplitSymbols returns the names of a run-together symbol series such as
// `a`b`c.
func SplitSymbols(lexeme string) []string {
	return strings.Split(TrimSymbol(lexeme), "`")
}

// isDecimal accepts digits with at most one dot and at least one digit.
// strconv alone would also take inf, nan, hex and exponents.
func isDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
