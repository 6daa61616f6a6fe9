package j

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jasmine-lang/jasmine/core/temporal"
)

var plainKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Format renders v in the literal surface syntax it parses from. Parsing the
// result yields a value Equal to v for every literal-only value, except that
// series names and the dtype of an all-null series are not preserved.
func Format(v J) string {
	var b strings.Builder
	writeJ(&b, v)
	return b.String()
}

func writeJ(b *strings.Builder, v J) {
	switch v := v.(type) {
	case Boolean:
		if v {
			b.WriteString("1b")
		} else {
			b.WriteString("0b")
		}
	case I64:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case F64:
		b.WriteString(formatFloat(float64(v), 64))
	case Date:
		b.WriteString(temporal.FormatDate(int32(v)))
	case Time:
		b.WriteString(temporal.FormatTime(int64(v)))
	case Datetime:
		b.WriteString(temporal.FormatDatetime(int64(v)))
	case Timestamp:
		b.WriteString(temporal.FormatTimestamp(int64(v)))
	case Duration:
		b.WriteString(temporal.FormatDuration(int64(v)))
	case String:
		b.WriteString(`"` + string(v) + `"`)
	case Symbol:
		b.WriteString("`" + string(v))
	case None:
		b.WriteString("none")
	case Err:
		b.WriteString("raise " + strconv.Quote(string(v)))
	case MixedList:
		b.WriteString("l[")
		for i, e := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			writeJ(b, e)
		}
		b.WriteString("]")
	case *Series:
		writeSeries(b, v)
	case *Matrix:
		r, c := v.Dims()
		b.WriteString("x[")
		for i := 0; i < r; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("[")
			for j := 0; j < c; j++ {
				if j > 0 {
					b.WriteString(", ")
				}
				b.WriteString(formatFloat(v.At(i, j), 64))
			}
			b.WriteString("]")
		}
		b.WriteString("]")
	case *Dict:
		b.WriteString("{")
		first := true
		v.Range(func(k string, e J) bool {
			if !first {
				b.WriteString(", ")
			}
			first = false
			if plainKey.MatchString(k) {
				b.WriteString(k)
			} else {
				b.WriteString(`"` + k + `"`)
			}
			b.WriteString(": ")
			writeJ(b, e)
			return true
		})
		b.WriteString("}")
	case *DataFrame:
		b.WriteString("df[")
		for i, c := range v.cols {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.Name())
			b.WriteString(" = ")
			writeSeries(b, c)
		}
		b.WriteString("]")
	}
}

func writeSeries(b *strings.Builder, s *Series) {
	b.WriteString("[")
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if s.IsNull(i) {
			b.WriteString("none")
			continue
		}
		b.WriteString(formatElement(s.dtype, s.Value(i)))
	}
	b.WriteString("]")
}

// formatElement renders one series slot with the suffix its dtype needs to
// classify the same way again.
func formatElement(dtype DType, v J) string {
	switch dtype {
	case DTypeU8, DTypeI8, DTypeU16, DTypeI16, DTypeU32, DTypeI32, DTypeU64:
		if dtype == DTypeU64 {
			return strconv.FormatUint(uint64(v.(I64)), 10) + dtype.String()
		}
		return strconv.FormatInt(int64(v.(I64)), 10) + dtype.String()
	case DTypeF32:
		return formatFloat(float64(v.(F64)), 32) + "f32"
	default:
		return Format(v)
	}
}

// formatFloat always keeps a decimal point so the text classifies as a float.
func formatFloat(f float64, bits int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "none"
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
