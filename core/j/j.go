// Package j is the Jasmine literal value model.
//
// A J is one of a closed set of variants: scalars (Boolean, I64, F64, String,
// Symbol, None), temporals (Date, Time, Datetime, Timestamp, Duration) and
// composites (*Series, *Matrix, MixedList, *Dict, *DataFrame), plus Err for a
// runtime failure carried as a value. Series and frames store their data in
// Apache Arrow arrays; matrices are gonum views.
//
// Values are immutable once built. Rename and similar helpers return copies
// that share the underlying storage.
package j

import (
	"fmt"

	"github.com/jasmine-lang/jasmine/core/diag"
)

// J is a Jasmine value. The interface is sealed.
type J interface {
	isJ()
}

type (
	// Boolean is a single bit.
	Boolean bool
	// I64 is a 64-bit signed integer.
	I64 int64
	// F64 is a 64-bit float.
	F64 float64
	// Date counts days since 1970-01-01.
	Date int32
	// Time counts nanoseconds since midnight.
	Time int64
	// Datetime counts milliseconds since the Unix epoch.
	Datetime int64
	// Timestamp counts nanoseconds since the Unix epoch.
	Timestamp int64
	// Duration is a signed span in nanoseconds.
	Duration int64
	// String is owned text.
	String string
	// Symbol is an interned category label.
	Symbol string
	// None is the absent scalar.
	None struct{}
	// MixedList holds values of any variant.
	MixedList []J
	// Err is a failure surfaced as a value.
	Err string
)

func (Boolean) isJ()    {}
func (I64) isJ()        {}
func (F64) isJ()        {}
func (Date) isJ()       {}
func (Time) isJ()       {}
func (Datetime) isJ()   {}
func (Timestamp) isJ()  {}
func (Duration) isJ()   {}
func (String) isJ()     {}
func (Symbol) isJ()     {}
func (None) isJ()       {}
func (MixedList) isJ()  {}
func (Err) isJ()        {}
func (*Series) isJ()    {}
func (*Matrix) isJ()    {}
func (*Dict) isJ()      {}
func (*DataFrame) isJ() {}

// TypeName returns the short user-facing name of v's variant.
func TypeName(v J) string {
	switch v := v.(type) {
	case Boolean:
		return "bool"
	case I64:
		return "i64"
	case F64:
		return "f64"
	case Date:
		return "date"
	case Time:
		return "time"
	case Datetime:
		return "datetime"
	case Timestamp:
		return "timestamp"
	case Duration:
		return "duration"
	case String:
		return "str"
	case Symbol:
		return "sym"
	case None:
		return "none"
	case MixedList:
		return "list"
	case Err:
		return "err"
	case *Series:
		return "series"
	case *Matrix:
		return "matrix"
	case *Dict:
		return "dict"
	case *DataFrame:
		return "df"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// TypeNum returns the stable numeric code of v's variant, as exposed to hosts.
func TypeNum(v J) int {
	switch v.(type) {
	case None:
		return 0
	case Boolean:
		return 1
	case I64:
		return 2
	case Date:
		return 3
	case Time:
		return 4
	case Datetime:
		return 5
	case Timestamp:
		return 6
	case Duration:
		return 7
	case F64:
		return 8
	case String:
		return 9
	case Symbol:
		return 10
	case *Series:
		return 11
	case *Matrix:
		return 12
	case MixedList:
		return 13
	case *Dict:
		return 14
	case *DataFrame:
		return 15
	default:
		return 16
	}
}

// IsNumeric reports whether v is an I64 or F64 scalar.
func IsNumeric(v J) bool {
	switch v.(type) {
	case I64, F64:
		return true
	}
	return false
}

// IsBool reports whether v is a Boolean scalar.
func IsBool(v J) bool {
	_, ok := v.(Boolean)
	return ok
}

// IsScalar reports whether v can be promoted to a one-element series.
func IsScalar(v J) bool {
	switch v.(type) {
	case Boolean, I64, F64, Date, Time, Datetime, Timestamp, Duration, String, Symbol, None:
		return true
	}
	return false
}

// AsSeries narrows v to a series.
func AsSeries(v J) (*Series, error) {
	s, ok := v.(*Series)
	if !ok {
		return nil, diag.Narrow("series", TypeName(v))
	}
	return s, nil
}

// AsDataFrame narrows v to a dataframe.
func AsDataFrame(v J) (*DataFrame, error) {
	df, ok := v.(*DataFrame)
	if !ok {
		return nil, diag.Narrow("df", TypeName(v))
	}
	return df, nil
}

// AsMatrix narrows v to a matrix.
func AsMatrix(v J) (*Matrix, error) {
	m, ok := v.(*Matrix)
	if !ok {
		return nil, diag.Narrow("matrix", TypeName(v))
	}
	return m, nil
}

// IntoSeries promotes v to an unnamed series. A series is returned as is and
// a scalar becomes a single slot; None becomes one null slot of null dtype.
func IntoSeries(v J) (*Series, error) {
	if s, ok := v.(*Series); ok {
		return s, nil
	}
	if !IsScalar(v) {
		return nil, fmt.Errorf("cannot turn '%s' into a series", TypeName(v))
	}

	b := NewSeriesBuilder(ScalarDType(v), 1)
	b.Append(v)
	return b.Finish(""), nil
}

// ScalarDType returns the series dtype a scalar promotes to.
func ScalarDType(v J) DType {
	switch v.(type) {
	case Boolean:
		return DTypeBool
	case I64:
		return DTypeI64
	case F64:
		return DTypeF64
	case Date:
		return DTypeDate
	case Time:
		return DTypeTime
	case Datetime:
		return DTypeDatetime
	case Timestamp:
		return DTypeTimestamp
	case Duration:
		return DTypeDuration
	case String:
		return DTypeStr
	case Symbol:
		return DTypeSym
	default:
		return DTypeNull
	}
}
