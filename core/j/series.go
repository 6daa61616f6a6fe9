package j

import (
	"fmt"
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/jasmine-lang/jasmine/core/invariant"
)

// Series is a named, homogeneous sequence of nullable slots.
type Series struct {
	name  string
	dtype DType
	arr   arrow.Array
}

// NewSeries builds a series of dtype from values. None values become nulls.
func NewSeries(name string, dtype DType, values ...J) *Series {
	b := NewSeriesBuilder(dtype, len(values))
	for _, v := range values {
		b.Append(v)
	}
	return b.Finish(name)
}

// NullSeries returns a series of n null slots of null dtype.
func NullSeries(name string, n int) *Series {
	b := NewSeriesBuilder(DTypeNull, n)
	for i := 0; i < n; i++ {
		b.AppendNull()
	}
	return b.Finish(name)
}

// Name returns the series name, empty when unnamed.
func (s *Series) Name() string { return s.name }

// DType returns the element type.
func (s *Series) DType() DType { return s.dtype }

// Len returns the number of slots.
func (s *Series) Len() int { return s.arr.Len() }

// NullCount returns the number of null slots.
func (s *Series) NullCount() int { return s.arr.NullN() }

// IsNull reports whether slot i is null.
func (s *Series) IsNull(i int) bool { return s.arr.IsNull(i) }

// Arrow returns the backing array. Callers must not release it.
func (s *Series) Arrow() arrow.Array { return s.arr }

// Rename returns a copy of s named name, sharing storage.
func (s *Series) Rename(name string) *Series {
	c := *s
	c.name = name
	return &c
}

// Value returns slot i as a scalar, None for a null slot.
func (s *Series) Value(i int) J {
	invariant.InRange(i, 0, s.Len()-1, "series index")
	if s.arr.IsNull(i) {
		return None{}
	}

	switch a := s.arr.(type) {
	case *array.Boolean:
		return Boolean(a.Value(i))
	case *array.Uint8:
		return I64(a.Value(i))
	case *array.Int8:
		return I64(a.Value(i))
	case *array.Uint16:
		return I64(a.Value(i))
	case *array.Int16:
		return I64(a.Value(i))
	case *array.Uint32:
		return I64(a.Value(i))
	case *array.Int32:
		return I64(a.Value(i))
	case *array.Uint64:
		return I64(a.Value(i))
	case *array.Int64:
		return I64(a.Value(i))
	case *array.Float32:
		return F64(a.Value(i))
	case *array.Float64:
		return F64(a.Value(i))
	case *array.Date32:
		return Date(a.Value(i))
	case *array.Time64:
		return Time(a.Value(i))
	case *array.Timestamp:
		if s.dtype == DTypeDatetime {
			return Datetime(a.Value(i))
		}
		return Timestamp(a.Value(i))
	case *array.Duration:
		return Duration(a.Value(i))
	case *array.String:
		return String(a.Value(i))
	case *array.Dictionary:
		dict := a.Dictionary().(*array.String)
		return Symbol(dict.Value(a.GetValueIndex(i)))
	default:
		return None{}
	}
}

// Values returns every slot as a scalar.
func (s *Series) Values() []J {
	out := make([]J, s.Len())
	for i := range out {
		out[i] = s.Value(i)
	}
	return out
}

// Float64s converts a numeric or boolean series to floats; nulls become NaN.
func (s *Series) Float64s() ([]float64, error) {
	if !s.dtype.IsNumeric() && !s.dtype.IsBool() {
		return nil, fmt.Errorf("Requires numeric data type, got '%s'", s.dtype)
	}

	out := make([]float64, s.Len())
	for i := range out {
		switch v := s.Value(i).(type) {
		case I64:
			out[i] = float64(v)
		case F64:
			out[i] = float64(v)
		case Boolean:
			if v {
				out[i] = 1
			}
		default:
			out[i] = math.NaN()
		}
	}
	return out, nil
}

// Equal reports whether s and o have the same name, dtype, null mask and values.
func (s *Series) Equal(o *Series) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.name == o.name && s.dtype == o.dtype && array.Equal(s.arr, o.arr)
}

// SeriesBuilder accumulates the slots of one series.
type SeriesBuilder struct {
	dtype DType
	b     array.Builder
}

// NewSeriesBuilder returns a builder for dtype with room for capacity slots.
func NewSeriesBuilder(dtype DType, capacity int) *SeriesBuilder {
	b := array.NewBuilder(memory.DefaultAllocator, dtype.ArrowType())
	b.Reserve(capacity)
	return &SeriesBuilder{dtype: dtype, b: b}
}

// DType returns the dtype being built.
func (sb *SeriesBuilder) DType() DType { return sb.dtype }

// Len returns the number of slots appended so far.
func (sb *SeriesBuilder) Len() int { return sb.b.Len() }

// AppendNull appends a null slot.
func (sb *SeriesBuilder) AppendNull() { sb.b.AppendNull() }

// AppendBool appends to a bool series.
func (sb *SeriesBuilder) AppendBool(v bool) {
	b, ok := sb.b.(*array.BooleanBuilder)
	invariant.Precondition(ok, "AppendBool on %s series", sb.dtype)
	b.Append(v)
}

// AppendInt appends to a signed integer or temporal series.
func (sb *SeriesBuilder) AppendInt(v int64) {
	switch b := sb.b.(type) {
	case *array.Int8Builder:
		b.Append(int8(v))
	case *array.Int16Builder:
		b.Append(int16(v))
	case *array.Int32Builder:
		b.Append(int32(v))
	case *array.Int64Builder:
		b.Append(v)
	case *array.Uint8Builder:
		b.Append(uint8(v))
	case *array.Uint16Builder:
		b.Append(uint16(v))
	case *array.Uint32Builder:
		b.Append(uint32(v))
	case *array.Uint64Builder:
		b.Append(uint64(v))
	case *array.Date32Builder:
		b.Append(arrow.Date32(v))
	case *array.Time64Builder:
		b.Append(arrow.Time64(v))
	case *array.TimestampBuilder:
		b.Append(arrow.Timestamp(v))
	case *array.DurationBuilder:
		b.Append(arrow.Duration(v))
	default:
		invariant.Unreachable("AppendInt on %s series", sb.dtype)
	}
}

// AppendUint appends to an unsigned integer series.
func (sb *SeriesBuilder) AppendUint(v uint64) {
	switch b := sb.b.(type) {
	case *array.Uint8Builder:
		b.Append(uint8(v))
	case *array.Uint16Builder:
		b.Append(uint16(v))
	case *array.Uint32Builder:
		b.Append(uint32(v))
	case *array.Uint64Builder:
		b.Append(v)
	default:
		invariant.Unreachable("AppendUint on %s series", sb.dtype)
	}
}

// AppendFloat appends to a float series.
func (sb *SeriesBuilder) AppendFloat(v float64) {
	switch b := sb.b.(type) {
	case *array.Float32Builder:
		b.Append(float32(v))
	case *array.Float64Builder:
		b.Append(v)
	default:
		invariant.Unreachable("AppendFloat on %s series", sb.dtype)
	}
}

// AppendString appends to a str or sym series.
func (sb *SeriesBuilder) AppendString(v string) {
	switch b := sb.b.(type) {
	case *array.StringBuilder:
		b.Append(v)
	case *array.BinaryDictionaryBuilder:
		invariant.ExpectNoError(b.AppendString(v), "symbol append")
	default:
		invariant.Unreachable("AppendString on %s series", sb.dtype)
	}
}

// Append appends a scalar of the builder's kind; None appends a null.
func (sb *SeriesBuilder) Append(v J) {
	switch v := v.(type) {
	case None:
		sb.AppendNull()
	case Boolean:
		sb.AppendBool(bool(v))
	case I64:
		if sb.dtype.IsNumeric() && !sb.dtype.IsInteger() {
			sb.AppendFloat(float64(v))
			return
		}
		sb.AppendInt(int64(v))
	case F64:
		sb.AppendFloat(float64(v))
	case Date:
		sb.AppendInt(int64(v))
	case Time:
		sb.AppendInt(int64(v))
	case Datetime:
		sb.AppendInt(int64(v))
	case Timestamp:
		sb.AppendInt(int64(v))
	case Duration:
		sb.AppendInt(int64(v))
	case String:
		sb.AppendString(string(v))
	case Symbol:
		sb.AppendString(string(v))
	default:
		invariant.Unreachable("cannot append %s to a series", TypeName(v))
	}
}

// Finish returns the built series named name. The builder is reset.
func (sb *SeriesBuilder) Finish(name string) *Series {
	return &Series{name: name, dtype: sb.dtype, arr: sb.b.NewArray()}
}
