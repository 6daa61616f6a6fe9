package j

import "github.com/apache/arrow-go/v18/arrow"

// DType is the element type of a series.
type DType int

const (
	DTypeNull DType = iota
	DTypeBool
	DTypeU8
	DTypeI8
	DTypeU16
	DTypeI16
	DTypeU32
	DTypeI32
	DTypeU64
	DTypeI64
	DTypeF32
	DTypeF64
	DTypeDate
	DTypeTime
	DTypeDatetime
	DTypeTimestamp
	DTypeDuration
	DTypeSym
	DTypeStr
)

var dtypeNames = [...]string{
	DTypeNull:      "null",
	DTypeBool:      "bool",
	DTypeU8:        "u8",
	DTypeI8:        "i8",
	DTypeU16:       "u16",
	DTypeI16:       "i16",
	DTypeU32:       "u32",
	DTypeI32:       "i32",
	DTypeU64:       "u64",
	DTypeI64:       "i64",
	DTypeF32:       "f32",
	DTypeF64:       "f64",
	DTypeDate:      "date",
	DTypeTime:      "time",
	DTypeDatetime:  "datetime",
	DTypeTimestamp: "timestamp",
	DTypeDuration:  "duration",
	DTypeSym:       "sym",
	DTypeStr:       "str",
}

func (d DType) String() string {
	if d < 0 || int(d) >= len(dtypeNames) {
		return "unknown"
	}
	return dtypeNames[d]
}

// IsNumeric reports whether d is an integer or float dtype.
func (d DType) IsNumeric() bool {
	return d >= DTypeU8 && d <= DTypeF64
}

// IsBool reports whether d is the boolean dtype.
func (d DType) IsBool() bool { return d == DTypeBool }

// IsInteger reports whether d is a fixed-width integer dtype.
func (d DType) IsInteger() bool {
	return d >= DTypeU8 && d <= DTypeI64
}

// IsUnsigned reports whether d is an unsigned integer dtype.
func (d DType) IsUnsigned() bool {
	switch d {
	case DTypeU8, DTypeU16, DTypeU32, DTypeU64:
		return true
	}
	return false
}

// BitSize returns the width of a fixed-width numeric dtype, 0 otherwise.
func (d DType) BitSize() int {
	switch d {
	case DTypeU8, DTypeI8:
		return 8
	case DTypeU16, DTypeI16:
		return 16
	case DTypeU32, DTypeI32, DTypeF32:
		return 32
	case DTypeU64, DTypeI64, DTypeF64:
		return 64
	}
	return 0
}

// ArrowType returns the Arrow type backing a series of dtype d.
func (d DType) ArrowType() arrow.DataType {
	switch d {
	case DTypeBool:
		return arrow.FixedWidthTypes.Boolean
	case DTypeU8:
		return arrow.PrimitiveTypes.Uint8
	case DTypeI8:
		return arrow.PrimitiveTypes.Int8
	case DTypeU16:
		return arrow.PrimitiveTypes.Uint16
	case DTypeI16:
		return arrow.PrimitiveTypes.Int16
	case DTypeU32:
		return arrow.PrimitiveTypes.Uint32
	case DTypeI32:
		return arrow.PrimitiveTypes.Int32
	case DTypeU64:
		return arrow.PrimitiveTypes.Uint64
	case DTypeI64:
		return arrow.PrimitiveTypes.Int64
	case DTypeF32:
		return arrow.PrimitiveTypes.Float32
	case DTypeF64:
		return arrow.PrimitiveTypes.Float64
	case DTypeDate:
		return arrow.FixedWidthTypes.Date32
	case DTypeTime:
		return arrow.FixedWidthTypes.Time64ns
	case DTypeDatetime:
		return &arrow.TimestampType{Unit: arrow.Millisecond}
	case DTypeTimestamp:
		return &arrow.TimestampType{Unit: arrow.Nanosecond}
	case DTypeDuration:
		return arrow.FixedWidthTypes.Duration_ns
	case DTypeSym:
		return &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arrow.BinaryTypes.String}
	case DTypeStr:
		return arrow.BinaryTypes.String
	default:
		return arrow.Null
	}
}
