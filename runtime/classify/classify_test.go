package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasmine-lang/jasmine/core/j"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		lexeme string
		want   Class
	}{
		{"true", Bool},
		{"0b", Bool},
		{"1b", Bool},
		{"7u8", U8},
		{"-7i8", I8},
		{"7u16", U16},
		{"7i16", I16},
		{"7u32", U32},
		{"-7i32", I32},
		{"7u64", U64},
		{"7", I64},
		{"-7", I64},
		{"7i64", I64},
		{"1.5f32", F32},
		{"2f32", F32},
		{"1.5", F64},
		{"-.5", F64},
		{"1.", F64},
		{"3f64", F64},
		{"2024-04-01", Date},
		{"23:59:59", Time},
		{"23:59:59.123456789", Time},
		{"2024-04-01T12:00:00.123", Datetime},
		{"2024-04-01T", Datetime},
		{"2024-04-01D12:00:00.123456789", Timestamp},
		{"2024-04-01D", Timestamp},
		{"1D", Duration},
		{"-1D23:59:59", Duration},
		{"5ns", Duration},
		{"-3h", Duration},
		{"`a", Symbol},
		{"`a`", Symbol},
		{"`", Symbol},
		{`"abc"`, String},
		{`""`, String},
		{"none", None},
		{"", None},
		{"-5u8", Unknown},
		{"12ab", Unknown},
		{"2024-4-1", Unknown},
		{"x", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.lexeme))
		})
	}
}

// TestRuleOrder verifies the table order decides overlapping lexemes
func TestRuleOrder(t *testing.T) {
	rs := Rules()
	require.Len(t, rs, 20)

	assert.Equal(t, Bool, rs[0].Class)
	assert.Equal(t, I64, rs[8].Class)
	assert.Equal(t, F64, rs[10].Class)
	assert.Equal(t, None, rs[19].Class)

	// both the bare integer and bare float rules would accept an empty
	// fraction, the integer rule is reached first
	assert.True(t, rs[8].Match("12"))
	assert.True(t, rs[10].Match("12"))
	assert.Equal(t, I64, Classify("12"))

	// rules are anchored on both ends
	assert.False(t, rs[8].Match("2024-04-01"))
	assert.False(t, rs[11].Match("x2024-04-01"))

	// the returned table is a copy
	rs[0].Class = Unknown
	assert.Equal(t, Bool, Rules()[0].Class)
}

func TestClassDType(t *testing.T) {
	assert.Equal(t, j.DTypeI16, I16.DType())
	assert.Equal(t, j.DTypeF32, F32.DType())
	assert.Equal(t, j.DTypeSym, Symbol.DType())
	assert.Equal(t, j.DTypeTimestamp, Timestamp.DType())
	assert.Equal(t, j.DTypeNull, None.DType())
	assert.Equal(t, j.DTypeNull, Unknown.DType())
	assert.Equal(t, "sym", Symbol.String())
	assert.Equal(t, "unknown", Class(99).String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		class  Class
		lexeme string
		want   j.J
	}{
		{Bool, "true", j.Boolean(true)},
		{Bool, "0b", j.Boolean(false)},
		{I8, "-128i8", j.I64(-128)},
		{I8, "12", j.I64(12)},
		{U16, "65535u16", j.I64(65535)},
		{I64, "42i64", j.I64(42)},
		{I64, "-42", j.I64(-42)},
		{F32, "1.5f32", j.F64(1.5)},
		{F64, "2", j.F64(2)},
		{F64, "-.25", j.F64(-0.25)},
		{Date, "1970-01-02", j.Date(1)},
		{Time, "00:00:01", j.Time(1_000_000_000)},
		{Datetime, "1970-01-01T00:00:01", j.Datetime(1000)},
		{Timestamp, "1970-01-01D00:00:00.000000001", j.Timestamp(1)},
		{Duration, "1D", j.Duration(86_400_000_000_000)},
		{Duration, "2s", j.Duration(2_000_000_000)},
		{Symbol, "`abc`", j.Symbol("abc")},
		{Symbol, "`abc", j.Symbol("abc")},
		{String, `"a b"`, j.String("a b")},
		{I64, "none", j.None{}},
		{Date, "", j.None{}},
		{None, "none", j.None{}},
	}

	for _, tt := range tests {
		t.Run(tt.class.String()+"/"+tt.lexeme, func(t *testing.T) {
			got, err := tt.class.Parse(tt.lexeme)
			require.NoError(t, err)
			assert.True(t, j.Equal(tt.want, got), "got %v", got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		class  Class
		lexeme string
		msg    string
	}{
		{I64, "2.0", "Not a valid i64, 2.0"},
		{I64, "1i8", "Not a valid i64, 1i8"},
		{I8, "128i8", "Not a valid i8, 128i8"},
		{U8, "-1u8", "Not a valid u8, -1u8"},
		{F64, "inf", "Not a valid f64, inf"},
		{F64, "1e5", "Not a valid f64, 1e5"},
		{Bool, "1", "Not a valid bool, 1"},
		{Date, "2024-13-01", "Not a valid date, 2024-13-01"},
		{Time, "24:00:00", "Not a valid time, 24:00:00"},
		{Symbol, `"a"`, "Not a valid sym, \"a\""},
		{String, "`a", "Not a valid str, `a"},
		{None, "1", "Not a valid none, 1"},
		{Unknown, "12ab", "unrecognized literal '12ab'"},
	}

	for _, tt := range tests {
		t.Run(tt.class.String()+"/"+tt.lexeme, func(t *testing.T) {
			_, err := tt.class.Parse(tt.lexeme)
			require.Error(t, err)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestTrimSymbol(t *testing.T) {
	assert.Equal(t, "a", TrimSymbol("`a`"))
	assert.Equal(t, "a", TrimSymbol("`a"))
	assert.Equal(t, "", TrimSymbol("`"))
	assert.Equal(t, "a`b", TrimSymbol("`a`b`"))
}

func TestSplitSymbols(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitSymbols("`a`b"))
	assert.Equal(t, []string{"a", "b", "c"}, SplitSymbols("`a`b`c`"))
	assert.Equal(t, []string{"x1", "y_2"}, SplitSymbols("`x1`y_2"))
}
