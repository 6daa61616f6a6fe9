package temporal

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseTime verifies clock parsing and range validation
func TestParseTime(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "23:59:59", want: 86_399_000_000_000},
		{input: "07:59:59", want: 28_799_000_000_000},
		{input: "23:59:59.", want: 86_399_000_000_000},
		{input: "23:59:59.123456789", want: 86_399_123_456_789},
		{input: "23:59:59.123", want: 86_399_123_000_000},
		{input: "23:59:59.000123", want: 86_399_000_123_000},
		{input: "00:00:00", want: 0},
		{input: "24:59:59.123456789", wantErr: true},
		{input: "23:60:00", wantErr: true},
		{input: "23:59:60", wantErr: true},
		{input: "23:59:59.1234567890", wantErr: true},
		{input: "23:59", wantErr: true},
		{input: "ab:cd:ef", wantErr: true},
		{input: "23:59:59.12a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Not a valid time, "+tt.input, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseDuration verifies both duration surface forms
func TestParseDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "0D23:59:59", want: 86_399_000_000_000},
		{input: "1D23:59:59", want: 172_799_000_000_000},
		{input: "100D23:59:59", want: 8_726_399_000_000_000},
		{input: "2D", want: 2 * NsInDay},
		{input: "-1D", want: -NsInDay},
		{input: "15ns", want: 15},
		{input: "3s", want: 3_000_000_000},
		{input: "-5m", want: -300_000_000_000},
		{input: "2h", want: 7_200_000_000_000},
		{input: "100D23:60:59.123456789", wantErr: true},
		{input: "100D23:60:59.1", wantErr: true},
		{input: "5ms", wantErr: true},
		{input: "5d", wantErr: true},
		{input: "xD", wantErr: true},
		{input: "999999999999D", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Not a valid duration, "+tt.input, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseDate verifies day counts against the proleptic calendar
func TestParseDate(t *testing.T) {
	days, err := ParseDate("1970-01-01")
	require.NoError(t, err)
	assert.Equal(t, int32(0), days)

	days, err = ParseDate("0001-01-01")
	require.NoError(t, err)
	assert.Equal(t, int32(1-UnixEpochDay), days, "0001-01-01 is proleptic day 1")

	days, err = ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, int32(19783), days)

	for _, bad := range []string{"2024-02-30", "2024-13-01", "24-03-01", "2024-3-1", "2024/03/01"} {
		_, err := ParseDate(bad)
		assert.EqualError(t, err, "Not a valid date, "+bad)
	}
}

// TestParseDateInjective walks consecutive days and checks the count advances by one
func TestParseDateInjective(t *testing.T) {
	start := time.Date(1899, 12, 25, 0, 0, 0, 0, time.UTC)
	prev, err := ParseDate(start.Format(time.DateOnly))
	require.NoError(t, err)

	for i := 1; i < 3*366; i++ {
		day := start.AddDate(0, 0, i)
		got, err := ParseDate(day.Format(time.DateOnly))
		require.NoError(t, err)
		require.Equal(t, prev+1, got, day.Format(time.DateOnly))
		prev = got
	}
}

// TestParseDatetimeAndTimestamp verifies epoch conversions
func TestParseDatetimeAndTimestamp(t *testing.T) {
	ms, err := ParseDatetime("2024-03-01T09:30:00.123")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 123_000_000, time.UTC).UnixMilli(), ms)

	ms, err = ParseDatetime("2024-03-01T")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), ms)

	ns, err := ParseTimestamp("2024-03-01D09:30:00.123456789")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 123_456_789, time.UTC).UnixNano(), ns)

	ns, err = ParseTimestamp("1960-01-01D")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC).UnixNano(), ns)

	// both ends of the int64 nanosecond range
	ns, err = ParseTimestamp("1677-09-21D00:12:43.145224192")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), ns)
	ns, err = ParseTimestamp("2262-04-11D23:47:16.854775807")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), ns)

	// outside the int64 nanosecond range
	ns, err = ParseTimestamp("1677-09-21D00:12:43.145224191")
	require.NoError(t, err)
	assert.Equal(t, int64(0), ns)
	ns, err = ParseTimestamp("3000-01-01D00:00:00")
	require.NoError(t, err)
	assert.Equal(t, int64(0), ns)

	_, err = ParseDatetime("2024-03-01D09:30:00")
	assert.EqualError(t, err, "Not a valid datetime, 2024-03-01D09:30:00")
	_, err = ParseTimestamp("2024-03-01D25:00:00")
	assert.EqualError(t, err, "Not a valid timestamp, 2024-03-01D25:00:00")
}

// TestFormatRoundTrip verifies formatters produce text the parsers accept
func TestFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"1970-01-01", "1969-12-31", "2024-02-29"} {
		d, err := ParseDate(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatDate(d))
	}

	for _, s := range []string{"00:00:00", "23:59:59.123456789", "07:05:09.000001000"} {
		v, err := ParseTime(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatTime(v))
	}

	for _, s := range []string{"2024-03-01T09:30:00.123", "1969-12-31T23:59:59.999", "2024-03-01T00:00:00"} {
		v, err := ParseDatetime(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatDatetime(v))
	}

	for _, s := range []string{"2024-03-01D09:30:00.123456789", "1969-12-31D23:59:59"} {
		v, err := ParseTimestamp(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatTimestamp(v))
	}

	for _, s := range []string{"0D00:00:01", "3D09:30:00", "-1D01:00:00"} {
		v, err := ParseDuration(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatDuration(v))
	}
}
