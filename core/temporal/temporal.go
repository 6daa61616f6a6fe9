// Package temporal converts Jasmine temporal literal text to integer epoch
// offsets and back.
//
// Representations:
//
//	date       int32  days since 1970-01-01
//	time       int64  nanoseconds since midnight, [0, NsInDay)
//	datetime   int64  milliseconds since the Unix epoch
//	timestamp  int64  nanoseconds since the Unix epoch
//	duration   int64  signed nanoseconds
//
// Literal forms:
//
//	2024-03-01                     date
//	09:30:00.123456789             time, fraction right-padded to nanoseconds
//	2024-03-01T09:30:00.123        datetime, time part optional
//	2024-03-01D09:30:00.123456789  timestamp, time part optional
//	3D09:30:00 | -5s | 15m | 2h    duration
//
// All values are UTC. Errors carry the exact message shown to users and no
// position; callers attach the span of the literal.
package temporal

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	// UnixEpochDay is the proleptic Gregorian day count of 1970-01-01,
	// counting 0001-01-01 as day 1.
	UnixEpochDay = 719_163

	// NsInDay is the number of nanoseconds in one day.
	NsInDay int64 = 86_400_000_000_000

	nsInMs     int64 = 1_000_000
	msInDay    int64 = 86_400_000
	secInDay   int64 = 86_400
	fracDigits       = 9
)

// durationUnits maps suffixes to nanosecond multipliers. "ns" must precede "s".
var durationUnits = []struct {
	suffix     string
	multiplier int64
}{
	{"ns", 1},
	{"s", 1_000_000_000},
	{"m", 60_000_000_000},
	{"h", 3_600_000_000_000},
}

// ParseDate parses "YYYY-MM-DD" to days since the Unix epoch.
func ParseDate(s string) (int32, error) {
	days, ok := parseDays(s)
	if !ok {
		return 0, fmt.Errorf("Not a valid date, %s", s)
	}
	return int32(days), nil
}

// ParseTime parses "HH:MM:SS[.fraction]" to nanoseconds since midnight.
// A trailing "." with no digits is accepted.
func ParseTime(s string) (int64, error) {
	ns, ok := parseClock(s)
	if !ok {
		return 0, fmt.Errorf("Not a valid time, %s", s)
	}
	return ns, nil
}

// ParseDuration parses "{n}D[HH:MM:SS[.fraction]]" or "{n}(ns|s|m|h)"
// to signed nanoseconds.
func ParseDuration(s string) (int64, error) {
	bad := func() (int64, error) { return 0, fmt.Errorf("Not a valid duration, %s", s) }

	if day, clock, ok := strings.Cut(s, "D"); ok {
		days, err := strconv.ParseInt(day, 10, 64)
		if err != nil {
			return bad()
		}
		var ns int64
		if clock != "" {
			if ns, ok = parseClock(clock); !ok {
				return bad()
			}
		}
		total, ok := addMul(days, NsInDay, ns)
		if !ok {
			return bad()
		}
		return total, nil
	}

	for _, unit := range durationUnits {
		num, ok := strings.CutSuffix(s, unit.suffix)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return bad()
		}
		total, ok := addMul(n, unit.multiplier, 0)
		if !ok {
			return bad()
		}
		return total, nil
	}
	return bad()
}

// ParseDatetime parses "YYYY-MM-DDTHH:MM:SS[.fraction]" to milliseconds since
// the Unix epoch. Digits beyond milliseconds are truncated and an omitted time
// part means midnight.
func ParseDatetime(s string) (int64, error) {
	days, ns, ok := parseStamp(s, "T")
	if !ok {
		return 0, fmt.Errorf("Not a valid datetime, %s", s)
	}
	return days*msInDay + ns/nsInMs, nil
}

// ParseTimestamp parses "YYYY-MM-DDDHH:MM:SS[.fraction]" to nanoseconds since
// the Unix epoch. Instants outside the int64 nanosecond range collapse to 0.
func ParseTimestamp(s string) (int64, error) {
	days, ns, ok := parseStamp(s, "D")
	if !ok {
		return 0, fmt.Errorf("Not a valid timestamp, %s", s)
	}
	total, ok := addMul(days, NsInDay, ns)
	if !ok {
		return 0, nil
	}
	return total, nil
}

// parseStamp splits a date and an optional clock on sep.
func parseStamp(s, sep string) (days, ns int64, ok bool) {
	date, clock, found := strings.Cut(s, sep)
	if !found {
		return 0, 0, false
	}
	if days, ok = parseDays(date); !ok {
		return 0, 0, false
	}
	if clock == "" {
		return days, 0, true
	}
	if ns, ok = parseClock(clock); !ok {
		return 0, 0, false
	}
	return days, ns, true
}

func parseDays(s string) (int64, bool) {
	if len(s) != len("2006-01-02") {
		return 0, false
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return 0, false
	}
	return t.Unix() / secInDay, true
}

func parseClock(s string) (int64, bool) {
	hms, frac, _ := strings.Cut(s, ".")
	parts := strings.Split(hms, ":")
	if len(parts) != 3 {
		return 0, false
	}

	limits := [3]int64{23, 59, 59}
	var fields [3]int64
	for i, part := range parts {
		if len(part) != 2 || !isDigits(part) {
			return 0, false
		}
		v, _ := strconv.ParseInt(part, 10, 64)
		if v > limits[i] {
			return 0, false
		}
		fields[i] = v
	}

	if len(frac) > fracDigits || (frac != "" && !isDigits(frac)) {
		return 0, false
	}
	var nanos int64
	if frac != "" {
		nanos, _ = strconv.ParseInt(frac+strings.Repeat("0", fracDigits-len(frac)), 10, 64)
	}

	return (fields[0]*3600+fields[1]*60+fields[2])*1_000_000_000 + nanos, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// addMul returns a*b+c, reporting false when the sum does not fit an int64.
// b is positive.
func addMul(a, b, c int64) (int64, bool) {
	if a <= math.MaxInt64/b && a >= math.MinInt64/b {
		base := a * b
		if (c >= 0 && base <= math.MaxInt64-c) || (c < 0 && base >= math.MinInt64-c) {
			return base + c, true
		}
	}

	// a*b alone can leave the range while a*b+c is back inside it,
	// e.g. the earliest representable timestamp
	sum := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	sum.Add(sum, big.NewInt(c))
	if !sum.IsInt64() {
		return 0, false
	}
	return sum.Int64(), true
}
