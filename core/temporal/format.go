package temporal

import (
	"fmt"
	"time"
)

// FormatDate renders days since the epoch as "YYYY-MM-DD".
func FormatDate(days int32) string {
	return time.Unix(int64(days)*secInDay, 0).UTC().Format(time.DateOnly)
}

// FormatTime renders nanoseconds since midnight as "HH:MM:SS[.fffffffff]".
func FormatTime(ns int64) string {
	secs, nanos := ns/1_000_000_000, ns%1_000_000_000
	s := fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
	if nanos != 0 {
		s += fmt.Sprintf(".%09d", nanos)
	}
	return s
}

// FormatDatetime renders epoch milliseconds as "YYYY-MM-DDTHH:MM:SS[.fff]".
func FormatDatetime(ms int64) string {
	days, rem := floorDiv(ms, msInDay)
	s := FormatDate(int32(days)) + "T" + FormatTime(rem/1000*1_000_000_000)
	if millis := rem % 1000; millis != 0 {
		s += fmt.Sprintf(".%03d", millis)
	}
	return s
}

// FormatTimestamp renders epoch nanoseconds as "YYYY-MM-DDDHH:MM:SS[.fffffffff]".
func FormatTimestamp(ns int64) string {
	days, rem := floorDiv(ns, NsInDay)
	return FormatDate(int32(days)) + "D" + FormatTime(rem)
}

// FormatDuration renders signed nanoseconds as "{days}D{HH:MM:SS[.fffffffff]}".
// Negative durations use floor division so the clock part is never negative.
func FormatDuration(ns int64) string {
	days, rem := floorDiv(ns, NsInDay)
	return fmt.Sprintf("%dD%s", days, FormatTime(rem))
}

func floorDiv(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
