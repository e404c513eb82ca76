package parser

import (
	"strconv"
	"time"
)

// SecondsPerDay is the number of seconds in one Excel serial day.
const SecondsPerDay = 86400

// excelEpoch is serial day zero in the 1900 date system as counted by
// spreadsheet libraries (the 1900 leap-year bug is absorbed by starting on
// 1899-12-30 instead of 1900-01-01).
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// ExcelSerial converts a wall-clock time to an Excel serial date:
// whole days since 1899-12-30 plus the seconds of the day as a fraction.
// Sub-second precision is dropped. The time zone of t is ignored.
func ExcelSerial(t time.Time) float64 {
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	secs := wall.Unix() - excelEpoch.Unix()

	days := secs / SecondsPerDay
	rem := secs % SecondsPerDay
	if rem < 0 {
		days--
		rem += SecondsPerDay
	}
	return float64(days) + float64(rem)/SecondsPerDay
}

// RoundTo rounds v to the given number of decimal places, resolving exact
// ties to even on the binary value of v.
func RoundTo(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
