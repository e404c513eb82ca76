package parser

import (
	"strings"
	"time"
)

// DateFormat pairs a strptime-style pattern with the equivalent Go layout.
type DateFormat struct {
	Pattern string
	Layout  string
}

// DateFormats is the ordered list of layouts tried when a string looks like a
// date. The first layout that parses wins, so day-first layouts take
// precedence over month-first ones for ambiguous input like "02/03/24".
var DateFormats = []DateFormat{
	// Day first.
	{"%d.%m.%y", "2.1.06"},
	{"%d.%m.%Y", "2.1.2006"},
	{"%d/%m/%y", "2/1/06"},
	{"%d/%m/%Y", "2/1/2006"},
	{"%d-%m-%y", "2-1-06"},
	{"%d-%m-%Y", "2-1-2006"},
	// ISO.
	{"%Y-%m-%d", "2006-1-2"},
	{"%Y/%m/%d", "2006/1/2"},
	{"%Y.%m.%d", "2006.1.2"},
	// Month first.
	{"%m/%d/%y", "1/2/06"},
	{"%m/%d/%Y", "1/2/2006"},
	{"%m-%d-%y", "1-2-06"},
	{"%m-%d-%Y", "1-2-2006"},
	// With time.
	{"%d.%m.%y %H:%M:%S", "2.1.06 15:4:5"},
	{"%d.%m.%Y %H:%M:%S", "2.1.2006 15:4:5"},
	{"%Y-%m-%d %H:%M:%S", "2006-1-2 15:4:5"},
	{"%d/%m/%Y %H:%M:%S", "2/1/2006 15:4:5"},
	{"%m/%d/%Y %H:%M:%S", "1/2/2006 15:4:5"},
}

// ParseDateString tries each of DateFormats in order on the trimmed input.
func ParseDateString(s string) (time.Time, DateFormat, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, DateFormat{}, false
	}
	for _, df := range DateFormats {
		if t, err := time.Parse(df.Layout, s); err == nil {
			return t, df, true
		}
	}
	return time.Time{}, DateFormat{}, false
}
