package models

import (
	"time"
)

// RawKind identifies the runtime type of a cell value as read from a workbook.
type RawKind int

const (
	// RawNil is an absent cell.
	RawNil RawKind = iota
	// RawNumber is a numeric cell.
	RawNumber
	// RawBool is a boolean cell.
	RawBool
	// RawDateTime is a date or datetime cell.
	RawDateTime
	// RawTime is a time-of-day cell with no date part.
	RawTime
	// RawString is a text cell, including cached formula text and error codes.
	RawString
)

// RawValue is a cell value before normalization.
type RawValue struct {
	Kind   RawKind
	Number float64
	Bool   bool
	Time   time.Time
	Str    string
}

// NilValue returns an absent cell value.
func NilValue() RawValue { return RawValue{Kind: RawNil} }

// NumberValue returns a numeric cell value.
func NumberValue(v float64) RawValue { return RawValue{Kind: RawNumber, Number: v} }

// BoolValue returns a boolean cell value.
func BoolValue(v bool) RawValue { return RawValue{Kind: RawBool, Bool: v} }

// DateTimeValue returns a date/datetime cell value.
func DateTimeValue(t time.Time) RawValue { return RawValue{Kind: RawDateTime, Time: t} }

// TimeValue returns a time-of-day cell value. Only the clock of t is used.
func TimeValue(t time.Time) RawValue { return RawValue{Kind: RawTime, Time: t} }

// StringValue returns a text cell value.
func StringValue(s string) RawValue { return RawValue{Kind: RawString, Str: s} }

// Interface returns the value in a form suitable for reports and JSON.
func (v RawValue) Interface() any {
	switch v.Kind {
	case RawNumber:
		return v.Number
	case RawBool:
		return v.Bool
	case RawDateTime:
		return v.Time.Format("2006-01-02 15:04:05")
	case RawTime:
		return v.Time.Format("15:04:05")
	case RawString:
		return v.Str
	default:
		return nil
	}
}

// ValueKind identifies the variant of a NormalizedValue.
type ValueKind int

const (
	// KindEmpty is an absent value.
	KindEmpty ValueKind = iota
	// KindNumber is a number rounded to its comparison precision.
	KindNumber
	// KindTimeOfDay is an "HH:MM" clock string.
	KindTimeOfDay
	// KindText is any other string.
	KindText
)

// NormalizedValue is the comparable form of a cell value.
type NormalizedValue struct {
	Kind   ValueKind
	Number float64
	Text   string
}

// EmptyNormalized returns the normalized absent value.
func EmptyNormalized() NormalizedValue { return NormalizedValue{Kind: KindEmpty} }

// NumberNormalized returns a normalized number.
func NumberNormalized(v float64) NormalizedValue { return NormalizedValue{Kind: KindNumber, Number: v} }

// TimeOfDayNormalized returns a normalized "HH:MM" value.
func TimeOfDayNormalized(s string) NormalizedValue {
	return NormalizedValue{Kind: KindTimeOfDay, Text: s}
}

// TextNormalized returns a normalized text value.
func TextNormalized(s string) NormalizedValue { return NormalizedValue{Kind: KindText, Text: s} }

// IsBlank reports whether the value is absent or the empty string.
func (v NormalizedValue) IsBlank() bool {
	switch v.Kind {
	case KindEmpty:
		return true
	case KindText:
		return v.Text == ""
	}
	return false
}

// IsTextual reports whether the value compares as a string.
// Time-of-day values render as strings and share the text comparison class.
func (v NormalizedValue) IsTextual() bool {
	return v.Kind == KindText || v.Kind == KindTimeOfDay
}
