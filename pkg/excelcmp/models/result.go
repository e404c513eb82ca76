package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DefaultReportLimit is the number of differences String lists inline.
const DefaultReportLimit = 10

// Difference is one mismatch found during comparison.
type Difference struct {
	// Location names the cell or check, usually "Sheet!A1".
	Location string `json:"location"`
	// Expected is the ground-truth value.
	Expected any `json:"expected"`
	// Actual is the value found in the compared workbook.
	Actual any `json:"actual"`
	// Hint is an optional inline character diff for text mismatches.
	Hint string `json:"hint,omitempty"`
}

// NewDifference creates a Difference whose location is prefixed by sheet when set.
func NewDifference(sheet, location string, expected, actual any) Difference {
	if sheet != "" {
		location = sheet + "!" + location
	}
	return Difference{Location: location, Expected: expected, Actual: actual}
}

// ComparisonResult accumulates matches and differences for one comparison call.
type ComparisonResult struct {
	// IsMatch is false once any difference was recorded.
	IsMatch bool `json:"is_match"`
	// CorrectCount is the number of matching checks.
	CorrectCount int `json:"correct_count"`
	// TotalCount is the number of checks performed.
	TotalCount int `json:"total_count"`
	// Differences lists every mismatch in the order found.
	Differences []Difference `json:"differences"`
}

// NewComparisonResult returns an empty, matching result.
func NewComparisonResult() *ComparisonResult {
	return &ComparisonResult{IsMatch: true, Differences: []Difference{}}
}

// AddMatch records a matching check.
func (r *ComparisonResult) AddMatch() {
	r.CorrectCount++
	r.TotalCount++
}

// AddDifference records a failed check.
func (r *ComparisonResult) AddDifference(d Difference) {
	r.IsMatch = false
	r.TotalCount++
	r.Differences = append(r.Differences, d)
}

// Merge folds the counts and differences of other into r.
func (r *ComparisonResult) Merge(other *ComparisonResult) {
	r.CorrectCount += other.CorrectCount
	r.TotalCount += other.TotalCount
	r.Differences = append(r.Differences, other.Differences...)
	if !other.IsMatch {
		r.IsMatch = false
	}
}

// Accuracy returns CorrectCount/TotalCount, or 1 when nothing was checked.
func (r *ComparisonResult) Accuracy() float64 {
	if r.TotalCount == 0 {
		return 1.0
	}
	return float64(r.CorrectCount) / float64(r.TotalCount)
}

// MarshalJSON adds the derived accuracy to the serialized record.
func (r *ComparisonResult) MarshalJSON() ([]byte, error) {
	type result ComparisonResult
	return json.Marshal(struct {
		*result
		Accuracy float64 `json:"accuracy"`
	}{(*result)(r), r.Accuracy()})
}

// String renders the result with at most DefaultReportLimit differences.
func (r *ComparisonResult) String() string {
	return r.Summary(DefaultReportLimit)
}

// Summary renders the result listing at most limit differences inline.
// A non-positive limit lists all of them. Differences itself is never truncated.
func (r *ComparisonResult) Summary(limit int) string {
	if r.IsMatch {
		return fmt.Sprintf("Match: %d/%d cells", r.CorrectCount, r.TotalCount)
	}

	shown := r.Differences
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Mismatch: %d/%d cells correct.", r.CorrectCount, r.TotalCount)
	for _, d := range shown {
		fmt.Fprintf(&b, "\n  %s: expected %s, got %s", d.Location, formatValue(d.Expected), formatValue(d.Actual))
		if d.Hint != "" {
			fmt.Fprintf(&b, " (%s)", d.Hint)
		}
	}
	if rest := len(r.Differences) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "\n  ... and %d more", rest)
	}
	return b.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
