package domain

import (
	"fmt"
	"strings"
)

// Judgment is the per-field decision of the comparator. The literal values
// match the labels the comparator is prompted to emit, so a rendered
// comparison reads the same as the raw model output.
type Judgment string

const (
	JudgmentSame      Judgment = "Same"
	JudgmentNotSame   Judgment = "Not the Same"
	JudgmentAmbiguous Judgment = "Close but Needs Clarification"
	// JudgmentUnknown marks a field whose label could not be recognized in
	// the comparator output. Unknown never blocks approval.
	JudgmentUnknown Judgment = "Unknown"
)

// FieldComparison is one field's judgment with the comparator's explanation.
type FieldComparison struct {
	Field       string   `json:"field"`
	Judgment    Judgment `json:"judgment"`
	Explanation string   `json:"explanation,omitempty"`
}

// Comparison is the comparator's output parsed once at the boundary into
// structured judgments. Raw preserves the original model text for audit.
type Comparison struct {
	Fields []FieldComparison `json:"fields"`
	Raw    string            `json:"raw,omitempty"`
}

// Rendered returns the line-oriented "Field: Judgment (explanation)" form
// used for persistence and display.
func (c Comparison) Rendered() string {
	var b strings.Builder
	for _, fc := range c.Fields {
		fmt.Fprintf(&b, "%s: %s", DisplayName(fc.Field), fc.Judgment)
		if fc.Explanation != "" {
			fmt.Fprintf(&b, " (%s)", fc.Explanation)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// HasMismatch reports whether any field is judged Not the Same.
func (c Comparison) HasMismatch() bool {
	for _, fc := range c.Fields {
		if fc.Judgment == JudgmentNotSame {
			return true
		}
	}
	return false
}
