package vision

import (
	"regexp"
	"strings"

	"github.com/shelfcheck/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	// Matches markdown bullet key-value lines like "* **Product Name**: Joy"
	// or "- **MRP:** ₹270".
	boldKeyValueRegex = regexp.MustCompile(`^\s*[-*]?\s*\*\*(.+?)(?:\*\*\s*:|:\*\*)\s*(.+)$`)

	// Matches plain "Key: value" lines.
	plainKeyValueRegex = regexp.MustCompile(`^\s*[-*]?\s*'?([A-Za-z][A-Za-z0-9 ()/_.-]*?)'?\s*:\s*(.+)$`)

	// Matches the first parenthesized run, used to pull the comparator's
	// explanation out of a judgment line.
	parentheticalRegex = regexp.MustCompile(`\(([^)]*)\)`)
)

// ParseExtractedFields turns the vision model's key/value text into a
// canonical FieldSet. Lines that carry no "key: value" shape are ignored;
// a noisy or partial answer degrades to fewer fields, never to an error.
func ParseExtractedFields(text string) domain.FieldSet {
	raw := make(map[string]string)

	for _, line := range strings.Split(text, "\n") {
		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}
		raw[key] = value
	}

	return domain.NewFieldSet(raw)
}

// splitKeyValue extracts a (key, value) pair from one line of model output,
// preferring the markdown-bold form the extraction prompt asks for.
func splitKeyValue(line string) (string, string, bool) {
	if match := boldKeyValueRegex.FindStringSubmatch(line); match != nil {
		return strings.TrimSpace(match[1]), strings.TrimSpace(match[2]), true
	}
	if match := plainKeyValueRegex.FindStringSubmatch(line); match != nil {
		return strings.TrimSpace(match[1]), strings.TrimSpace(match[2]), true
	}
	return "", "", false
}

// ParseComparison parses the comparator's free text into structured per-field
// judgments. This is the single place raw comparator text is interpreted;
// downstream code only ever sees Judgment values.
//
// Label detection checks "Not the Same" before "Same" because the latter is a
// substring of the former. A field line whose label is unrecognized parses to
// JudgmentUnknown, which never blocks approval: a comparator that omits a
// field or invents a label biases the verdict toward Approved by design.
func ParseComparison(text string) domain.Comparison {
	cmp := domain.Comparison{Raw: text}

	for _, line := range strings.Split(text, "\n") {
		label, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}

		field := domain.CanonicalField(strings.Trim(label, "* '"))
		judgment, known := detectJudgment(value)
		if !known && !isCanonical(field) {
			// Prose that happens to contain a colon, not a field judgment.
			continue
		}

		cmp.Fields = append(cmp.Fields, domain.FieldComparison{
			Field:       field,
			Judgment:    judgment,
			Explanation: extractExplanation(value, judgment),
		})
	}

	return cmp
}

// detectJudgment finds which of the three literal labels a judgment line
// carries. The bool reports whether any label was recognized.
func detectJudgment(value string) (domain.Judgment, bool) {
	switch {
	case strings.Contains(value, string(domain.JudgmentNotSame)):
		return domain.JudgmentNotSame, true
	case strings.Contains(value, string(domain.JudgmentAmbiguous)):
		return domain.JudgmentAmbiguous, true
	case strings.Contains(value, string(domain.JudgmentSame)):
		return domain.JudgmentSame, true
	default:
		return domain.JudgmentUnknown, false
	}
}

// extractExplanation pulls the comparator's justification out of a judgment
// line: the first parenthetical when present, otherwise whatever text
// follows the label.
func extractExplanation(value string, judgment domain.Judgment) string {
	if match := parentheticalRegex.FindStringSubmatch(value); match != nil {
		return strings.TrimSpace(match[1])
	}

	rest := value
	if judgment != domain.JudgmentUnknown {
		if idx := strings.Index(rest, string(judgment)); idx >= 0 {
			rest = rest[idx+len(judgment):]
		}
	}
	return strings.Trim(rest, " .,-:")
}

func isCanonical(field string) bool {
	for _, canonical := range domain.CanonicalFields {
		if field == canonical {
			return true
		}
	}
	return false
}
