package domain

import "time"

// Verdict is the binary outcome of reconciling one product pair.
// Computed once per pair and never mutated afterwards.
type Verdict string

const (
	VerdictApproved    Verdict = "Approved"
	VerdictDisapproved Verdict = "Disapproved"
)

// VerificationRecord bundles everything known about one reconciled pair:
// the capture identifier, both field sets, the (possibly overridden)
// comparison, and the final verdict. Err carries the failure state when a
// collaborator call failed and the pair could not be judged.
type VerificationRecord struct {
	ID        string     `json:"id"`
	ImageFile string     `json:"imageFile"`
	Extracted FieldSet   `json:"extracted,omitempty"`
	User      FieldSet   `json:"user"`
	Comparison Comparison `json:"comparison,omitempty"`
	Verdict   Verdict    `json:"verdict,omitempty"`
	Err       string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Failed reports whether this record captured a collaborator failure
// instead of a verdict.
func (r VerificationRecord) Failed() bool {
	return r.Err != ""
}

// BatchSummary aggregates the outcome of one reconciliation run.
type BatchSummary struct {
	Total       int `json:"total"`
	Approved    int `json:"approved"`
	Disapproved int `json:"disapproved"`
	Failed      int `json:"failed"`
}
