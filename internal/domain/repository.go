package domain

import "context"

// Extractor defines the interface for the vision collaborator that pulls
// product fields out of a packaging photograph. The returned labels are
// best-effort natural language; implementations canonicalize them.
type Extractor interface {
	ExtractProductInfo(ctx context.Context, image []byte) (FieldSet, error)
}

// Comparator defines the interface for the natural-language judgment engine.
// Implementations are responsible for parsing the collaborator's free text
// into structured judgments exactly once, at this boundary.
type Comparator interface {
	Compare(ctx context.Context, user, extracted FieldSet) (Comparison, error)
}

// ImageSource defines the interface for the capture collaborator boundary.
// List order defines the pairing order with user entries.
type ImageSource interface {
	List() ([]string, error)
	Read(name string) ([]byte, error)
}

// RecordRepository defines the interface for verification record persistence.
// Append-only: the core never updates or deletes a record. Implementations
// must be safe for concurrent appends.
type RecordRepository interface {
	Append(ctx context.Context, record VerificationRecord) error
	List(ctx context.Context) ([]VerificationRecord, error)
	Get(ctx context.Context, id string) (VerificationRecord, error)
}
