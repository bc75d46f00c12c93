package usecase

import (
	"fmt"
	"log"

	"github.com/shelfcheck/backend/internal/domain"
)

// Default tolerance in currency units for MRP differences. Retail prices
// legitimately drift by small amounts (discounts, rounding) without
// indicating a different product.
const defaultPriceTolerance = 10.0

// VerdictConfig holds configuration for the verdict service
type VerdictConfig struct {
	PriceTolerance     float64
	EnableDebugLogging bool
}

// VerdictService aggregates per-field judgments into a final verdict,
// overriding false mismatches that normalization proves are formatting noise.
type VerdictService struct {
	priceTolerance     float64
	enableDebugLogging bool
}

// NewVerdictService creates a new verdict service with the given configuration
func NewVerdictService(config VerdictConfig) *VerdictService {
	tolerance := config.PriceTolerance
	if tolerance <= 0 {
		tolerance = defaultPriceTolerance
	}

	return &VerdictService{
		priceTolerance:     tolerance,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Compute applies the normalization overrides to the comparison and derives
// the final verdict. Overrides only ever downgrade a mismatch to Same; they
// never introduce one. The returned Comparison is a copy; the input is not
// mutated.
//
// Verdict policy is deliberately asymmetric: only an explicit "Not the Same"
// judgment disapproves a pair. Ambiguous and unrecognized judgments default
// to approval.
func (s *VerdictService) Compute(
	user, extracted domain.FieldSet,
	cmp domain.Comparison,
) (domain.Verdict, domain.Comparison) {
	out := domain.Comparison{
		Fields: make([]domain.FieldComparison, len(cmp.Fields)),
		Raw:    cmp.Raw,
	}
	copy(out.Fields, cmp.Fields)

	for i, fc := range out.Fields {
		if fc.Judgment != domain.JudgmentNotSame {
			continue
		}

		switch fc.Field {
		case domain.FieldExpiryDate:
			if override, note := s.expiryOverride(user, extracted); override {
				out.Fields[i].Judgment = domain.JudgmentSame
				out.Fields[i].Explanation = note
			}
		case domain.FieldMRP:
			if override, note := s.priceOverride(user, extracted); override {
				out.Fields[i].Judgment = domain.JudgmentSame
				out.Fields[i].Explanation = note
			}
		}
	}

	verdict := domain.VerdictApproved
	if out.HasMismatch() {
		verdict = domain.VerdictDisapproved
	}

	if s.enableDebugLogging {
		log.Printf("[VERDICT] %s (mismatch=%v)", verdict, out.HasMismatch())
	}

	return verdict, out
}

// expiryOverride reports whether the two expiry values normalize to the same
// MM/YYYY token, proving the comparator's mismatch was date-format drift.
func (s *VerdictService) expiryOverride(user, extracted domain.FieldSet) (bool, string) {
	extractedExpiry := NormalizeExpiry(extracted.Get(domain.FieldExpiryDate))
	userExpiry := NormalizeExpiry(user.Get(domain.FieldExpiryDate))

	if extractedExpiry == "" || extractedExpiry != userExpiry {
		return false, ""
	}

	return true, fmt.Sprintf("normalized dates match (Extracted: %s, User: %s)",
		extractedExpiry, userExpiry)
}

// priceOverride reports whether both MRP values parse and differ by less than
// the tolerance. Two unparsable prices both collapse to zero but never
// override: Valid guards against garbage-equals-garbage.
func (s *VerdictService) priceOverride(user, extracted domain.FieldSet) (bool, string) {
	extractedMRP := NormalizePrice(extracted.Get(domain.FieldMRP))
	userMRP := NormalizePrice(user.Get(domain.FieldMRP))

	if !extractedMRP.Valid || !userMRP.Valid {
		return false, ""
	}

	diff := extractedMRP.Amount - userMRP.Amount
	if diff < 0 {
		diff = -diff
	}
	if diff >= s.priceTolerance {
		return false, ""
	}

	return true, fmt.Sprintf("within tolerance (Extracted: ₹%.2f, User: ₹%.2f)",
		extractedMRP.Amount, userMRP.Amount)
}
