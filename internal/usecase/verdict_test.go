package usecase

import (
	"strings"
	"testing"

	"github.com/shelfcheck/backend/internal/domain"
)

func TestNewVerdictService(t *testing.T) {
	t.Run("creates service with provided tolerance", func(t *testing.T) {
		svc := NewVerdictService(VerdictConfig{PriceTolerance: 5})
		if svc.priceTolerance != 5 {
			t.Errorf("priceTolerance = %v, want 5", svc.priceTolerance)
		}
	})

	t.Run("uses default tolerance when zero", func(t *testing.T) {
		svc := NewVerdictService(VerdictConfig{})
		if svc.priceTolerance != 10 {
			t.Errorf("priceTolerance = %v, want 10 (default)", svc.priceTolerance)
		}
	})
}

func comparisonWith(fields ...domain.FieldComparison) domain.Comparison {
	return domain.Comparison{Fields: fields}
}

func TestComputeVerdict(t *testing.T) {
	svc := NewVerdictService(VerdictConfig{PriceTolerance: 10})

	t.Run("overrides MRP mismatch within tolerance", func(t *testing.T) {
		user := domain.FieldSet{domain.FieldMRP: "270.00"}
		extracted := domain.FieldSet{domain.FieldMRP: "₹270"}
		cmp := comparisonWith(domain.FieldComparison{
			Field:    domain.FieldMRP,
			Judgment: domain.JudgmentNotSame,
		})

		verdict, adjusted := svc.Compute(user, extracted, cmp)
		if verdict != domain.VerdictApproved {
			t.Errorf("verdict = %v, want Approved", verdict)
		}
		if adjusted.Fields[0].Judgment != domain.JudgmentSame {
			t.Errorf("MRP judgment = %v, want Same", adjusted.Fields[0].Judgment)
		}
		if strings.Contains(adjusted.Rendered(), string(domain.JudgmentNotSame)) {
			t.Errorf("rendered comparison still contains a mismatch: %q", adjusted.Rendered())
		}
		if !strings.Contains(adjusted.Fields[0].Explanation, "270") {
			t.Errorf("explanation %q does not embed the normalized values", adjusted.Fields[0].Explanation)
		}
	})

	t.Run("keeps MRP mismatch beyond tolerance", func(t *testing.T) {
		user := domain.FieldSet{domain.FieldMRP: "₹50"}
		extracted := domain.FieldSet{domain.FieldMRP: "₹100"}
		cmp := comparisonWith(domain.FieldComparison{
			Field:    domain.FieldMRP,
			Judgment: domain.JudgmentNotSame,
		})

		verdict, adjusted := svc.Compute(user, extracted, cmp)
		if verdict != domain.VerdictDisapproved {
			t.Errorf("verdict = %v, want Disapproved", verdict)
		}
		if adjusted.Fields[0].Judgment != domain.JudgmentNotSame {
			t.Errorf("MRP judgment = %v, want Not the Same", adjusted.Fields[0].Judgment)
		}
	})

	t.Run("does not override when both prices are unparsable", func(t *testing.T) {
		user := domain.FieldSet{domain.FieldMRP: "see label"}
		extracted := domain.FieldSet{domain.FieldMRP: "illegible"}
		cmp := comparisonWith(domain.FieldComparison{
			Field:    domain.FieldMRP,
			Judgment: domain.JudgmentNotSame,
		})

		verdict, _ := svc.Compute(user, extracted, cmp)
		if verdict != domain.VerdictDisapproved {
			t.Errorf("verdict = %v, want Disapproved (garbage must not equal garbage)", verdict)
		}
	})

	t.Run("overrides expiry mismatch caused by format drift", func(t *testing.T) {
		user := domain.FieldSet{domain.FieldExpiryDate: "9/23"}
		extracted := domain.FieldSet{domain.FieldExpiryDate: "09/2023"}
		cmp := comparisonWith(domain.FieldComparison{
			Field:    domain.FieldExpiryDate,
			Judgment: domain.JudgmentNotSame,
		})

		verdict, adjusted := svc.Compute(user, extracted, cmp)
		if verdict != domain.VerdictApproved {
			t.Errorf("verdict = %v, want Approved", verdict)
		}
		if !strings.Contains(adjusted.Fields[0].Explanation, "09/2023") {
			t.Errorf("explanation %q does not embed the normalized date", adjusted.Fields[0].Explanation)
		}
	})

	t.Run("keeps expiry mismatch on genuine disagreement", func(t *testing.T) {
		user := domain.FieldSet{domain.FieldExpiryDate: "05/26"}
		extracted := domain.FieldSet{domain.FieldExpiryDate: "09/2023"}
		cmp := comparisonWith(domain.FieldComparison{
			Field:    domain.FieldExpiryDate,
			Judgment: domain.JudgmentNotSame,
		})

		verdict, _ := svc.Compute(user, extracted, cmp)
		if verdict != domain.VerdictDisapproved {
			t.Errorf("verdict = %v, want Disapproved", verdict)
		}
	})

	t.Run("approves when no field is judged Not the Same", func(t *testing.T) {
		verdict, _ := svc.Compute(domain.FieldSet{}, domain.FieldSet{}, comparisonWith(
			domain.FieldComparison{Field: domain.FieldProductName, Judgment: domain.JudgmentSame},
			domain.FieldComparison{Field: domain.FieldBrandName, Judgment: domain.JudgmentSame},
		))
		if verdict != domain.VerdictApproved {
			t.Errorf("verdict = %v, want Approved", verdict)
		}
	})

	t.Run("disapproves on a mismatch no override applies to", func(t *testing.T) {
		user := domain.FieldSet{
			domain.FieldExpiryDate: "09/23",
			domain.FieldMRP:        "₹270",
		}
		extracted := domain.FieldSet{
			domain.FieldExpiryDate: "09/2023",
			domain.FieldMRP:        "270.00",
		}
		cmp := comparisonWith(
			domain.FieldComparison{Field: domain.FieldProductName, Judgment: domain.JudgmentNotSame},
			domain.FieldComparison{Field: domain.FieldExpiryDate, Judgment: domain.JudgmentSame},
		)

		verdict, _ := svc.Compute(user, extracted, cmp)
		if verdict != domain.VerdictDisapproved {
			t.Errorf("verdict = %v, want Disapproved regardless of other fields", verdict)
		}
	})

	t.Run("ambiguity alone never disapproves", func(t *testing.T) {
		verdict, _ := svc.Compute(domain.FieldSet{}, domain.FieldSet{}, comparisonWith(
			domain.FieldComparison{Field: domain.FieldPackSize, Judgment: domain.JudgmentAmbiguous},
			domain.FieldComparison{Field: domain.FieldShelfLife, Judgment: domain.JudgmentUnknown},
		))
		if verdict != domain.VerdictApproved {
			t.Errorf("verdict = %v, want Approved (ambiguity defaults to approval)", verdict)
		}
	})

	t.Run("input comparison is not mutated", func(t *testing.T) {
		user := domain.FieldSet{domain.FieldMRP: "270.00"}
		extracted := domain.FieldSet{domain.FieldMRP: "₹270"}
		cmp := comparisonWith(domain.FieldComparison{
			Field:    domain.FieldMRP,
			Judgment: domain.JudgmentNotSame,
		})

		_, _ = svc.Compute(user, extracted, cmp)
		if cmp.Fields[0].Judgment != domain.JudgmentNotSame {
			t.Errorf("input judgment mutated to %v", cmp.Fields[0].Judgment)
		}
	})
}
