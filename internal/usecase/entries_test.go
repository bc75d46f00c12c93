package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shelfcheck/backend/internal/domain"
)

func TestParseUserEntries(t *testing.T) {
	t.Run("canonicalizes drifted key spellings", func(t *testing.T) {
		data := []byte(`[
			{
				"product_name": "Skin Fruits Active Bright Body Lotion",
				"packaging_material": "Plastic Bottle",
				"brand_name": "Joy",
				"pack_size": "300 mL",
				"expiry_date": "09/23",
				"expiry_status": "Expired",
				"count_confirmation": 1,
				"mrp": 270.00,
				"shelf_life_prediction": "Expired"
			},
			{
				"Product Name": "Yardley London Imperial Jasmine Talcum Powder",
				"Packaging Material": "Plastic",
				"Brand Name": "Yardley London",
				"Pack Size": "100g",
				"Expiry Date": "09/2026",
				"Expiry Date (valid/expired)": "Valid",
				"Count Confirmation": "1",
				"MRP": "₹150",
				"Shelf Life Prediction": "Not applicable"
			},
			{
				"Product_Name": "Khadi Natural Sandalwood Soap",
				"Packaging_Material": "Plastic Wrap",
				"Brand_Name": "Khadi Natural",
				"Pack_Size": "125g (4.41 oz)",
				"Expiry_Date": "July 2026",
				"Expiry_Date_Status": "Valid",
				"Count_Confirmation": "Single Unit",
				"MRP": "₹70.00",
				"Shelf_Life_Prediction": "36 months from the manufacturing date"
			}
		]`)

		entries, err := ParseUserEntries(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("len(entries) = %d, want 3", len(entries))
		}

		for i, entry := range entries {
			for _, field := range []string{
				domain.FieldProductName,
				domain.FieldBrandName,
				domain.FieldPackagingMaterial,
				domain.FieldPackSize,
				domain.FieldExpiryDate,
				domain.FieldExpiryStatus,
				domain.FieldCount,
				domain.FieldMRP,
				domain.FieldShelfLife,
			} {
				if entry.Get(field) == "" {
					t.Errorf("entry %d missing canonical field %q", i, field)
				}
			}
		}

		if got := entries[0].Get(domain.FieldCount); got != "1" {
			t.Errorf("numeric count = %q, want \"1\"", got)
		}
		if got := entries[0].Get(domain.FieldMRP); got != "270" {
			t.Errorf("numeric mrp = %q, want \"270\"", got)
		}
		if got := entries[1].Get(domain.FieldExpiryStatus); got != "Valid" {
			t.Errorf("expiry_status = %q, want \"Valid\"", got)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		if _, err := ParseUserEntries([]byte("{not json")); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})
}

func TestLoadUserEntries(t *testing.T) {
	t.Run("loads entries from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "entries.json")
		content := `[{"product_name": "Tata Salt", "mrp": 28.00}]`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		entries, err := LoadUserEntries(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("len(entries) = %d, want 1", len(entries))
		}
		if got := entries[0].Get(domain.FieldProductName); got != "Tata Salt" {
			t.Errorf("product_name = %q, want \"Tata Salt\"", got)
		}
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		if _, err := LoadUserEntries(filepath.Join(t.TempDir(), "absent.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
