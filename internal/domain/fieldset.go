package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Canonical field names for a product description. Both the user-supplied
// entry and the vision extraction are folded onto this list; labels arriving
// from either side are best-effort natural language, not a fixed schema.
const (
	FieldProductName       = "product_name"
	FieldBrandName         = "brand_name"
	FieldPackagingMaterial = "packaging_material"
	FieldPackSize          = "pack_size"
	FieldExpiryDate        = "expiry_date"
	FieldExpiryStatus      = "expiry_status"
	FieldCount             = "count"
	FieldMRP               = "mrp"
	FieldShelfLife         = "shelf_life"
)

// CanonicalFields lists the known fields in display order.
var CanonicalFields = []string{
	FieldProductName,
	FieldBrandName,
	FieldPackagingMaterial,
	FieldPackSize,
	FieldExpiryDate,
	FieldExpiryStatus,
	FieldCount,
	FieldMRP,
	FieldShelfLife,
}

// FieldSet maps canonical field names to raw string values for one product
// instance. Values are kept verbatim; only expiry_date and mrp are ever
// normalized, and only inside the verdict aggregator.
type FieldSet map[string]string

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// fieldAliases folds the label spellings seen in the wild onto canonical
// names. Keys are labels lowercased with punctuation collapsed to spaces.
var fieldAliases = map[string]string{
	"product name":                       FieldProductName,
	"brand":                              FieldBrandName,
	"brand name":                         FieldBrandName,
	"packaging":                          FieldPackagingMaterial,
	"packaging material":                 FieldPackagingMaterial,
	"pack size":                          FieldPackSize,
	"net quantity":                       FieldPackSize,
	"expiry":                             FieldExpiryDate,
	"expiry date":                        FieldExpiryDate,
	"best before":                        FieldExpiryDate,
	"expiry status":                      FieldExpiryStatus,
	"expiry date status":                 FieldExpiryStatus,
	"expiry date valid expired":          FieldExpiryStatus,
	"count":                              FieldCount,
	"count confirmation":                 FieldCount,
	"mrp":                                FieldMRP,
	"maximum retail price":               FieldMRP,
	"price":                              FieldMRP,
	"shelf life":                         FieldShelfLife,
	"shelf life prediction":              FieldShelfLife,
	"shelf life prediction if applicable": FieldShelfLife,
}

// displayNames renders canonical fields for prompt text and comparator output.
var displayNames = map[string]string{
	FieldProductName:       "Product Name",
	FieldBrandName:         "Brand Name",
	FieldPackagingMaterial: "Packaging Material",
	FieldPackSize:          "Pack Size",
	FieldExpiryDate:        "Expiry Date",
	FieldExpiryStatus:      "Expiry Status",
	FieldCount:             "Count",
	FieldMRP:               "MRP",
	FieldShelfLife:         "Shelf Life",
}

// CanonicalField maps a noisy field label to its canonical name.
// Unrecognized labels keep a snake_case form of themselves so no extracted
// value is ever dropped.
func CanonicalField(label string) string {
	key := strings.TrimSpace(nonAlnumRegex.ReplaceAllString(strings.ToLower(label), " "))
	if canonical, ok := fieldAliases[key]; ok {
		return canonical
	}
	return strings.ReplaceAll(key, " ", "_")
}

// DisplayName returns the human-readable form of a canonical field name.
func DisplayName(field string) string {
	if name, ok := displayNames[field]; ok {
		return name
	}
	words := strings.Split(field, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// NewFieldSet builds a FieldSet from loosely labeled key/value pairs,
// canonicalizing every key. Later duplicates of the same canonical field win.
func NewFieldSet(raw map[string]string) FieldSet {
	fs := make(FieldSet, len(raw))
	for label, value := range raw {
		fs[CanonicalField(label)] = strings.TrimSpace(value)
	}
	return fs
}

// Get returns the value for a canonical field, or "" when absent.
func (fs FieldSet) Get(field string) string {
	return fs[field]
}

// Render produces the line-oriented "Label: value" dump consumed by the
// comparator. Canonical fields come first in display order, then any extras
// sorted by name so output is deterministic.
func (fs FieldSet) Render() string {
	var b strings.Builder
	seen := make(map[string]bool, len(fs))
	for _, field := range CanonicalFields {
		if value, ok := fs[field]; ok {
			fmt.Fprintf(&b, "%s: %s\n", DisplayName(field), value)
			seen[field] = true
		}
	}
	extras := make([]string, 0, len(fs))
	for field := range fs {
		if !seen[field] {
			extras = append(extras, field)
		}
	}
	sort.Strings(extras)
	for _, field := range extras {
		fmt.Fprintf(&b, "%s: %s\n", DisplayName(field), fs[field])
	}
	return b.String()
}
