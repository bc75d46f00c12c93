package usecase

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/shelfcheck/backend/internal/domain"
)

// LoadUserEntries reads user-supplied product entries from a JSON file: an
// array of objects with loosely spelled keys ("Expiry Date", "expiry_date",
// "Expiry_Date_Status" all work) and string or numeric values. Keys are
// canonicalized and values stringified so each entry becomes a FieldSet.
func LoadUserEntries(path string) ([]domain.FieldSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading user entries: %w", err)
	}

	return ParseUserEntries(data)
}

// ParseUserEntries decodes a JSON array of loosely-keyed product objects.
func ParseUserEntries(data []byte) ([]domain.FieldSet, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding user entries: %w", err)
	}

	entries := make([]domain.FieldSet, 0, len(raw))
	for _, obj := range raw {
		fields := make(map[string]string, len(obj))
		for key, value := range obj {
			fields[key] = stringifyValue(value)
		}
		entries = append(entries, domain.NewFieldSet(fields))
	}

	return entries, nil
}

// stringifyValue renders a decoded JSON value the way a human would have
// typed it. Integral floats drop the trailing ".0" so a count of 1 stays "1".
func stringifyValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
