package database

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

// EncodeJSON marshals a nested field for storage. Nil slices and maps are
// stored as SQL NULL when nullable is set, as "[]" otherwise.
func EncodeJSON(v any, nullable bool) (any, error) {
	if isNilCollection(v) {
		if nullable {
			return nil, nil
		}
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// DecodeJSON unmarshals a nested field read back from storage. A NULL column
// (nil raw) leaves dst untouched. Malformed content wraps domain.ErrDecode.
func DecodeJSON(entity, field string, raw []byte, dst any) error {
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s.%s: %v", domain.ErrDecode, entity, field, err)
	}
	return nil
}

func isNilCollection(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case []string:
		return t == nil
	case []domain.Buff:
		return t == nil
	case []domain.Ingredient:
		return t == nil
	case []domain.Section:
		return t == nil
	}
	return false
}
