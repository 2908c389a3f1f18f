package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LocalizedText is an ordered list of localized alternatives for a display
// string. The first entry is the preferred locale; entries may be empty when
// a translation is missing. Stored as a JSON array column.
type LocalizedText []string

// First returns the first non-empty alternative, or "" when none exists.
func (t LocalizedText) First() string {
	for _, s := range t {
		if s != "" {
			return s
		}
	}
	return ""
}

// Scan implements sql.Scanner.
func (t *LocalizedText) Scan(src interface{}) error {
	return scanJSON(src, t)
}

// Value implements driver.Valuer.
func (t LocalizedText) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

// IDList is a list of entity IDs stored as a JSON array column.
type IDList []int64

// Contains reports whether id is in the list.
func (l IDList) Contains(id int64) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Scan implements sql.Scanner.
func (l *IDList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// Value implements driver.Valuer.
func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", src)
	}
}
