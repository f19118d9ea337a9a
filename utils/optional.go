// utils/optional.go
package utils

import "encoding/json"

// Optional is a JSON field that remembers whether it appeared in the request
// body at all. Patch endpoints need three states for nullable columns:
// key absent (leave unchanged), explicit null (clear), and a value (set).
// A plain pointer collapses the first two.
type Optional[T any] struct {
	Set   bool // key was present in the body
	Valid bool // value was non-null
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
