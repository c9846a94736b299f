package dto

import "encoding/json"

// NullableString distinguishes "field not supplied" from "field explicitly
// set to null" in partial-update payloads. An absent field leaves Set
// false; an explicit null sets Set with a nil Value, which clears the
// stored optional attribute.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only invoked when the field is present in the payload.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// MarshalJSON round-trips the tri-state value.
func (n NullableString) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
