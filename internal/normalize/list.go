package normalize

import "encoding/json"

// StringList decodes a JSON array of strings. Any other shape (string, null,
// object) yields nil rather than an error: array fields are type-checked, not
// nullish-checked, before falling back to empty.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	*l = nil
	if firstByte(b) != '[' {
		return nil
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	*l = out
	return nil
}
