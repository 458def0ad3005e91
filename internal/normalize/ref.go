package normalize

import "encoding/json"

// Ref is a foreign-key field the API sends either as a bare integer id (the
// canonical form the rule tables accept) or as a nested {id, ...} object.
// Decoding flattens the id; Object is kept only for the nested form. Any
// other scalar leaves the Ref empty, so the owning field falls back to its
// default.
type Ref struct {
	ID     int64
	Object json.RawMessage
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	r.ID = 0
	r.Object = nil

	if firstByte(b) != '{' {
		var id int64
		if err := json.Unmarshal(b, &id); err == nil {
			r.ID = id
		}
		return nil
	}

	var head struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil
	}

	r.ID = head.ID
	r.Object = append(json.RawMessage(nil), b...)
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.Object != nil {
		return r.Object, nil
	}
	return json.Marshal(r.ID)
}

// RefID flattens an optional reference to its id, falling back to def.
func RefID(r *Ref, def int64) int64 {
	if r == nil || r.ID == 0 {
		return def
	}
	return r.ID
}

// RefObject returns the preserved nested object, nil when none was sent.
func RefObject(r *Ref) json.RawMessage {
	if r == nil {
		return nil
	}
	return r.Object
}

func firstByte(b []byte) byte {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return c
	}
	return 0
}
