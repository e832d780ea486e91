package ipcmsg

import "fmt"

// ToFields lowers a Message into its wire document tree: a map holding the
// numeric "type" member plus the payload's members. Every encoder works
// from this one representation.
//
// A message whose kind carries no payload produces a document with only
// "type". That keeps encoding total when facing a kind this side has no
// shape for; the receiving decoder applies its own rules to the result.
func ToFields(m *Message) (map[string]any, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: cannot encode absent message", ErrInvalidInput)
	}
	doc := map[string]any{"type": int(m.kind)}
	if m.payload == nil {
		return doc, nil
	}
	for _, f := range m.payload.fields() {
		doc[f.name] = f.get()
	}
	return doc, nil
}

// FromFields rebuilds a Message from a wire document tree. It is the one
// validation path shared by every decoder: the "type" member must be
// present and recognized, and every member the kind requires must be
// present as a string. Unrecognized extra members are ignored for forward
// compatibility. On any failure no Message is produced.
func FromFields(doc map[string]any) (*Message, error) {
	raw, ok := doc["type"]
	if !ok {
		return nil, fmt.Errorf("%w: document has no type member", ErrSchemaViolation)
	}
	n, ok := asInt(raw)
	if !ok {
		return nil, fmt.Errorf("%w: type member is not an integer (%T)", ErrSchemaViolation, raw)
	}
	kind := Kind(n)
	payload := payloadForKind(kind)
	if payload == nil {
		return nil, fmt.Errorf("%w: unrecognized message kind %d", ErrSchemaViolation, n)
	}
	for _, f := range payload.fields() {
		v, ok := doc[f.name]
		if !ok {
			return nil, fmt.Errorf("%w: kind %s is missing required member %q", ErrSchemaViolation, kind, f.name)
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: kind %s member %q is not a string (%T)", ErrSchemaViolation, kind, f.name, v)
		}
		f.set(s)
	}
	return &Message{kind: kind, payload: payload}, nil
}

// asInt normalizes the discriminant representations the supported formats
// produce: encoding/json and structpb hand back float64, msgpack hands back
// whichever integer width the wire used.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		i := int(n)
		if float64(i) != n {
			return 0, false
		}
		return i, true
	}
	return 0, false
}
