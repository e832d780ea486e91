package ipcmsg

// A wireField describes one required member of a payload's wire document.
// The generic codec loops over a payload's fields for both encoding and
// decoding, so a kind's construction, encoding, and decoding stay in
// lockstep by definition.
type wireField struct {
	name string
	get  func() string
	set  func(string)
}

// Payload is the kind-specific data a Message carries. The interface is
// sealed: every kind lives in this package, alongside its row in the
// dispatch table.
type Payload interface {
	Kind() Kind

	fields() []wireField
}

// HostnameRecord reports a hostname-to-source association a worker
// discovered during a scan. Both members are raw byte buffers whose slice
// length is authoritative; the contents need not be printable or
// NUL-terminated.
type HostnameRecord struct {
	// Source identifies where the association originated, e.g. the scan
	// target specification.
	Source []byte

	// Hostname is the resolved or associated hostname.
	Hostname []byte
}

func (r *HostnameRecord) Kind() Kind { return KindHostname }

func (r *HostnameRecord) fields() []wireField {
	return []wireField{
		{"source", func() string { return string(r.Source) }, func(s string) { r.Source = []byte(s) }},
		{"hostname", func() string { return string(r.Hostname) }, func(s string) { r.Hostname = []byte(s) }},
	}
}

// UserAgentRecord relays the user-agent string a worker uses for its
// requests.
type UserAgentRecord struct {
	Agent []byte
}

func (r *UserAgentRecord) Kind() Kind { return KindUserAgent }

func (r *UserAgentRecord) fields() []wireField {
	return []wireField{
		{"user-agent", func() string { return string(r.Agent) }, func(s string) { r.Agent = []byte(s) }},
	}
}

// payloadForKind allocates the payload shape for a wire discriminant, or nil
// for an unrecognized one.
func payloadForKind(kind Kind) Payload {
	switch kind {
	case KindHostname:
		return &HostnameRecord{}
	case KindUserAgent:
		return &UserAgentRecord{}
	}
	return nil
}
