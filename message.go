package ipcmsg

import (
	"bytes"
	"fmt"
)

// Message is the envelope a scanner worker sends across the process
// boundary: a kind discriminant plus the kind-specific payload.
//
// A Message is built from typed field values on the producer side or by
// Decode on the consumer side. Construction copies its inputs, so a Message
// never aliases caller-owned memory. All accessors are safe on a nil
// receiver and report an absent message instead of faulting.
type Message struct {
	kind    Kind
	payload Payload
}

// NewHostname builds a hostname resolution record message. Both buffers are
// required; a nil buffer for either is a contract violation and fails
// cleanly without producing a message.
func NewHostname(source, hostname []byte) (*Message, error) {
	if source == nil || hostname == nil {
		return nil, fmt.Errorf("%w: hostname record requires source and hostname", ErrInvalidInput)
	}
	return &Message{
		kind: KindHostname,
		payload: &HostnameRecord{
			Source:   bytes.Clone(source),
			Hostname: bytes.Clone(hostname),
		},
	}, nil
}

// NewUserAgent builds a user-agent relay message.
func NewUserAgent(agent []byte) (*Message, error) {
	if agent == nil {
		return nil, fmt.Errorf("%w: user-agent record requires an agent string", ErrInvalidInput)
	}
	return &Message{
		kind:    KindUserAgent,
		payload: &UserAgentRecord{Agent: bytes.Clone(agent)},
	}, nil
}

// Kind returns the message's discriminant, or KindInvalid on an absent
// message.
func (m *Message) Kind() Kind {
	if m == nil {
		return KindInvalid
	}
	return m.kind
}

// Payload returns the kind-specific payload. The payload is owned by its
// message and must not be mutated concurrently with encoding it.
func (m *Message) Payload() Payload {
	if m == nil {
		return nil
	}
	return m.payload
}

// Hostname returns the payload as a hostname record if that is the
// message's kind.
func (m *Message) Hostname() (*HostnameRecord, bool) {
	r, ok := m.Payload().(*HostnameRecord)
	return r, ok
}

// UserAgent returns the payload as a user-agent record if that is the
// message's kind.
func (m *Message) UserAgent() (*UserAgentRecord, bool) {
	r, ok := m.Payload().(*UserAgentRecord)
	return r, ok
}
