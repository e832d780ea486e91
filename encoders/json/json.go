// Package json provides the canonical JSON encoder for ipc messages.
// It produces the same wire documents as ipcmsg.Encode and ipcmsg.Decode,
// behind the ipcmsg.Encoder interface for callers that select the wire
// format at runtime.
package json

import (
	"github.com/openscan/ipcmsg"
)

// Encoder implements ipcmsg.Encoder using the canonical JSON wire format.
type Encoder struct{}

var _ ipcmsg.Encoder = &Encoder{}

// Encode serializes m to a JSON wire document.
func (e *Encoder) Encode(m *ipcmsg.Message) ([]byte, error) {
	return ipcmsg.Encode(m)
}

// Decode parses a JSON wire document into a Message.
func (e *Encoder) Decode(data []byte) (*ipcmsg.Message, error) {
	return ipcmsg.Decode(data)
}

// New creates a new JSON encoder.
func New() *Encoder {
	return &Encoder{}
}
