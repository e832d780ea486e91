package ipcmsg

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// MaxMessageSize is the largest wire document Decode will accept. Inputs
// beyond it are rejected before parsing; the bytes come from another
// process and are not trusted.
var MaxMessageSize = int64(1024 * 1024) // 1 MB

// Logger is the diagnostic sink for wire decode failures. A failed decode
// usually means a protocol skew between producer and consumer, which is
// worth operator attention beyond the returned error. Nil falls back to
// slog.Default().
var Logger *slog.Logger

// Encoder defines the interface for message serialization and
// deserialization. Implementations include JSON, MessagePack, and Protocol
// Buffers encoders.
type Encoder interface {
	// Encode serializes m into wire bytes.
	Encode(m *Message) ([]byte, error)

	// Decode parses wire bytes into a Message.
	Decode(data []byte) (*Message, error)
}

// Encode produces the canonical JSON wire document for m: an object with
// the numeric "type" member plus the kind's string members.
func Encode(m *Message) ([]byte, error) {
	doc, err := ToFields(m)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// Decode parses one canonical JSON wire document into a Message. Malformed
// JSON and schema violations both fail without producing a message and are
// reported to Logger along with the offending input.
func Decode(data []byte) (*Message, error) {
	if int64(len(data)) > MaxMessageSize {
		err := fmt.Errorf("%w: document of %d bytes exceeds MaxMessageSize", ErrMalformedWire, len(data))
		logDecodeFailure(err, data)
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedWire, err)
		logDecodeFailure(err, data)
		return nil, err
	}
	m, err := FromFields(doc)
	if err != nil {
		logDecodeFailure(err, data)
		return nil, err
	}
	return m, nil
}

func logDecodeFailure(err error, data []byte) {
	log := Logger
	if log == nil {
		log = slog.Default()
	}
	log.Warn("unable to decode ipc message", "error", err, "input", clip(data))
}

// clip bounds the raw input attached to diagnostics.
func clip(data []byte) string {
	const max = 256
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
