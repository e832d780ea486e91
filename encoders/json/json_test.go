package json

import (
	"bytes"
	"errors"
	"testing"

	"github.com/openscan/ipcmsg"
)

func TestEncoderEncode(t *testing.T) {
	encoder := New()

	msg, err := ipcmsg.NewHostname([]byte("192.0.2.1"), []byte("example.test"))
	if err != nil {
		t.Fatalf("NewHostname() failed: %v", err)
	}

	encoded, err := encoder.Encode(msg)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	expected := `{"hostname":"example.test","source":"192.0.2.1","type":0}`
	if string(encoded) != expected {
		t.Errorf("Expected %s, got %s", expected, string(encoded))
	}
}

func TestEncoderDecode(t *testing.T) {
	encoder := New()

	msg, err := encoder.Decode([]byte(`{"type":0,"source":"192.0.2.1","hostname":"example.test"}`))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	record, ok := msg.Hostname()
	if !ok {
		t.Fatal("Expected a hostname record payload")
	}
	if !bytes.Equal(record.Source, []byte("192.0.2.1")) {
		t.Errorf("Expected source '192.0.2.1', got '%s'", record.Source)
	}
	if !bytes.Equal(record.Hostname, []byte("example.test")) {
		t.Errorf("Expected hostname 'example.test', got '%s'", record.Hostname)
	}
}

func TestEncoderDecodeRejectsTruncatedInput(t *testing.T) {
	encoder := New()

	msg, err := encoder.Decode([]byte(`{ "type": 0, `))
	if msg != nil {
		t.Error("Expected no message")
	}
	if !errors.Is(err, ipcmsg.ErrMalformedWire) {
		t.Errorf("Expected ErrMalformedWire, got %v", err)
	}
}

func TestEncoderEncodeDecodeRoundTrip(t *testing.T) {
	encoder := New()

	original, err := ipcmsg.NewUserAgent([]byte("Mozilla/5.0 (scanner)"))
	if err != nil {
		t.Fatalf("NewUserAgent() failed: %v", err)
	}

	encoded, err := encoder.Encode(original)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	decoded, err := encoder.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	record, ok := decoded.UserAgent()
	if !ok {
		t.Fatal("Expected a user-agent record payload")
	}
	if !bytes.Equal(record.Agent, []byte("Mozilla/5.0 (scanner)")) {
		t.Errorf("Expected agent 'Mozilla/5.0 (scanner)', got '%s'", record.Agent)
	}
}
