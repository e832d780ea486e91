package ipcmsg

import "errors"

// Every failing operation in this package returns an error wrapping one of
// these sentinels. Bad input is never fatal: the package does not panic and
// never terminates the process, it reports the failure and produces nothing.
var (
	// ErrInvalidInput reports a contract violation at construction, such as
	// a nil required buffer.
	ErrInvalidInput = errors.New("ipcmsg: invalid input")

	// ErrMalformedWire reports bytes that are not a parseable wire document.
	ErrMalformedWire = errors.New("ipcmsg: malformed wire document")

	// ErrSchemaViolation reports a parseable document missing the type
	// member, carrying an unrecognized kind, or missing a required member.
	// It usually indicates a protocol skew between producer and consumer.
	ErrSchemaViolation = errors.New("ipcmsg: wire document violates schema")
)
