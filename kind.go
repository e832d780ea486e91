package ipcmsg

import "strconv"

// Kind identifies which payload shape a Message carries. Its integer value
// is the "type" member of the wire document.
type Kind int

const (
	// KindInvalid is never a valid wire value. Accessors on an absent
	// message return it.
	KindInvalid Kind = -1

	// KindHostname is a hostname resolution record: a hostname a worker
	// associated with a scan target, plus the source of the association.
	KindHostname Kind = 0

	// KindUserAgent relays the user-agent string a worker settled on, so
	// the rest of the scan can reuse it.
	KindUserAgent Kind = 1
)

func (k Kind) String() string {
	switch k {
	case KindHostname:
		return "hostname"
	case KindUserAgent:
		return "user-agent"
	}
	return "unknown(" + strconv.Itoa(int(k)) + ")"
}
