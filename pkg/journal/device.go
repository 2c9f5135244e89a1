package journal

import "fmt"

// Control codes for the change journal.
const (
	// FSCTLQueryUSNJournal is FSCTL_QUERY_USN_JOURNAL.
	FSCTLQueryUSNJournal uint32 = 0x000900F4

	// FSCTLReadUSNJournal is FSCTL_READ_USN_JOURNAL.
	FSCTLReadUSNJournal uint32 = 0x000900BB
)

// Device performs synchronous buffer-in/buffer-out control calls against an
// open volume. Control passes in as the input payload, fills out, and returns
// the number of bytes written to out. A nil or empty in means no input.
//
// Implementations own the handle. This package never opens, closes or locks
// it. Sharing one Device between goroutines is only safe when the underlying
// device serializes control requests.
type Device interface {
	Control(code uint32, in, out []byte) (int, error)
}

// DeviceFunc adapts a function to the Device interface.
type DeviceFunc func(code uint32, in, out []byte) (int, error)

// Control calls f.
func (f DeviceFunc) Control(code uint32, in, out []byte) (int, error) {
	return f(code, in, out)
}

// ControlName returns a readable name for a control code.
func ControlName(code uint32) string {
	switch code {
	case FSCTLQueryUSNJournal:
		return "query_usn_journal"
	case FSCTLReadUSNJournal:
		return "read_usn_journal"
	default:
		return fmt.Sprintf("control_0x%08x", code)
	}
}
