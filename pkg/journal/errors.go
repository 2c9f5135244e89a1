package journal

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/ssargent/usnjournal/pkg/codec"
)

// Native codes reported by the control calls that callers commonly act on.
const (
	CodeInvalidFunction         syscall.Errno = 1    // ERROR_INVALID_FUNCTION
	CodeAccessDenied            syscall.Errno = 5    // ERROR_ACCESS_DENIED
	CodeInvalidHandle           syscall.Errno = 6    // ERROR_INVALID_HANDLE
	CodeNotReady                syscall.Errno = 21   // ERROR_NOT_READY
	CodeHandleEOF               syscall.Errno = 38   // ERROR_HANDLE_EOF
	CodeInvalidParameter        syscall.Errno = 87   // ERROR_INVALID_PARAMETER
	CodeInsufficientBuffer      syscall.Errno = 122  // ERROR_INSUFFICIENT_BUFFER
	CodeBusy                    syscall.Errno = 170  // ERROR_BUSY
	CodeMoreData                syscall.Errno = 234  // ERROR_MORE_DATA
	CodeJournalDeleteInProgress syscall.Errno = 1178 // ERROR_JOURNAL_DELETE_IN_PROGRESS
	CodeJournalNotActive        syscall.Errno = 1179 // ERROR_JOURNAL_NOT_ACTIVE
	CodeJournalEntryDeleted     syscall.Errno = 1181 // ERROR_JOURNAL_ENTRY_DELETED
	CodeInvalidUserBuffer       syscall.Errno = 1784 // ERROR_INVALID_USER_BUFFER
)

var codeText = map[syscall.Errno]string{
	CodeInvalidFunction:         "invalid function",
	CodeAccessDenied:            "access denied",
	CodeInvalidHandle:           "invalid handle",
	CodeNotReady:                "device not ready",
	CodeHandleEOF:               "end of file",
	CodeInvalidParameter:        "invalid parameter",
	CodeInsufficientBuffer:      "insufficient buffer",
	CodeBusy:                    "device busy",
	CodeMoreData:                "more data available",
	CodeJournalDeleteInProgress: "journal delete in progress",
	CodeJournalNotActive:        "journal not active",
	CodeJournalEntryDeleted:     "journal entry deleted",
	CodeInvalidUserBuffer:       "invalid user buffer",
}

// ErrMalformedResponse matches every *MalformedResponseError.
var ErrMalformedResponse = errors.New("malformed response")

// Kind is the class of a failure returned by this package.
type Kind int

const (
	KindNone Kind = iota
	KindUnrecognizedSchema
	KindDeviceCallFailed
	KindMalformedResponse
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnrecognizedSchema:
		return "unrecognized_schema"
	case KindDeviceCallFailed:
		return "device_call_failed"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// DeviceError reports a control call that the device failed.
type DeviceError struct {
	Op   string        // Control call name
	Code syscall.Errno // Native code, zero when the device gave none
	Err  error         // Error returned by the device
}

func newDeviceError(op string, err error) *DeviceError {
	e := &DeviceError{Op: op, Err: err}
	if errno, ok := errnoOf(err); ok {
		e.Code = errno
	}
	return e
}

func (e *DeviceError) Error() string {
	if text, ok := codeText[e.Code]; ok {
		return fmt.Sprintf("%s: device call failed: %s (code %d)", e.Op, text, uint32(e.Code))
	}
	return fmt.Sprintf("%s: device call failed: %v", e.Op, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a successful call whose output is too short
// to hold the smallest valid response.
type MalformedResponseError struct {
	Op      string
	Length  int
	Minimum int
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %d bytes returned, need at least %d", e.Op, e.Length, e.Minimum)
}

// Is makes errors.Is(err, ErrMalformedResponse) true.
func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// Classify returns the kind of err. It only inspects the error value.
func Classify(err error) Kind {
	var deviceErr *DeviceError

	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, codec.ErrUnrecognizedSchema):
		return KindUnrecognizedSchema
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.As(err, &deviceErr):
		return KindDeviceCallFailed
	default:
		return KindUnknown
	}
}

// Code returns the native code carried by err, if any.
func Code(err error) (syscall.Errno, bool) {
	var deviceErr *DeviceError
	if errors.As(err, &deviceErr) && deviceErr.Code != 0 {
		return deviceErr.Code, true
	}
	return 0, false
}

// IsJournalReset reports whether err means the journal the request referred
// to is being deleted or is not active. Cursors taken from it are invalid;
// query the descriptor again.
func IsJournalReset(err error) bool {
	code, ok := Code(err)
	return ok && (code == CodeJournalDeleteInProgress || code == CodeJournalNotActive)
}

// IsCursorExpired reports whether the start USN is older than the journal's
// lowest valid USN. The journal is unchanged; records before its lowest
// valid USN have been purged.
func IsCursorExpired(err error) bool {
	code, ok := Code(err)
	return ok && code == CodeJournalEntryDeleted
}

// IsTransient reports whether err is a device condition that may clear on
// its own.
func IsTransient(err error) bool {
	code, ok := Code(err)
	return ok && (code == CodeNotReady || code == CodeBusy)
}

// IsBufferTooSmall reports whether the output buffer was rejected as too
// small for a single record.
func IsBufferTooSmall(err error) bool {
	code, ok := Code(err)
	if !ok {
		return false
	}
	return code == CodeInsufficientBuffer || code == CodeMoreData || code == CodeInvalidUserBuffer
}
