package journal

import (
	"fmt"

	"github.com/ssargent/usnjournal/pkg/codec"
	"github.com/ssargent/usnjournal/pkg/usn"
)

// QueryDescriptor asks dev for the current journal descriptor. The response
// buffer is sized for the largest known layout and only the bytes the device
// reports as written are decoded; their count selects the version.
//
// Consecutive calls may return different journal ids if the journal was
// recreated in between.
func QueryDescriptor(dev Device) (usn.Descriptor, error) {
	var out [codec.MaxDescriptorSize]byte

	n, err := dev.Control(FSCTLQueryUSNJournal, nil, out[:])
	if err != nil {
		return nil, newDeviceError(ControlName(FSCTLQueryUSNJournal), err)
	}
	if n < 0 || n > len(out) {
		return nil, &MalformedResponseError{
			Op:      ControlName(FSCTLQueryUSNJournal),
			Length:  n,
			Minimum: codec.DescriptorV0Size,
		}
	}

	desc, err := codec.DecodeDescriptor(out[:n])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ControlName(FSCTLQueryUSNJournal), err)
	}

	return desc, nil
}

// ReadBatch reads one batch of change records described by req into buf and
// returns the populated prefix of buf. The first 8 bytes of the result are the
// cursor for the next read; see codec.SplitBatch.
//
// buf is owned by the caller and determines the batch size. One call fills at
// most one buffer. On error buf is not interpreted.
func ReadBatch(dev Device, req usn.ReadRequest, buf []byte) ([]byte, error) {
	payload, err := codec.EncodeReadRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ControlName(FSCTLReadUSNJournal), err)
	}

	n, err := dev.Control(FSCTLReadUSNJournal, payload, buf)
	if err != nil {
		return nil, newDeviceError(ControlName(FSCTLReadUSNJournal), err)
	}
	if n < codec.BatchCursorSize || n > len(buf) {
		return nil, &MalformedResponseError{
			Op:      ControlName(FSCTLReadUSNJournal),
			Length:  n,
			Minimum: codec.BatchCursorSize,
		}
	}

	return buf[:n], nil
}
