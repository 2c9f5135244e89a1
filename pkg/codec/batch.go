package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/ssargent/usnjournal/pkg/usn"
)

// SplitBatch separates a record batch into the cursor for the next read and
// the raw record bytes that follow it. The records are not inspected.
func SplitBatch(batch []byte) (usn.USN, []byte, error) {
	if len(batch) < BatchCursorSize {
		return 0, nil, fmt.Errorf("%w: %d < %d", ErrShortBatch, len(batch), BatchCursorSize)
	}

	next := usn.USN(binary.LittleEndian.Uint64(batch[:BatchCursorSize]))
	return next, batch[BatchCursorSize:], nil
}
