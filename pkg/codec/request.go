package codec

import (
	"encoding/binary"

	"github.com/ssargent/usnjournal/pkg/usn"
)

// EncodeReadRequest produces the exact native payload for r: 40 bytes for
// ReadV0 and 48 bytes for ReadV1. Padding bytes are zero.
func EncodeReadRequest(r usn.ReadRequest) ([]byte, error) {
	var buf []byte

	switch r.Version {
	case usn.ReadV0:
		buf = make([]byte, ReadRequestV0Size)
	case usn.ReadV1:
		buf = make([]byte, ReadRequestV1Size)
		binary.LittleEndian.PutUint16(buf[reqMinMajorVersion:], r.MinMajorVersion)
		binary.LittleEndian.PutUint16(buf[reqMaxMajorVersion:], r.MaxMajorVersion)
	default:
		return nil, &VersionError{Kind: "read request", Version: r.Version}
	}

	binary.LittleEndian.PutUint64(buf[reqStartUSN:], uint64(r.StartUSN))
	binary.LittleEndian.PutUint32(buf[reqReasonMask:], uint32(r.ReasonMask))
	binary.LittleEndian.PutUint32(buf[reqReturnOnlyOnClose:], r.ReturnOnlyOnClose)
	binary.LittleEndian.PutUint64(buf[reqTimeout:], r.Timeout)
	binary.LittleEndian.PutUint64(buf[reqBytesToWaitFor:], r.BytesToWaitFor)
	binary.LittleEndian.PutUint64(buf[reqJournalID:], r.JournalID)

	return buf, nil
}

// DecodeReadRequest is the inverse of EncodeReadRequest. The version is
// chosen by length.
func DecodeReadRequest(data []byte) (usn.ReadRequest, error) {
	var r usn.ReadRequest

	switch len(data) {
	case ReadRequestV0Size:
		r.Version = usn.ReadV0
	case ReadRequestV1Size:
		r.Version = usn.ReadV1
		r.MinMajorVersion = binary.LittleEndian.Uint16(data[reqMinMajorVersion:])
		r.MaxMajorVersion = binary.LittleEndian.Uint16(data[reqMaxMajorVersion:])
	default:
		return r, &SchemaError{Kind: "read request", Length: len(data)}
	}

	r.StartUSN = usn.USN(binary.LittleEndian.Uint64(data[reqStartUSN:]))
	r.ReasonMask = usn.Reason(binary.LittleEndian.Uint32(data[reqReasonMask:]))
	r.ReturnOnlyOnClose = binary.LittleEndian.Uint32(data[reqReturnOnlyOnClose:])
	r.Timeout = binary.LittleEndian.Uint64(data[reqTimeout:])
	r.BytesToWaitFor = binary.LittleEndian.Uint64(data[reqBytesToWaitFor:])
	r.JournalID = binary.LittleEndian.Uint64(data[reqJournalID:])

	return r, nil
}
