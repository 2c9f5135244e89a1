package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/ssargent/usnjournal/pkg/usn"
)

// DecodeDescriptor decodes a query response. The version is chosen by the
// length of data alone: 56 bytes is V0, 60 is V1 and 80 is V2. Any other
// length, including zero, returns a *SchemaError.
func DecodeDescriptor(data []byte) (usn.Descriptor, error) {
	switch len(data) {
	case DescriptorV0Size:
		return usn.DescriptorV0{
			JournalData: decodeJournalData(data),
		}, nil

	case DescriptorV1Size:
		return usn.DescriptorV1{
			JournalData:     decodeJournalData(data),
			MinMajorVersion: binary.LittleEndian.Uint16(data[descMinMajorVersion:]),
			MaxMajorVersion: binary.LittleEndian.Uint16(data[descMaxMajorVersion:]),
		}, nil

	case DescriptorV2Size:
		return usn.DescriptorV2{
			JournalData:                 decodeJournalData(data),
			MinMajorVersion:             binary.LittleEndian.Uint16(data[descMinMajorVersion:]),
			MaxMajorVersion:             binary.LittleEndian.Uint16(data[descMaxMajorVersion:]),
			Flags:                       binary.LittleEndian.Uint32(data[descFlags:]),
			RangeTrackChunkSize:         binary.LittleEndian.Uint64(data[descRangeTrackChunkSize:]),
			RangeTrackFileSizeThreshold: int64(binary.LittleEndian.Uint64(data[descRangeTrackFileSizeThreshold:])),
		}, nil

	default:
		return nil, &SchemaError{Kind: "descriptor", Length: len(data)}
	}
}

// EncodeDescriptor produces the device representation of d. It is the
// inverse of DecodeDescriptor and is used to build simulated responses.
func EncodeDescriptor(d usn.Descriptor) ([]byte, error) {
	var buf []byte

	switch d := d.(type) {
	case usn.DescriptorV0:
		buf = make([]byte, DescriptorV0Size)
		encodeJournalData(buf, d.JournalData)

	case usn.DescriptorV1:
		buf = make([]byte, DescriptorV1Size)
		encodeJournalData(buf, d.JournalData)
		binary.LittleEndian.PutUint16(buf[descMinMajorVersion:], d.MinMajorVersion)
		binary.LittleEndian.PutUint16(buf[descMaxMajorVersion:], d.MaxMajorVersion)

	case usn.DescriptorV2:
		buf = make([]byte, DescriptorV2Size)
		encodeJournalData(buf, d.JournalData)
		binary.LittleEndian.PutUint16(buf[descMinMajorVersion:], d.MinMajorVersion)
		binary.LittleEndian.PutUint16(buf[descMaxMajorVersion:], d.MaxMajorVersion)
		binary.LittleEndian.PutUint32(buf[descFlags:], d.Flags)
		binary.LittleEndian.PutUint64(buf[descRangeTrackChunkSize:], d.RangeTrackChunkSize)
		binary.LittleEndian.PutUint64(buf[descRangeTrackFileSizeThreshold:], uint64(d.RangeTrackFileSizeThreshold))

	default:
		return nil, fmt.Errorf("unknown descriptor type %T", d)
	}

	return buf, nil
}

func decodeJournalData(data []byte) usn.JournalData {
	return usn.JournalData{
		JournalID:       binary.LittleEndian.Uint64(data[descJournalID:]),
		FirstUSN:        usn.USN(binary.LittleEndian.Uint64(data[descFirstUSN:])),
		NextUSN:         usn.USN(binary.LittleEndian.Uint64(data[descNextUSN:])),
		LowestValidUSN:  usn.USN(binary.LittleEndian.Uint64(data[descLowestValidUSN:])),
		MaxUSN:          usn.USN(binary.LittleEndian.Uint64(data[descMaxUSN:])),
		MaximumSize:     binary.LittleEndian.Uint64(data[descMaximumSize:]),
		AllocationDelta: binary.LittleEndian.Uint64(data[descAllocationDelta:]),
	}
}

func encodeJournalData(buf []byte, j usn.JournalData) {
	binary.LittleEndian.PutUint64(buf[descJournalID:], j.JournalID)
	binary.LittleEndian.PutUint64(buf[descFirstUSN:], uint64(j.FirstUSN))
	binary.LittleEndian.PutUint64(buf[descNextUSN:], uint64(j.NextUSN))
	binary.LittleEndian.PutUint64(buf[descLowestValidUSN:], uint64(j.LowestValidUSN))
	binary.LittleEndian.PutUint64(buf[descMaxUSN:], uint64(j.MaxUSN))
	binary.LittleEndian.PutUint64(buf[descMaximumSize:], j.MaximumSize)
	binary.LittleEndian.PutUint64(buf[descAllocationDelta:], j.AllocationDelta)
}
