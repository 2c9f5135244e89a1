// Package codec provides the binary layouts exchanged with a volume device's
// change journal.
//
// Every layout is little-endian with fixed, non-overlapping field offsets. The
// device interprets payloads at those offsets, so encoding must reproduce the
// native structures byte for byte, padding included. Offsets are written out
// per version in layout.go rather than derived from Go struct layout.
//
// # Descriptor Format
//
// A journal query returns one of three descriptor layouts. The version is
// determined by the number of bytes returned, never by field values:
//
//	V0 (56 bytes): [JournalID(8)][FirstUSN(8)][NextUSN(8)][LowestValidUSN(8)][MaxUSN(8)][MaximumSize(8)][AllocationDelta(8)]
//	V1 (60 bytes): V0 + [MinMajorVersion(2)][MaxMajorVersion(2)]
//	V2 (80 bytes): V1 + [Flags(4)][RangeTrackChunkSize(8)][RangeTrackFileSizeThreshold(8)]
//
// Any other length fails with a *SchemaError carrying the observed length.
//
// # Read Request Format
//
//	V0 (40 bytes): [StartUSN(8)][ReasonMask(4)][ReturnOnlyOnClose(4)][Timeout(8)][BytesToWaitFor(8)][JournalID(8)]
//	V1 (48 bytes): V0 + [MinMajorVersion(2)][MaxMajorVersion(2)][padding(4)]
//
// There is no V2 read request.
//
// # Record Batches
//
// A read returns the cursor for the next read in its first 8 bytes, followed by
// change records. SplitBatch separates the two without decoding the records.
//
// # Usage
//
//	desc, err := codec.DecodeDescriptor(resp[:n])
//	if err != nil {
//	    return err
//	}
//
//	payload, err := codec.EncodeReadRequest(usn.NewReadRequest(desc))
//	if err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package codec
