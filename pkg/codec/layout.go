package codec

// Byte offsets of descriptor fields. Versions share a prefix; each later
// version appends fields to the previous one.
//
//	V0 (56): [JournalID(8)][FirstUSN(8)][NextUSN(8)][LowestValidUSN(8)][MaxUSN(8)][MaximumSize(8)][AllocationDelta(8)]
//	V1 (60): V0 + [MinMajorVersion(2)][MaxMajorVersion(2)]
//	V2 (80): V1 + [Flags(4)][RangeTrackChunkSize(8)][RangeTrackFileSizeThreshold(8)]
const (
	descJournalID                   = 0
	descFirstUSN                    = 8
	descNextUSN                     = 16
	descLowestValidUSN              = 24
	descMaxUSN                      = 32
	descMaximumSize                 = 40
	descAllocationDelta             = 48
	descMinMajorVersion             = 56
	descMaxMajorVersion             = 58
	descFlags                       = 60
	descRangeTrackChunkSize         = 64
	descRangeTrackFileSizeThreshold = 72
)

// Encoded descriptor sizes. The largest is the buffer size a query must offer.
const (
	DescriptorV0Size = 56
	DescriptorV1Size = 60
	DescriptorV2Size = 80

	MaxDescriptorSize = DescriptorV2Size
)

// Byte offsets of read request fields.
//
//	V0 (40): [StartUSN(8)][ReasonMask(4)][ReturnOnlyOnClose(4)][Timeout(8)][BytesToWaitFor(8)][JournalID(8)]
//	V1 (48): V0 + [MinMajorVersion(2)][MaxMajorVersion(2)][padding(4)]
//
// The V1 payload ends in 4 zero bytes because the native structure is padded
// to the 8-byte alignment of its largest member.
const (
	reqStartUSN          = 0
	reqReasonMask        = 8
	reqReturnOnlyOnClose = 12
	reqTimeout           = 16
	reqBytesToWaitFor    = 24
	reqJournalID         = 32
	reqMinMajorVersion   = 40
	reqMaxMajorVersion   = 42
)

// Encoded read request sizes.
const (
	ReadRequestV0Size = 40
	ReadRequestV1Size = 48
)

// BatchCursorSize is the length of the next-cursor prefix of a record batch.
const BatchCursorSize = 8
