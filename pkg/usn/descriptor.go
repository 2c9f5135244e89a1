package usn

// FlagTrackModifiedRangesEnable is set in DescriptorV2.Flags when range
// tracking is enabled for the journal.
const FlagTrackModifiedRangesEnable uint32 = 0x00000001

// Descriptor is the state of a change journal as returned by a query. It is
// one of DescriptorV0, DescriptorV1 or DescriptorV2.
type Descriptor interface {
	// Version returns the layout version the descriptor was decoded from.
	Version() Version

	// Journal returns the fields common to every version.
	Journal() JournalData

	isDescriptor()
}

// JournalData holds the fields shared by every descriptor version.
type JournalData struct {
	JournalID       uint64 // Identity of the current journal instance
	FirstUSN        USN    // First record that can be read
	NextUSN         USN    // Number assigned to the next record written
	LowestValidUSN  USN    // First record written to this journal instance
	MaxUSN          USN    // Largest USN the journal can assign
	MaximumSize     uint64 // Target maximum journal size in bytes
	AllocationDelta uint64 // Growth and truncation unit in bytes
}

// Journal returns d.
func (d JournalData) Journal() JournalData {
	return d
}

// DescriptorV0 is a version 0 descriptor.
type DescriptorV0 struct {
	JournalData
}

// DescriptorV1 is a version 1 descriptor. It adds the range of read request
// major versions the volume accepts.
type DescriptorV1 struct {
	JournalData
	MinMajorVersion uint16
	MaxMajorVersion uint16
}

// DescriptorV2 is a version 2 descriptor. It adds range tracking parameters.
type DescriptorV2 struct {
	JournalData
	MinMajorVersion             uint16
	MaxMajorVersion             uint16
	Flags                       uint32
	RangeTrackChunkSize         uint64
	RangeTrackFileSizeThreshold int64
}

func (DescriptorV0) Version() Version { return V0 }
func (DescriptorV1) Version() Version { return V1 }
func (DescriptorV2) Version() Version { return V2 }

func (DescriptorV0) isDescriptor() {}
func (DescriptorV1) isDescriptor() {}
func (DescriptorV2) isDescriptor() {}

// TracksModifiedRanges reports whether range tracking is enabled.
func (d DescriptorV2) TracksModifiedRanges() bool {
	return d.Flags&FlagTrackModifiedRangesEnable != 0
}

// SameJournal reports whether a and b describe the same journal instance.
// A false result means the journal was deleted or recreated between the two
// queries, and any cursor taken from a is no longer valid.
func SameJournal(a, b Descriptor) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Journal().JournalID == b.Journal().JournalID
}
