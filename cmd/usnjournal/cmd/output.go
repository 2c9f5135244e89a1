/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ssargent/usnjournal/pkg/journal"
	"github.com/ssargent/usnjournal/pkg/usn"
)

// descriptorView is the printable form of a descriptor.
type descriptorView struct {
	Version                     string  `json:"version"`
	JournalID                   string  `json:"journal_id"`
	FirstUSN                    uint64  `json:"first_usn"`
	NextUSN                     uint64  `json:"next_usn"`
	LowestValidUSN              uint64  `json:"lowest_valid_usn"`
	MaxUSN                      uint64  `json:"max_usn"`
	MaximumSize                 uint64  `json:"maximum_size"`
	AllocationDelta             uint64  `json:"allocation_delta"`
	MinMajorVersion             *uint16 `json:"min_major_version,omitempty"`
	MaxMajorVersion             *uint16 `json:"max_major_version,omitempty"`
	Flags                       *uint32 `json:"flags,omitempty"`
	RangeTrackChunkSize         *uint64 `json:"range_track_chunk_size,omitempty"`
	RangeTrackFileSizeThreshold *int64  `json:"range_track_file_size_threshold,omitempty"`
}

func newDescriptorView(desc usn.Descriptor) descriptorView {
	j := desc.Journal()
	v := descriptorView{
		Version:         desc.Version().String(),
		JournalID:       fmt.Sprintf("0x%016x", j.JournalID),
		FirstUSN:        uint64(j.FirstUSN),
		NextUSN:         uint64(j.NextUSN),
		LowestValidUSN:  uint64(j.LowestValidUSN),
		MaxUSN:          uint64(j.MaxUSN),
		MaximumSize:     j.MaximumSize,
		AllocationDelta: j.AllocationDelta,
	}

	switch d := desc.(type) {
	case usn.DescriptorV1:
		v.MinMajorVersion = &d.MinMajorVersion
		v.MaxMajorVersion = &d.MaxMajorVersion
	case usn.DescriptorV2:
		v.MinMajorVersion = &d.MinMajorVersion
		v.MaxMajorVersion = &d.MaxMajorVersion
		v.Flags = &d.Flags
		v.RangeTrackChunkSize = &d.RangeTrackChunkSize
		v.RangeTrackFileSizeThreshold = &d.RangeTrackFileSizeThreshold
	}

	return v
}

func printDescriptor(w io.Writer, desc usn.Descriptor, format string) error {
	v := newDescriptorView(desc)

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	fmt.Fprintf(w, "Version:           %s\n", v.Version)
	fmt.Fprintf(w, "Journal ID:        %s\n", v.JournalID)
	fmt.Fprintf(w, "First USN:         %d\n", v.FirstUSN)
	fmt.Fprintf(w, "Next USN:          %d\n", v.NextUSN)
	fmt.Fprintf(w, "Lowest valid USN:  %d\n", v.LowestValidUSN)
	fmt.Fprintf(w, "Max USN:           %d\n", v.MaxUSN)
	fmt.Fprintf(w, "Maximum size:      %d\n", v.MaximumSize)
	fmt.Fprintf(w, "Allocation delta:  %d\n", v.AllocationDelta)
	if v.MinMajorVersion != nil {
		fmt.Fprintf(w, "Major versions:    %d-%d\n", *v.MinMajorVersion, *v.MaxMajorVersion)
	}
	if v.Flags != nil {
		fmt.Fprintf(w, "Flags:             0x%08x\n", *v.Flags)
		fmt.Fprintf(w, "Range chunk size:  %d\n", *v.RangeTrackChunkSize)
		fmt.Fprintf(w, "Range threshold:   %d\n", *v.RangeTrackFileSizeThreshold)
	}

	return nil
}

// describeFailure adds the caller-side hint for a classified error.
func describeFailure(err error) error {
	kind := journal.Classify(err)

	switch {
	case journal.IsJournalReset(err):
		return fmt.Errorf("%s: %w (journal was reset; query again and restart from its first USN)", kind, err)
	case journal.IsCursorExpired(err):
		return fmt.Errorf("%s: %w (start USN was purged; restart from the journal's lowest valid USN)", kind, err)
	case journal.IsTransient(err):
		return fmt.Errorf("%s: %w (device busy; try again later)", kind, err)
	case journal.IsBufferTooSmall(err):
		return fmt.Errorf("%s: %w (increase --buffer-size)", kind, err)
	default:
		return fmt.Errorf("%s: %w", kind, err)
	}
}
