package usn

import "fmt"

// USN is an update sequence number, a cursor into the change journal.
type USN uint64

// Version identifies a versioned binary layout.
type Version uint8

const (
	V0 Version = 0
	V1 Version = 1
	V2 Version = 2
)

func (v Version) String() string {
	return fmt.Sprintf("v%d", uint8(v))
}
