package usn

import (
	"fmt"
	"sort"
	"strings"
)

// Reason is a bitmask of change reasons carried by journal records and used to
// filter read requests.
type Reason uint32

const (
	ReasonDataOverwrite             Reason = 0x00000001
	ReasonDataExtend                Reason = 0x00000002
	ReasonDataTruncation            Reason = 0x00000004
	ReasonNamedDataOverwrite        Reason = 0x00000010
	ReasonNamedDataExtend           Reason = 0x00000020
	ReasonNamedDataTruncation       Reason = 0x00000040
	ReasonFileCreate                Reason = 0x00000100
	ReasonFileDelete                Reason = 0x00000200
	ReasonEAChange                  Reason = 0x00000400
	ReasonSecurityChange            Reason = 0x00000800
	ReasonRenameOldName             Reason = 0x00001000
	ReasonRenameNewName             Reason = 0x00002000
	ReasonIndexableChange           Reason = 0x00004000
	ReasonBasicInfoChange           Reason = 0x00008000
	ReasonHardLinkChange            Reason = 0x00010000
	ReasonCompressionChange         Reason = 0x00020000
	ReasonEncryptionChange          Reason = 0x00040000
	ReasonObjectIDChange            Reason = 0x00080000
	ReasonReparsePointChange        Reason = 0x00100000
	ReasonStreamChange              Reason = 0x00200000
	ReasonTransactedChange          Reason = 0x00400000
	ReasonIntegrityChange           Reason = 0x00800000
	ReasonDesiredStorageClassChange Reason = 0x01000000
	ReasonClose                     Reason = 0x80000000

	// ReasonAll matches every record.
	ReasonAll Reason = 0xFFFFFFFF
)

var reasonNames = map[string]Reason{
	"data-overwrite":               ReasonDataOverwrite,
	"data-extend":                  ReasonDataExtend,
	"data-truncation":              ReasonDataTruncation,
	"named-data-overwrite":         ReasonNamedDataOverwrite,
	"named-data-extend":            ReasonNamedDataExtend,
	"named-data-truncation":        ReasonNamedDataTruncation,
	"file-create":                  ReasonFileCreate,
	"file-delete":                  ReasonFileDelete,
	"ea-change":                    ReasonEAChange,
	"security-change":              ReasonSecurityChange,
	"rename-old-name":              ReasonRenameOldName,
	"rename-new-name":              ReasonRenameNewName,
	"indexable-change":             ReasonIndexableChange,
	"basic-info-change":            ReasonBasicInfoChange,
	"hard-link-change":             ReasonHardLinkChange,
	"compression-change":           ReasonCompressionChange,
	"encryption-change":            ReasonEncryptionChange,
	"object-id-change":             ReasonObjectIDChange,
	"reparse-point-change":         ReasonReparsePointChange,
	"stream-change":                ReasonStreamChange,
	"transacted-change":            ReasonTransactedChange,
	"integrity-change":             ReasonIntegrityChange,
	"desired-storage-class-change": ReasonDesiredStorageClassChange,
	"close":                        ReasonClose,
}

// ReasonNames returns the known reason names sorted by bit value.
func ReasonNames() []string {
	names := make([]string, 0, len(reasonNames))
	for name := range reasonNames {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return reasonNames[names[i]] < reasonNames[names[j]]
	})
	return names
}

// LookupReason returns the bit for a reason name.
func LookupReason(name string) (Reason, bool) {
	r, ok := reasonNames[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// ParseReasons combines reason names into a mask. "all" selects ReasonAll.
// An empty list also selects ReasonAll.
func ParseReasons(names []string) (Reason, error) {
	if len(names) == 0 {
		return ReasonAll, nil
	}

	var mask Reason
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			return ReasonAll, nil
		}
		r, ok := LookupReason(name)
		if !ok {
			return 0, fmt.Errorf("unknown reason %q", name)
		}
		mask |= r
	}

	return mask, nil
}

// String renders the mask as "|"-separated reason names. Bits without a name
// are rendered in hex.
func (r Reason) String() string {
	if r == ReasonAll {
		return "all"
	}
	if r == 0 {
		return "none"
	}

	var parts []string
	rest := r
	for _, name := range ReasonNames() {
		bit := reasonNames[name]
		if r&bit != 0 {
			parts = append(parts, name)
			rest &^= bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}

	return strings.Join(parts, "|")
}
