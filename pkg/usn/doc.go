// Package usn models the NTFS/ReFS update sequence number (USN) change journal.
//
// The package holds the in-memory, version-aware values exchanged with a volume
// device: the journal Descriptor returned by a query, and the ReadRequest used to
// fetch a batch of raw change records. It performs no I/O and knows nothing about
// the binary layout of these values; see package codec for that.
//
// # Descriptors
//
// A Descriptor is one of DescriptorV0, DescriptorV1 or DescriptorV2. The variant
// is chosen by the codec from the length of the device response and is never
// inferred from field values:
//
//	desc, err := journal.QueryDescriptor(dev)
//	if err != nil {
//	    return err
//	}
//	switch d := desc.(type) {
//	case usn.DescriptorV2:
//	    fmt.Println(d.TracksModifiedRanges())
//	}
//
// A caller that sees a different JournalID between two queries must treat every
// cursor obtained from the old journal as invalid.
//
// # Read requests
//
// NewReadRequest derives a request from a descriptor. The builder methods return
// modified copies and never touch the device:
//
//	req := usn.NewReadRequest(desc).
//	    WithStartUSN(cursor).
//	    WithReasonMask(usn.ReasonFileCreate | usn.ReasonFileDelete)
//
// There is no version 2 read request. Version 2 descriptors produce version 1
// requests.
package usn
