package usn

// ReadV0 and ReadV1 are the read request layouts. There is no version 2
// request.
const (
	ReadV0 = V0
	ReadV1 = V1
)

// ReadRequest selects the journal, starting cursor and filter for a batch
// read. MinMajorVersion and MaxMajorVersion are only encoded for ReadV1.
//
// ReadRequest is a value; the With methods return modified copies.
type ReadRequest struct {
	Version           Version
	StartUSN          USN
	ReasonMask        Reason
	ReturnOnlyOnClose uint32
	Timeout           uint64
	BytesToWaitFor    uint64
	JournalID         uint64
	MinMajorVersion   uint16
	MaxMajorVersion   uint16
}

// NewReadRequest returns a request that reads d's journal from its first
// record, matching every reason, without blocking.
//
// Version 0 descriptors yield ReadV0 requests. Version 1 and 2 descriptors
// yield ReadV1 requests carrying the descriptor's major version range.
func NewReadRequest(d Descriptor) ReadRequest {
	j := d.Journal()
	r := ReadRequest{
		Version:    ReadV0,
		StartUSN:   j.FirstUSN,
		ReasonMask: ReasonAll,
		JournalID:  j.JournalID,
	}

	switch d := d.(type) {
	case DescriptorV1:
		r.Version = ReadV1
		r.MinMajorVersion = d.MinMajorVersion
		r.MaxMajorVersion = d.MaxMajorVersion
	case DescriptorV2:
		r.Version = ReadV1
		r.MinMajorVersion = d.MinMajorVersion
		r.MaxMajorVersion = d.MaxMajorVersion
	}

	return r
}

// WithStartUSN returns a copy of r that starts reading at u. Values beyond
// the journal's NextUSN are not rejected here; the device decides.
func (r ReadRequest) WithStartUSN(u USN) ReadRequest {
	r.StartUSN = u
	return r
}

// WithReasonMask returns a copy of r that only returns records matching mask.
func (r ReadRequest) WithReasonMask(mask Reason) ReadRequest {
	r.ReasonMask = mask
	return r
}

// WithReturnOnlyOnClose returns a copy of r that, when on is true, only
// returns records whose reason includes ReasonClose.
func (r ReadRequest) WithReturnOnlyOnClose(on bool) ReadRequest {
	r.ReturnOnlyOnClose = 0
	if on {
		r.ReturnOnlyOnClose = 1
	}
	return r
}

// WithWait returns a copy of r that asks the device to block until
// bytesToWaitFor bytes are available or timeout elapses. The timeout is in
// 100-nanosecond units as defined by the device. Zero values keep the
// non-blocking behaviour.
func (r ReadRequest) WithWait(timeout, bytesToWaitFor uint64) ReadRequest {
	r.Timeout = timeout
	r.BytesToWaitFor = bytesToWaitFor
	return r
}
