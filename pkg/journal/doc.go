// Package journal issues change journal control calls against a volume device.
//
// The package is stateless. Each operation performs exactly one synchronous
// control call on a caller-owned Device and returns either a decoded result or a
// typed error; nothing is retried, cached or persisted.
//
//	desc, err := journal.QueryDescriptor(dev)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]byte, 64*1024)
//	batch, err := journal.ReadBatch(dev, usn.NewReadRequest(desc), buf)
//	switch journal.Classify(err) {
//	case journal.KindNone:
//	    next, records, _ := codec.SplitBatch(batch)
//	    ...
//	case journal.KindDeviceCallFailed:
//	    if journal.IsJournalReset(err) {
//	        // query again and restart from the new journal's first USN
//	    }
//	}
//
// Catching up to the journal's NextUSN takes one ReadBatch per buffer; the
// loop that advances the cursor belongs to the caller.
package journal
