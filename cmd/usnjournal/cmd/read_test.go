package cmd

import (
	"testing"

	"github.com/ssargent/usnjournal/pkg/journal"
	"github.com/ssargent/usnjournal/pkg/usn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCommand(t *testing.T) {
	t.Run("reads from the first usn by default", func(t *testing.T) {
		vol := testVolume()

		out, err := runCommand(t, vol, "read")
		require.NoError(t, err)

		require.Len(t, vol.requests, 1)
		req := vol.requests[0]
		assert.Equal(t, usn.ReadV1, req.Version)
		assert.Equal(t, usn.USN(1024), req.StartUSN)
		assert.Equal(t, uint64(0x01D9C0FFEE000001), req.JournalID)
		assert.Equal(t, usn.ReasonAll, req.ReasonMask)
		assert.Equal(t, uint16(2), req.MinMajorVersion)
		assert.Equal(t, uint16(3), req.MaxMajorVersion)

		assert.Contains(t, out, "Start USN:     1024")
		assert.Contains(t, out, "Next USN:      2048")
		assert.Contains(t, out, "Record bytes:  6")
		assert.NotContains(t, out, "Caught up")
		assert.True(t, vol.closed)
	})

	t.Run("start usn and reasons flags", func(t *testing.T) {
		vol := testVolume()
		vol.nextUSN = 8192

		out, err := runCommand(t, vol, "read", "--start-usn", "5000", "--reasons", "file-create,file-delete")
		require.NoError(t, err)

		require.Len(t, vol.requests, 1)
		assert.Equal(t, usn.USN(5000), vol.requests[0].StartUSN)
		assert.Equal(t, usn.ReasonFileCreate|usn.ReasonFileDelete, vol.requests[0].ReasonMask)
		assert.Contains(t, out, "Caught up with the journal")
	})

	t.Run("hex dump", func(t *testing.T) {
		out, err := runCommand(t, testVolume(), "read", "--hex")
		require.NoError(t, err)
		assert.Contains(t, out, "60 00 00 00 02 00")
	})

	t.Run("buffer size limits the batch", func(t *testing.T) {
		out, err := runCommand(t, testVolume(), "read", "--buffer-size", "10")
		require.NoError(t, err)
		assert.Contains(t, out, "Record bytes:  2")
	})

	t.Run("buffer size below cursor size", func(t *testing.T) {
		_, err := runCommand(t, testVolume(), "read", "--buffer-size", "4")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--buffer-size must be at least 8")
	})

	t.Run("unknown reason", func(t *testing.T) {
		vol := testVolume()
		_, err := runCommand(t, vol, "read", "--reasons", "bogus")
		require.Error(t, err)
		assert.Empty(t, vol.requests, "no call is made for invalid flags")
	})

	t.Run("journal reset is reported", func(t *testing.T) {
		vol := testVolume()
		vol.readErr = journal.CodeJournalNotActive

		_, err := runCommand(t, vol, "read")
		require.Error(t, err)
		assert.Equal(t, journal.KindDeviceCallFailed, journal.Classify(err))
		assert.True(t, journal.IsJournalReset(err))
		assert.False(t, journal.IsCursorExpired(err))
		assert.Contains(t, err.Error(), "journal was reset")
		assert.True(t, vol.closed)
	})

	t.Run("purged start usn is reported", func(t *testing.T) {
		vol := testVolume()
		vol.readErr = journal.CodeJournalEntryDeleted

		_, err := runCommand(t, vol, "read", "--start-usn", "10")
		require.Error(t, err)
		assert.True(t, journal.IsCursorExpired(err))
		assert.False(t, journal.IsJournalReset(err))
		assert.Contains(t, err.Error(), "start USN was purged")
		assert.NotContains(t, err.Error(), "journal was reset")
	})

	t.Run("v0 descriptor sends v0 request", func(t *testing.T) {
		vol := testVolume()
		vol.descriptor = usn.DescriptorV0{JournalData: vol.descriptor.Journal()}

		_, err := runCommand(t, vol, "read")
		require.NoError(t, err)
		require.Len(t, vol.requests, 1)
		assert.Equal(t, usn.ReadV0, vol.requests[0].Version)
	})
}
