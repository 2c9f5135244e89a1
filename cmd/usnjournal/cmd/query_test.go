package cmd

import (
	"encoding/json"
	"testing"

	"github.com/ssargent/usnjournal/pkg/usn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCommand(t *testing.T) {
	t.Run("text output", func(t *testing.T) {
		vol := testVolume()

		out, err := runCommand(t, vol, "query")
		require.NoError(t, err)

		assert.Contains(t, out, "Version:           v1")
		assert.Contains(t, out, "Journal ID:        0x01d9c0ffee000001")
		assert.Contains(t, out, "First USN:         1024")
		assert.Contains(t, out, "Next USN:          8192")
		assert.Contains(t, out, "Major versions:    2-3")
		assert.NotContains(t, out, "Flags:")
		assert.True(t, vol.closed, "volume must be closed")
	})

	t.Run("json output for v2", func(t *testing.T) {
		vol := testVolume()
		vol.descriptor = usn.DescriptorV2{
			JournalData:                 vol.descriptor.Journal(),
			MinMajorVersion:             2,
			MaxMajorVersion:             4,
			Flags:                       usn.FlagTrackModifiedRangesEnable,
			RangeTrackChunkSize:         16384,
			RangeTrackFileSizeThreshold: 1048576,
		}

		out, err := runCommand(t, vol, "query", "--output", "json")
		require.NoError(t, err)

		var view descriptorView
		require.NoError(t, json.Unmarshal([]byte(out), &view))
		assert.Equal(t, "v2", view.Version)
		assert.Equal(t, uint64(8192), view.NextUSN)
		require.NotNil(t, view.Flags)
		assert.Equal(t, uint32(1), *view.Flags)
		require.NotNil(t, view.RangeTrackChunkSize)
		assert.Equal(t, uint64(16384), *view.RangeTrackChunkSize)
	})

	t.Run("v0 omits version fields", func(t *testing.T) {
		vol := testVolume()
		vol.descriptor = usn.DescriptorV0{JournalData: vol.descriptor.Journal()}

		out, err := runCommand(t, vol, "query", "-o", "json")
		require.NoError(t, err)
		assert.NotContains(t, out, "min_major_version")
	})

	t.Run("invalid output format", func(t *testing.T) {
		_, err := runCommand(t, testVolume(), "query", "--output", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--output must be text or json")
	})

	t.Run("metrics are printed on request", func(t *testing.T) {
		out, err := runCommand(t, testVolume(), "query", "--metrics")
		require.NoError(t, err)
		assert.Contains(t, out, `usnjournal_control_calls_total{operation="query_usn_journal",status="success"} 1`)
	})
}
