package cmd

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/ssargent/usnjournal/pkg/codec"
	"github.com/ssargent/usnjournal/pkg/config"
	"github.com/ssargent/usnjournal/pkg/di"
	"github.com/ssargent/usnjournal/pkg/journal"
	"github.com/ssargent/usnjournal/pkg/usn"
	"github.com/stretchr/testify/require"
)

// simulatedVolume answers change journal control calls from fixed data.
type simulatedVolume struct {
	descriptor usn.Descriptor
	nextUSN    usn.USN
	records    []byte
	readErr    error

	requests []usn.ReadRequest
	closed   bool
}

func (v *simulatedVolume) Control(code uint32, in, out []byte) (int, error) {
	switch code {
	case journal.FSCTLQueryUSNJournal:
		raw, err := codec.EncodeDescriptor(v.descriptor)
		if err != nil {
			return 0, err
		}
		return copy(out, raw), nil

	case journal.FSCTLReadUSNJournal:
		req, err := codec.DecodeReadRequest(in)
		if err != nil {
			return 0, journal.CodeInvalidParameter
		}
		v.requests = append(v.requests, req)
		if v.readErr != nil {
			return 0, v.readErr
		}
		if len(out) < 8 {
			return 0, journal.CodeInsufficientBuffer
		}
		binary.LittleEndian.PutUint64(out, uint64(v.nextUSN))
		return 8 + copy(out[8:], v.records), nil

	default:
		return 0, journal.CodeInvalidFunction
	}
}

func (v *simulatedVolume) Close() error {
	v.closed = true
	return nil
}

func testVolume() *simulatedVolume {
	return &simulatedVolume{
		descriptor: usn.DescriptorV1{
			JournalData: usn.JournalData{
				JournalID:       0x01D9C0FFEE000001,
				FirstUSN:        1024,
				NextUSN:         8192,
				LowestValidUSN:  1024,
				MaxUSN:          1 << 62,
				MaximumSize:     32 << 20,
				AllocationDelta: 8 << 20,
			},
			MinMajorVersion: 2,
			MaxMajorVersion: 3,
		},
		nextUSN: 2048,
		records: []byte{0x60, 0x00, 0x00, 0x00, 0x02, 0x00},
	}
}

// runCommand executes the CLI against vol with a temporary config file.
func runCommand(t *testing.T, vol *simulatedVolume, args ...string) (string, error) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.SaveConfig(config.DefaultConfig(), configPath))

	c := di.NewContainer()
	c.SetDeviceOpener(func(name string) (di.DeviceCloser, error) {
		return vol, nil
	})
	SetContainer(c)
	t.Cleanup(func() { SetContainer(nil) })

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", configPath, "--log-level", "error"}, args...))

	err := root.Execute()
	return out.String(), err
}
