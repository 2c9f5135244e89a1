//go:build windows

package volume

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Volume is an open volume handle.
type Volume struct {
	path   string
	handle windows.Handle
}

// Open opens the named volume for reading. Other processes keep read and
// write access. Opening a volume usually requires administrator rights.
func Open(name string) (*Volume, error) {
	path, err := NormalizePath(name)
	if err != nil {
		return nil, err
	}

	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid volume path %q: %w", path, err)
	}

	h, err := windows.CreateFile(
		p,
		windows.GENERIC_READ,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open volume %s: %w", path, err)
	}

	return &Volume{path: path, handle: h}, nil
}

// Path returns the device path the volume was opened with.
func (v *Volume) Path() string {
	return v.path
}

// Control issues one synchronous DeviceIoControl call. The returned error is
// the windows.Errno reported by the system.
func (v *Volume) Control(code uint32, in, out []byte) (int, error) {
	var (
		inPtr, outPtr *byte
		returned      uint32
	)
	if len(in) > 0 {
		inPtr = &in[0]
	}
	if len(out) > 0 {
		outPtr = &out[0]
	}

	err := windows.DeviceIoControl(
		v.handle,
		code,
		inPtr,
		uint32(len(in)),
		outPtr,
		uint32(len(out)),
		&returned,
		nil,
	)
	if err != nil {
		return 0, err
	}

	return int(returned), nil
}

// Close closes the volume handle.
func (v *Volume) Close() error {
	if v.handle == windows.InvalidHandle {
		return nil
	}
	err := windows.CloseHandle(v.handle)
	v.handle = windows.InvalidHandle
	return err
}
