//go:build !windows

package volume

// Volume is an open volume handle. It cannot be created on this platform.
type Volume struct {
	path string
}

// Open always fails with ErrUnsupportedPlatform.
func Open(name string) (*Volume, error) {
	if _, err := NormalizePath(name); err != nil {
		return nil, err
	}
	return nil, ErrUnsupportedPlatform
}

// Path returns the device path the volume was opened with.
func (v *Volume) Path() string {
	return v.path
}

// Control always fails with ErrUnsupportedPlatform.
func (v *Volume) Control(code uint32, in, out []byte) (int, error) {
	return 0, ErrUnsupportedPlatform
}

// Close does nothing.
func (v *Volume) Close() error {
	return nil
}
