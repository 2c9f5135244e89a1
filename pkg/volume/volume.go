// Package volume opens volume devices for change journal control calls.
//
// Implementations live in build-tagged files:
//   - Windows:         volume_windows.go (CreateFile + DeviceIoControl)
//   - Other platforms: volume_other.go (Open returns ErrUnsupportedPlatform)
//
// A *Volume satisfies journal.Device. Closing it is the caller's job.
package volume

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ssargent/usnjournal/pkg/journal"
)

// ErrUnsupportedPlatform is returned by Open on platforms without volume
// change journals.
var ErrUnsupportedPlatform = errors.New("volume change journals are only available on windows")

var _ journal.Device = (*Volume)(nil)

const devicePrefix = `\\.\`

// NormalizePath turns a drive letter ("C", "C:", `C:\`) into the device path
// `\\.\C:`. Device and volume GUID paths are returned without a trailing
// separator.
func NormalizePath(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("volume name is empty")
	}

	if strings.HasPrefix(name, `\\`) {
		trimmed := strings.TrimRight(name, `\`)
		if len(trimmed) <= len(devicePrefix) {
			return "", fmt.Errorf("invalid volume path %q", name)
		}
		return trimmed, nil
	}

	letter := strings.TrimRight(name, `:\/`)
	if len(letter) != 1 || !isDriveLetter(letter[0]) {
		return "", fmt.Errorf("invalid volume name %q", name)
	}

	return devicePrefix + strings.ToUpper(letter) + ":", nil
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
