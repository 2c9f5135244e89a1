package journal

import (
	"errors"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// InstrumentedDevice records metrics and logs for every control call made
// through it. Results are passed through unchanged.
type InstrumentedDevice struct {
	next    Device
	metrics *Metrics
	log     logrus.FieldLogger
}

var _ Device = (*InstrumentedDevice)(nil)

// NewInstrumentedDevice wraps dev. Either m or log may be nil.
func NewInstrumentedDevice(dev Device, m *Metrics, log logrus.FieldLogger) *InstrumentedDevice {
	return &InstrumentedDevice{next: dev, metrics: m, log: log}
}

// Control forwards the call to the wrapped device
func (d *InstrumentedDevice) Control(code uint32, in, out []byte) (int, error) {
	op := ControlName(code)
	start := time.Now()

	n, err := d.next.Control(code, in, out)
	duration := time.Since(start)

	if d.metrics != nil {
		d.metrics.RecordControlCall(op, n, err, duration)
	}

	if d.log != nil {
		entry := d.log.WithFields(logrus.Fields{
			"operation": op,
			"in_bytes":  len(in),
			"out_cap":   len(out),
			"duration":  duration,
		})
		if err != nil {
			if c, ok := errnoOf(err); ok {
				entry = entry.WithField("code", uint32(c))
			}
			entry.WithError(err).Warn("control call failed")
		} else {
			entry.WithField("out_bytes", n).Debug("control call completed")
		}
	}

	return n, err
}

func errnoOf(err error) (syscall.Errno, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno, true
	}
	return 0, false
}
