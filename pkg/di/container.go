// Package di provides dependency injection container
package di

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/ssargent/usnjournal/pkg/journal"
	"github.com/ssargent/usnjournal/pkg/volume"
)

// DeviceCloser is an open volume device that must be closed after use
type DeviceCloser interface {
	journal.Device
	io.Closer
}

// DeviceOpener opens the named volume
type DeviceOpener func(name string) (DeviceCloser, error)

// Container holds all the dependencies for the application
type Container struct {
	deviceOpener DeviceOpener
	registry     *prometheus.Registry
	metrics      *journal.Metrics
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	registry := prometheus.NewRegistry()

	return &Container{
		deviceOpener: openVolume,
		registry:     registry,
		metrics:      journal.NewMetrics(registry),
	}
}

// GetDeviceOpener returns the volume device opener
func (c *Container) GetDeviceOpener() DeviceOpener {
	return c.deviceOpener
}

// SetDeviceOpener allows overriding the device opener (for testing)
func (c *Container) SetDeviceOpener(opener DeviceOpener) {
	c.deviceOpener = opener
}

// GetRegistry returns the registry the journal metrics are registered with
func (c *Container) GetRegistry() *prometheus.Registry {
	return c.registry
}

// GetMetrics returns the control call metrics
func (c *Container) GetMetrics() *journal.Metrics {
	return c.metrics
}

func openVolume(name string) (DeviceCloser, error) {
	v, err := volume.Open(name)
	if err != nil {
		return nil, err
	}
	return v, nil
}
