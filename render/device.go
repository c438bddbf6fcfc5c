package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gridfx/gridfx"
)

// maxPushConstantBytes is the push-constant budget requested from the
// device. The overlay pass uses 4 bytes; the rest is headroom for
// additional per-draw state.
const maxPushConstantBytes = 128

// Device bundles the WebGPU instance, adapter, device, and queue.
// gridfx owns the device it renders with; hosts that already hold one
// can construct a Device from their handles with Wrap.
type Device struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	owned bool
}

// NewDevice acquires a high-performance adapter and requests a device
// with the push-constants feature enabled. surface may be nil for
// headless (offscreen) rendering; when non-nil the adapter is chosen for
// compatibility with it.
func NewDevice(surface *wgpu.Surface) (*Device, error) {
	instance := wgpu.CreateInstance(nil)

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
		CompatibleSurface: surface,
	})
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("%w: %v", ErrNoAdapter, err)
	}

	info := adapter.GetInfo()
	gridfx.Logger().Info("GPU adapter selected",
		"name", info.Name,
		"backend", info.BackendType,
		"type", info.AdapterType,
	)

	device, err := adapter.RequestDevice(deviceDescriptor())
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("render: request device: %w", err)
	}

	return &Device{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    device.GetQueue(),
		owned:    true,
	}, nil
}

// deviceDescriptor is the device request: the native push-constants
// feature enabled, with maxPushConstantBytes of per-draw state.
func deviceDescriptor() *wgpu.DeviceDescriptor {
	limits := wgpu.DefaultLimits()
	limits.MaxPushConstantSize = maxPushConstantBytes
	return &wgpu.DeviceDescriptor{
		Label:            "gridfx device",
		RequiredFeatures: []wgpu.FeatureName{wgpu.NativeFeaturePushConstants},
		RequiredLimits:   &wgpu.RequiredLimits{Limits: limits},
	}
}

// Wrap builds a Device around handles owned by the host application.
// Close does not release wrapped handles.
func Wrap(instance *wgpu.Instance, adapter *wgpu.Adapter, device *wgpu.Device) (*Device, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	return &Device{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    device.GetQueue(),
	}, nil
}

// Instance returns the WebGPU instance, for surface creation.
func (d *Device) Instance() *wgpu.Instance { return d.instance }

// Adapter returns the selected adapter.
func (d *Device) Adapter() *wgpu.Adapter { return d.adapter }

// Handle returns the underlying device.
func (d *Device) Handle() *wgpu.Device { return d.device }

// Queue returns the device's submission queue.
func (d *Device) Queue() *wgpu.Queue { return d.queue }

// Close releases the GPU handles if this Device owns them.
func (d *Device) Close() {
	if !d.owned {
		return
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.instance != nil {
		d.instance.Release()
		d.instance = nil
	}
}
