package audio

import (
	"fmt"
	"strings"

	"github.com/gen2brain/malgo"
)

// DeviceInfo describes a capture device.
type DeviceInfo struct {
	Name      string
	IsDefault bool
}

func (d DeviceInfo) String() string {
	if d.IsDefault {
		return d.Name + " [default]"
	}
	return d.Name
}

// ListDevices enumerates capture devices.
func ListDevices() ([]DeviceInfo, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("init audio context: %w", err)
	}
	defer func() {
		_ = ctx.Uninit()
		ctx.Free()
	}()

	infos, err := ctx.Devices(malgo.Capture)
	if err != nil {
		return nil, fmt.Errorf("enumerate capture devices: %w", err)
	}
	out := make([]DeviceInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, DeviceInfo{Name: info.Name(), IsDefault: info.IsDefault > 0})
	}
	return out, nil
}

// matchDevice returns the index of the first name containing query,
// case-insensitively, or -1.
func matchDevice(names []string, query string) int {
	q := strings.ToLower(query)
	for i, n := range names {
		if strings.Contains(strings.ToLower(n), q) {
			return i
		}
	}
	return -1
}

// malgoDevice is a running miniaudio capture device and its context.
type malgoDevice struct {
	ctx *malgo.AllocatedContext
	dev *malgo.Device
}

func (d *malgoDevice) Stop() error {
	err := d.dev.Stop()
	d.dev.Uninit()
	if uerr := d.ctx.Uninit(); err == nil {
		err = uerr
	}
	d.ctx.Free()
	return err
}

// openMalgo starts a mono S16 capture and calls onData from the audio
// thread for every period.
func openMalgo(cfg Config, onData func([]byte)) (device, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("init audio context: %w", err)
	}
	fail := func(err error) (device, error) {
		_ = ctx.Uninit()
		ctx.Free()
		return nil, err
	}

	devCfg := malgo.DefaultDeviceConfig(malgo.Capture)
	devCfg.Capture.Format = malgo.FormatS16
	devCfg.Capture.Channels = Channels
	devCfg.SampleRate = uint32(cfg.SampleRate)

	if cfg.Device != "" {
		infos, err := ctx.Devices(malgo.Capture)
		if err != nil {
			return fail(fmt.Errorf("enumerate capture devices: %w", err))
		}
		names := make([]string, len(infos))
		for i, info := range infos {
			names[i] = info.Name()
		}
		i := matchDevice(names, cfg.Device)
		if i < 0 {
			return fail(fmt.Errorf("no capture device matches %q", cfg.Device))
		}
		devCfg.Capture.DeviceID = infos[i].ID.Pointer()
	}

	callbacks := malgo.DeviceCallbacks{
		Data: func(_, input []byte, _ uint32) {
			onData(input)
		},
	}
	dev, err := malgo.InitDevice(ctx.Context, devCfg, callbacks)
	if err != nil {
		return fail(fmt.Errorf("init capture device: %w", err))
	}
	if err := dev.Start(); err != nil {
		dev.Uninit()
		return fail(fmt.Errorf("start capture device: %w", err))
	}
	return &malgoDevice{ctx: ctx, dev: dev}, nil
}
