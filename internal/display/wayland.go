package display

import (
	"fmt"

	wlclient "github.com/yaslama/go-wayland/wayland/client"

	"github.com/AvengeMedia/dankpaper/internal/errdefs"
	"github.com/AvengeMedia/dankpaper/internal/log"
)

// detectWayland enumerates wl_output globals via the registry. It needs a
// compositor speaking wl_output v4 for the name event; anything less and the
// caller falls back to xrandr.
func detectWayland() ([]Display, error) {
	wlDisplay, err := wlclient.Connect("")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errdefs.ErrNoWaylandDisplay, err)
	}
	defer wlDisplay.Context().Close()

	ctx := wlDisplay.Context()

	registry, err := wlDisplay.GetRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to get registry: %w", err)
	}

	var outputs []*Display

	registry.SetGlobalHandler(func(e wlclient.RegistryGlobalEvent) {
		if e.Interface != "wl_output" {
			return
		}

		output := wlclient.NewOutput(ctx)
		version := e.Version
		if version > 4 {
			version = 4
		}
		if err := registry.Bind(e.Name, e.Interface, version, output); err != nil {
			log.Debugf("Failed to bind wl_output: %v", err)
			return
		}

		d := &Display{}
		outputs = append(outputs, d)

		output.SetNameHandler(func(e wlclient.OutputNameEvent) {
			d.Port = e.Name
		})
		output.SetDescriptionHandler(func(e wlclient.OutputDescriptionEvent) {
			d.Name = e.Description
		})
		output.SetModeHandler(func(e wlclient.OutputModeEvent) {
			if e.Flags&uint32(wlclient.OutputModeCurrent) != 0 {
				d.Resolution = fmt.Sprintf("%dx%d", e.Width, e.Height)
			}
		})
	})

	// One roundtrip to collect globals, one for the bound output events.
	if err := wlDisplay.Roundtrip(); err != nil {
		return nil, fmt.Errorf("first roundtrip failed: %w", err)
	}
	if err := wlDisplay.Roundtrip(); err != nil {
		return nil, fmt.Errorf("second roundtrip failed: %w", err)
	}

	var displays []Display
	for _, d := range outputs {
		// Pre-v4 compositors never deliver the name event.
		if d.Port == "" {
			continue
		}
		displays = append(displays, *d)
	}

	log.Debugf("wayland: discovered %d outputs", len(displays))
	return displays, nil
}
