package notify

import (
	"github.com/godbus/dbus/v5"

	"github.com/AvengeMedia/dankpaper/internal/log"
)

const appName = "dankpaper"

// Send posts a desktop notification over the session bus. Notifications are
// purely informational, so every failure path is swallowed after a debug log,
// headless sessions included.
func Send(summary, body string) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debugf("notify: no session bus: %v", err)
		return
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		appName,
		uint32(0),
		"",
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(5000),
	)
	if call.Err != nil {
		log.Debugf("notify: %v", call.Err)
	}
}
