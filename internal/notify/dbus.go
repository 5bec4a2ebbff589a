//go:build linux

package notify

import (
	"fmt"
	"slices"

	"github.com/godbus/dbus/v5"
)

const (
	busName   = "org.freedesktop.Notifications"
	busPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	appName   = "SomBox TV"
	desktopID = "sombox"
)

// busNotifier talks to the freedesktop notification server.
type busNotifier struct {
	obj    dbus.BusObject
	noBody bool // server only shows the summary
}

// New connects to the session bus. Without a bus every notification is
// dropped.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nop{}, nil //nolint:nilerr // no session bus, nothing to notify
	}
	n := &busNotifier{obj: conn.Object(busName, busPath)}
	var caps []string
	if err := n.obj.Call(busName+".GetCapabilities", 0).Store(&caps); err == nil {
		n.noBody = !slices.Contains(caps, "body")
	}
	return n, nil
}

func (n *busNotifier) Notify(notif Notification) (uint32, error) {
	body := notif.Body
	if n.noBody {
		body = ""
	}
	var id uint32
	err := n.obj.Call(busName+".Notify", 0,
		appName, notif.ReplacesID, notif.Icon, notif.Title, body,
		[]string{}, hints(notif), notif.Timeout,
	).Store(&id)
	if err != nil {
		return 0, fmt.Errorf("dbus: %w", err)
	}
	return id, nil
}

func (n *busNotifier) Close(id uint32) error {
	if err := n.obj.Call(busName+".CloseNotification", 0, id).Err; err != nil {
		return fmt.Errorf("dbus: close %d: %w", id, err)
	}
	return nil
}

func hints(n Notification) map[string]dbus.Variant {
	return map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopID),
		"category":      dbus.MakeVariant("x-sombox.channel"),
		"transient":     dbus.MakeVariant(n.Urgency == UrgencyLow),
	}
}
