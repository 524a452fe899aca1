// Package notify delivers cycle outcomes as desktop notifications.
// It speaks org.freedesktop.Notifications over the session bus and
// falls back to notify-send when no bus is reachable.
package notify

import (
	"os/exec"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/relay-cycler/common"
)

const (
	notifyService   = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyMethod    = "org.freedesktop.Notifications.Notify"
	defaultIcon     = "network-vpn"
	errorIcon       = "network-vpn-error"
	expireMs        = int32(5000)
	urgencyNormal   = byte(1)
	urgencyCritical = byte(2)
)

// Notifier sends desktop notifications for connection events.
// It implements common.Notifier.
type Notifier struct {
	appName string
}

// New creates a notifier announcing itself under the application name.
func New() *Notifier {
	return &Notifier{appName: common.AppName}
}

// Notify sends a notification with the default VPN icon.
func (n *Notifier) Notify(title, message string) error {
	return n.send(title, message, defaultIcon, urgencyNormal)
}

// NotifyWithIcon sends a notification with a custom icon.
func (n *Notifier) NotifyWithIcon(title, message, icon string) error {
	if icon == "" {
		icon = defaultIcon
	}
	return n.send(title, message, icon, urgencyNormal)
}

// NotifyError sends a critical-urgency notification for a fatal outcome.
func (n *Notifier) NotifyError(title, message string) error {
	return n.send(title, message, errorIcon, urgencyCritical)
}

func (n *Notifier) send(title, message, icon string, urgency byte) error {
	err := n.sendDBus(title, message, icon, urgency)
	if err == nil {
		return nil
	}
	common.LogDebug("session bus notification failed: %v", err)
	return n.sendFallback(title, message, icon, urgency)
}

// sendDBus posts the notification directly on the session bus.
func (n *Notifier) sendDBus(title, message, icon string, urgency byte) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return err
	}

	obj := conn.Object(notifyService, dbus.ObjectPath(notifyPath))
	call := obj.Call(notifyMethod, 0,
		n.appName,
		uint32(0), // no notification to replace
		icon,
		title,
		message,
		[]string{},
		map[string]dbus.Variant{"urgency": dbus.MakeVariant(urgency)},
		expireMs,
	)
	return call.Err
}

// sendFallback shells out to notify-send for environments where the
// process has no session bus of its own.
func (n *Notifier) sendFallback(title, message, icon string, urgency byte) error {
	level := "normal"
	if urgency == urgencyCritical {
		level = "critical"
	}

	cmd := exec.Command("notify-send",
		"--app-name="+n.appName,
		"--icon="+icon,
		"--urgency="+level,
		title,
		message,
	)

	if err := cmd.Run(); err != nil {
		common.LogWarn("notify-send failed: %v", err)
		return err
	}
	return nil
}
