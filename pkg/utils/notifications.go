package utils

import (
	"os"
	"os/exec"
	"strconv"
)

// NotificationConfig управлява notification поведението
type NotificationConfig struct {
	Enabled bool   `toml:"enabled"`
	Tool    string `toml:"tool"` // "auto", "dunstify", "notify-send"
	Timeout int    `toml:"timeout"`
	Urgency string `toml:"urgency"`
}

// NotifyWithConfig sends a notification using the provided config
func NotifyWithConfig(cfg *NotificationConfig, title, message string) {
	if cfg == nil || !cfg.Enabled {
		return
	}
	sendNotification(resolveTool(cfg.Tool), title, message, cfg.Timeout, cfg.Urgency, "normal")
}

// ShowErrorNotificationWithConfig sends an error notification using the provided config
func ShowErrorNotificationWithConfig(cfg *NotificationConfig, title, message string) {
	if cfg == nil || !cfg.Enabled {
		return
	}
	sendNotification(resolveTool(cfg.Tool), title, message, cfg.Timeout, "critical", "critical")
}

func resolveTool(tool string) string {
	if tool == "" || tool == "auto" {
		return detectNotificationTool()
	}
	return tool
}

// detectNotificationTool detects which notification tool is available
func detectNotificationTool() string {
	if CommandExists("dunstify") {
		return "dunstify"
	}
	if CommandExists("notify-send") {
		return "notify-send"
	}
	return ""
}

// sendNotification sends a notification using the specified tool.
// Desktop-launched processes have no visible stderr, so failures are
// reported through the notification daemon when one is present.
func sendNotification(tool, title, message string, timeout int, urgency, fallbackUrgency string) {
	if tool == "" {
		return
	}

	if urgency == "" {
		urgency = fallbackUrgency
	}
	if timeout <= 0 {
		timeout = 5000
	}

	var cmd *exec.Cmd

	switch tool {
	case "dunstify":
		cmd = exec.Command("dunstify",
			"-u", urgency,
			"-t", strconv.Itoa(timeout),
			title,
			message)

	case "notify-send":
		cmd = exec.Command("notify-send",
			"-u", urgency,
			"-t", strconv.Itoa(timeout),
			title,
			message)

	default:
		return
	}

	cmd.Env = os.Environ()
	cmd.Start()
}

// Notify изпраща notification с default настройки
func Notify(title, message string) {
	NotifyWithConfig(&NotificationConfig{
		Enabled: true,
		Tool:    "auto",
		Timeout: 5000,
		Urgency: "normal",
	}, title, message)
}

// ShowErrorNotification изпраща error notification с default настройки
func ShowErrorNotification(title, message string) {
	ShowErrorNotificationWithConfig(&NotificationConfig{
		Enabled: true,
		Tool:    "auto",
		Timeout: 10000,
	}, title, message)
}
