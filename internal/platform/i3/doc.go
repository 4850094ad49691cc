// Package i3 drives marks through the i3 IPC command-line client. The same
// client works against sway by pointing it at swaymsg, which accepts the
// same -t get_marks and -t command invocations.
package i3
