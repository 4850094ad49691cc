package platform

import "errors"

// Provider bundles the backends a command needs.
type Provider struct {
	WindowManager WindowManager
	Chooser       Chooser
}

// ErrIncomplete is returned when a Provider is missing a backend.
var ErrIncomplete = errors.New("provider requires both a window manager and a chooser")

// NewProvider returns a Provider for the given backends.
func NewProvider(wm WindowManager, chooser Chooser) (*Provider, error) {
	if wm == nil || chooser == nil {
		return nil, ErrIncomplete
	}
	return &Provider{WindowManager: wm, Chooser: chooser}, nil
}
