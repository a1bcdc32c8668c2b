package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit sends a settings event. It is a no-op until EnableRuntimeEmitter or
// SetCustomEmitter is called, so services work outside a Wails runtime.
var Emit = func(ctx context.Context, evt SettingsEvent) {}

// EnableRuntimeEmitter routes events to the Wails frontend. ctx passed to Emit
// must then be the Wails runtime context.
func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, evt SettingsEvent) {
		runtime.EventsEmit(ctx, SettingsEventName, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, evt SettingsEvent)) {
	if f == nil {
		Emit = func(context.Context, SettingsEvent) {}
		return
	}
	Emit = f
}
