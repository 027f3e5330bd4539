package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var Emit = func(ctx context.Context, name string, evt ReviewEvent) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt ReviewEvent) {
		if evt.SessionKey == "" {
			if session := SessionFromContext(ctx); session != "" {
				evt.SessionKey = session
			}
		}

		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt ReviewEvent)) {
	if f == nil {
		Emit = func(context.Context, string, ReviewEvent) {}
		return
	}
	Emit = func(ctx context.Context, name string, evt ReviewEvent) {
		if evt.SessionKey == "" {
			if session := SessionFromContext(ctx); session != "" {
				evt.SessionKey = session
			}
		}
		f(ctx, name, evt)
	}
}
