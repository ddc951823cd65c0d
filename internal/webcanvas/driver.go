//go:build js && wasm

package webcanvas

import "syscall/js"

// AnimationFrameDriver schedules frames with window.requestAnimationFrame,
// so the browser sets the cadence and pauses hidden tabs.
type AnimationFrameDriver struct {
	running bool
	pending js.Value
	cb      js.Func
}

func (d *AnimationFrameDriver) Start(frame func()) {
	if d.running {
		return
	}
	d.running = true
	window := js.Global()
	d.cb = js.FuncOf(func(js.Value, []js.Value) any {
		if !d.running {
			return nil
		}
		frame()
		// frame may have stopped us
		if d.running {
			d.pending = window.Call("requestAnimationFrame", d.cb)
		}
		return nil
	})
	d.pending = window.Call("requestAnimationFrame", d.cb)
}

func (d *AnimationFrameDriver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	js.Global().Call("cancelAnimationFrame", d.pending)
	d.cb.Release()
}
