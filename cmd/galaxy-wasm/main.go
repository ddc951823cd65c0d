//go:build js && wasm

// Command galaxy-wasm is compiled to static/galaxy.wasm and animates the
// page's #galaxy canvas.
package main

import (
	"log"
	"strconv"
	"syscall/js"

	"github.com/nxc/galaxy-portfolio/internal/config"
	"github.com/nxc/galaxy-portfolio/internal/starfield"
	"github.com/nxc/galaxy-portfolio/internal/webcanvas"
)

// readConfig applies window.galaxyConfig, written by the page template. A
// tuning block that fails validation leaves the defaults in place.
func readConfig() (starfield.Config, starfield.Rand) {
	cfg := starfield.DefaultConfig()
	var rng starfield.Rand

	gc := js.Global().Get("galaxyConfig")
	if gc.IsUndefined() || gc.IsNull() {
		return cfg, rng
	}
	if v := gc.Get("tuning"); v.Type() == js.TypeObject {
		raw := js.Global().Get("JSON").Call("stringify", v).String()
		if tuned, err := config.ParseStarfieldJSON([]byte(raw)); err != nil {
			log.Printf("galaxy: %v", err)
		} else {
			cfg = tuned
		}
	}
	if v := gc.Get("seed"); v.Type() == js.TypeString {
		if seed, err := strconv.ParseUint(v.String(), 10, 64); err == nil && seed != 0 {
			rng = starfield.NewRand(seed)
		}
	}
	return cfg, rng
}

func main() {
	cfg, rng := readConfig()
	r := starfield.NewRenderer(webcanvas.Host{ID: "galaxy"}, &webcanvas.AnimationFrameDriver{}, cfg, rng)
	if err := r.Mount(); err != nil {
		// unsupported browser or no canvas: keep the static backdrop
		log.Printf("galaxy: %v", err)
		return
	}
	// the live field replaces the server-rendered still
	js.Global().Get("document").Call("getElementById", "galaxy").Get("style").Set("backgroundImage", "none")

	unmount := js.FuncOf(func(js.Value, []js.Value) any {
		r.Unmount()
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", unmount)

	select {}
}
