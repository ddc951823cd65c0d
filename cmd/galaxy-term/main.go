// Command galaxy-term runs the galaxy backdrop in a terminal.
// Quit with Esc, q or Ctrl-C.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	_ "github.com/joho/godotenv/autoload"

	"github.com/nxc/galaxy-portfolio/internal/config"
	"github.com/nxc/galaxy-portfolio/internal/starfield"
	"github.com/nxc/galaxy-portfolio/internal/termfield"
)

func main() {
	var (
		tuning = flag.String("config", os.Getenv("STARFIELD_CONFIG"), "starfield gcfg file")
		count  = flag.Int("count", 0, "override the particle count")
		seed   = flag.Uint64("seed", 0, "layout seed (0 = random)")
		fps    = flag.Int("fps", 30, "frames per second")
		cellW  = flag.Float64("cell-width", termfield.DefaultCellWidth, "pixels per cell, horizontally")
		cellH  = flag.Float64("cell-height", termfield.DefaultCellHeight, "pixels per cell, vertically")
	)
	flag.Parse()

	cfg, err := config.LoadStarfield(*tuning)
	if err != nil {
		log.Fatal(err)
	}
	if *count > 0 {
		cfg.Count = *count
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
	}
	if *fps <= 0 {
		log.Fatalf("invalid fps %d", *fps)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	var rng starfield.Rand
	if *seed != 0 {
		rng = starfield.NewRand(*seed)
	}
	host := termfield.NewHost(screen, *cellW, *cellH)
	driver := &starfield.TickerDriver{Interval: time.Second / time.Duration(*fps)}
	r := starfield.NewRenderer(host, driver, cfg, rng)
	if err := r.Mount(); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	defer r.Unmount()

	for {
		if !host.HandleEvent(screen.PollEvent()) {
			return
		}
	}
}
