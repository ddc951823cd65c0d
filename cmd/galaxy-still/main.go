// Command galaxy-still renders one frame of the galaxy backdrop to a PNG.
package main

import (
	"flag"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/nxc/galaxy-portfolio/internal/config"
	"github.com/nxc/galaxy-portfolio/internal/raster"
	"github.com/nxc/galaxy-portfolio/internal/starfield"
)

func main() {
	var (
		out    = flag.String("o", "backdrop.png", "output file")
		width  = flag.Int("w", 1920, "width in pixels")
		height = flag.Int("h", 1080, "height in pixels")
		frames = flag.Int("frames", 0, "frames to simulate before drawing")
		seed   = flag.Uint64("seed", 1, "layout seed")
		tuning = flag.String("config", os.Getenv("STARFIELD_CONFIG"), "starfield gcfg file")
	)
	flag.Parse()

	cfg, err := config.LoadStarfield(*tuning)
	if err != nil {
		log.Fatal(err)
	}
	if *width <= 0 || *height <= 0 || *frames < 0 {
		log.Fatalf("invalid size %dx%d or frame count %d", *width, *height, *frames)
	}

	still := raster.Still(*width, *height, *frames, cfg, starfield.NewRand(*seed))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := still.EncodePNG(f); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s (%dx%d, %d stars, seed %d)", *out, *width, *height, cfg.Count, *seed)
}
