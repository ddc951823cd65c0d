package main

import (
	"bytes"
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/nxc/galaxy-portfolio/internal/raster"
	"github.com/nxc/galaxy-portfolio/internal/starfield"
)

// Limits for /backdrop.png so a single request stays cheap.
const (
	minBackdropSide   = 16
	maxBackdropSide   = 4096
	maxBackdropPixels = 2048 * 2048
	maxStillFrames    = 600

	backdropCacheSize = 64
)

type backdropKey struct {
	width, height, frames int
	seed                  uint64
}

func (k backdropKey) String() string {
	return fmt.Sprintf("%dx%d/%d/%d", k.width, k.height, k.frames, k.seed)
}

// fitArea shrinks width and height, keeping their ratio, until the image has
// at most maxBackdropPixels.
func fitArea(width, height int) (int, int) {
	area := width * height
	if area <= maxBackdropPixels {
		return width, height
	}
	f := math.Sqrt(float64(maxBackdropPixels) / float64(area))
	return max(int(float64(width)*f), minBackdropSide), max(int(float64(height)*f), minBackdropSide)
}

// backdropCache keeps recently encoded stills. Concurrent requests for the
// same still share one render.
type backdropCache struct {
	cfg    starfield.Config
	stills *lru.Cache[backdropKey, []byte]
	group  singleflight.Group
}

func newBackdropCache(cfg starfield.Config, size int) (*backdropCache, error) {
	stills, err := lru.New[backdropKey, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("backdrop cache: %w", err)
	}
	return &backdropCache{cfg: cfg, stills: stills}, nil
}

// png returns the encoded still for key, rendering it on a miss.
func (b *backdropCache) png(key backdropKey) ([]byte, error) {
	if data, ok := b.stills.Get(key); ok {
		return data, nil
	}
	v, err, _ := b.group.Do(key.String(), func() (any, error) {
		still := raster.Still(key.width, key.height, key.frames, b.cfg, starfield.NewRand(key.seed))
		var buf bytes.Buffer
		if err := still.EncodePNG(&buf); err != nil {
			return nil, err
		}
		data := buf.Bytes()
		b.stills.Add(key, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
