package main

import (
	"errors"
	"html/template"
	"io/fs"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nxc/galaxy-portfolio/internal/config"
	"github.com/nxc/galaxy-portfolio/internal/content"
)

var templateFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"odd": func(i int) bool { return i%2 == 1 },
}

func newRouter(cfg *config.Config, site *content.Site) (*gin.Engine, error) {
	stills, err := newBackdropCache(cfg.Starfield, backdropCacheSize)
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.SetFuncMap(templateFuncs)
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	r.Static("/images", cfg.ImagesDir)
	r.Static("/static", cfg.StaticDir)

	setupRoutes(r, cfg, site, stills)
	return r, nil
}

// backdropSeed picks the field layout served for the life of the process.
func backdropSeed(cfg *config.Config) uint64 {
	seed := cfg.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

// wasmBuilt reports whether `make wasm` has put the browser field into dir.
func wasmBuilt(dir string) bool {
	for _, name := range []string{"galaxy.wasm", "wasm_exec.js"} {
		if _, err := os.Stat(filepath.Join(dir, name)); errors.Is(err, fs.ErrNotExist) {
			return false
		}
	}
	return true
}

func setupRoutes(r *gin.Engine, cfg *config.Config, site *content.Site, stills *backdropCache) {
	seed := backdropSeed(cfg)
	liveField := wasmBuilt(cfg.StaticDir)
	if !liveField {
		log.Printf("No wasm build in %s, serving the still backdrop only", cfg.StaticDir)
	}

	// Home page route
	r.GET("/", func(c *gin.Context) {
		first := content.Categories[0]
		c.HTML(http.StatusOK, "index.html", gin.H{
			"profile":      site.Profile,
			"nav":          content.NavItems,
			"timeline":     site.Timeline,
			"journey":      site.Journey.Periods,
			"categories":   content.Categories,
			"category":     first,
			"techItems":    site.TechStack[first.Key],
			"projects":     site.Projects,
			"testimonials": site.Testimonials,
			"year":         time.Now().Year(),
			"backdropSeed": seed,
			"liveField":    liveField,
			// read by the wasm starfield on boot
			"galaxy": gin.H{
				"seed":   strconv.FormatUint(seed, 10),
				"tuning": config.SectionFrom(cfg.Starfield),
			},
		})
	})

	// HTMX tech stack tab
	r.GET("/tech-content", func(c *gin.Context) {
		cat, items, err := site.Tech(c.DefaultQuery("category", content.Categories[0].Key))
		if err != nil {
			c.HTML(http.StatusNotFound, "section-error.html", gin.H{
				"error": "That category does not exist.",
			})
			return
		}
		c.HTML(http.StatusOK, "tech-content.html", gin.H{
			"category":  cat,
			"techItems": items,
		})
	})

	// HTMX journey gallery, one slide at a time
	r.GET("/journey-content/:period", func(c *gin.Context) {
		idx, err := strconv.Atoi(c.Param("period"))
		if err != nil || idx < 0 || idx >= len(site.Journey.Periods) {
			c.HTML(http.StatusNotFound, "section-error.html", gin.H{
				"error": "That part of the journey does not exist.",
			})
			return
		}
		period := site.Journey.Periods[idx]
		if len(period.Gallery) == 0 {
			c.Status(http.StatusNoContent)
			return
		}
		slide, err := strconv.Atoi(c.DefaultQuery("slide", "0"))
		if err != nil {
			c.HTML(http.StatusNotFound, "section-error.html", gin.H{
				"error": "That slide does not exist.",
			})
			return
		}
		n := len(period.Gallery)
		slide = ((slide % n) + n) % n
		c.HTML(http.StatusOK, "journey-slide.html", gin.H{
			"periodIndex": idx,
			"period":      period,
			"slide":       period.Gallery[slide],
			"slideIndex":  slide,
			"prev":        (slide - 1 + n) % n,
			"next":        (slide + 1) % n,
			"total":       n,
		})
	})

	r.GET("/resume", func(c *gin.Context) {
		if site.Profile.ResumeLink == "" {
			c.Status(http.StatusNotFound)
			return
		}
		c.Redirect(http.StatusFound, site.Profile.ResumeLink)
	})

	// Still of the galaxy: no-JS fallback and social preview image
	r.GET("/backdrop.png", func(c *gin.Context) {
		width, err := intQuery(c, "w", 1280, minBackdropSide, maxBackdropSide)
		if err != nil {
			c.String(http.StatusBadRequest, "invalid w: %v", err)
			return
		}
		height, err := intQuery(c, "h", 2400, minBackdropSide, maxBackdropSide)
		if err != nil {
			c.String(http.StatusBadRequest, "invalid h: %v", err)
			return
		}
		frames, err := intQuery(c, "frames", 0, 0, maxStillFrames)
		if err != nil {
			c.String(http.StatusBadRequest, "invalid frames: %v", err)
			return
		}
		key := backdropKey{frames: frames, seed: seed}
		if s := c.Query("seed"); s != "" {
			if key.seed, err = strconv.ParseUint(s, 10, 64); err != nil {
				c.String(http.StatusBadRequest, "invalid seed: %v", err)
				return
			}
			if key.seed == 0 {
				key.seed = 1
			}
		}
		key.width, key.height = fitArea(width, height)

		data, err := stills.png(key)
		if err != nil {
			log.Printf("Error encoding backdrop: %v", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Header("Cache-Control", "public, max-age=86400")
		c.Data(http.StatusOK, "image/png", data)
	})
}

// intQuery parses an optional integer query value and clamps it to [lo, hi].
func intQuery(c *gin.Context, key string, fallback, lo, hi int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return min(max(v, lo), hi), nil
}
