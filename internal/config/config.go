// Package config reads server settings from the environment and the
// starfield tuning from an optional gcfg file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/nxc/galaxy-portfolio/internal/starfield"
)

type Config struct {
	Port          string
	GinMode       string
	ContentDir    string
	TemplatesGlob string
	StaticDir     string
	ImagesDir     string
	// StarfieldFile is the gcfg tuning file; missing means defaults.
	StarfieldFile string
	// Seed fixes the backdrop layout; 0 picks a new one per page load.
	Seed uint64

	Starfield starfield.Config
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load builds the configuration. Callers are expected to have loaded .env
// already (main imports godotenv/autoload).
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		GinMode:       getenv("GIN_MODE", "debug"),
		ContentDir:    getenv("CONTENT_DIR", "./content"),
		TemplatesGlob: getenv("TEMPLATES_GLOB", "templates/*"),
		StaticDir:     getenv("STATIC_DIR", "./static"),
		ImagesDir:     getenv("IMAGES_DIR", "./images"),
		StarfieldFile: getenv("STARFIELD_CONFIG", "starfield.gcfg"),
	}

	if s := os.Getenv("STARFIELD_SEED"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("STARFIELD_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	sf, err := LoadStarfield(cfg.StarfieldFile)
	if err != nil {
		return nil, err
	}
	cfg.Starfield = sf

	if cfg.GinMode == "debug" {
		log.Printf("Config: content=%s templates=%s starfield=%s count=%d",
			cfg.ContentDir, cfg.TemplatesGlob, cfg.StarfieldFile, sf.Count)
	}
	return cfg, nil
}
