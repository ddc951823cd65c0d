package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/gcfg.v1"

	"github.com/nxc/galaxy-portfolio/internal/starfield"
)

// StarfieldSection mirrors the [starfield] section of the tuning file. The
// page also hands it to the browser field as JSON. Variables left out of
// either keep their default.
type StarfieldSection struct {
	Count    int `json:"count"`
	MaxCount int `json:"maxCount"`

	Speed     float64 `json:"speed"`
	MinRadius float64 `json:"minRadius"`
	MaxRadius float64 `json:"maxRadius"`

	OpacityStep    float64 `json:"opacityStep"`
	OpacityFloor   float64 `json:"opacityFloor"`
	OpacityCeiling float64 `json:"opacityCeiling"`

	GlowThreshold float64 `json:"glowThreshold"`
	GlowSpread    float64 `json:"glowSpread"`
	GlowAlpha     float64 `json:"glowAlpha"`

	LinkDistance float64 `json:"linkDistance"`
	LinkAlpha    float64 `json:"linkAlpha"`
	LinkWidth    float64 `json:"linkWidth"`

	StarColor       string `json:"starColor"`
	GlowColor       string `json:"glowColor"`
	LinkColor       string `json:"linkColor"`
	BackgroundInner string `json:"backgroundInner"`
	BackgroundOuter string `json:"backgroundOuter"`
}

type starfieldFile struct {
	Starfield StarfieldSection
}

// SectionFrom renders c in the tuning file's terms.
func SectionFrom(c starfield.Config) StarfieldSection {
	return StarfieldSection{
		Count:           c.Count,
		MaxCount:        c.MaxCount,
		Speed:           c.Speed,
		MinRadius:       c.MinRadius,
		MaxRadius:       c.MaxRadius,
		OpacityStep:     c.OpacityStep,
		OpacityFloor:    c.OpacityFloor,
		OpacityCeiling:  c.OpacityCeiling,
		GlowThreshold:   c.GlowThreshold,
		GlowSpread:      c.GlowSpread,
		GlowAlpha:       c.GlowAlpha,
		LinkDistance:    c.LinkDistance,
		LinkAlpha:       c.LinkAlpha,
		LinkWidth:       c.LinkWidth,
		StarColor:       c.StarColor.String(),
		GlowColor:       c.GlowColor.String(),
		LinkColor:       c.LinkColor.String(),
		BackgroundInner: c.BackgroundInner.String(),
		BackgroundOuter: c.BackgroundOuter.String(),
	}
}

func (s StarfieldSection) apply() (starfield.Config, error) {
	c := starfield.Config{
		Count:          s.Count,
		MaxCount:       s.MaxCount,
		Speed:          s.Speed,
		MinRadius:      s.MinRadius,
		MaxRadius:      s.MaxRadius,
		OpacityStep:    s.OpacityStep,
		OpacityFloor:   s.OpacityFloor,
		OpacityCeiling: s.OpacityCeiling,
		GlowThreshold:  s.GlowThreshold,
		GlowSpread:     s.GlowSpread,
		GlowAlpha:      s.GlowAlpha,
		LinkDistance:   s.LinkDistance,
		LinkAlpha:      s.LinkAlpha,
		LinkWidth:      s.LinkWidth,
	}
	colors := []struct {
		name string
		src  string
		dst  *starfield.Color
	}{
		{"starColor", s.StarColor, &c.StarColor},
		{"glowColor", s.GlowColor, &c.GlowColor},
		{"linkColor", s.LinkColor, &c.LinkColor},
		{"backgroundInner", s.BackgroundInner, &c.BackgroundInner},
		{"backgroundOuter", s.BackgroundOuter, &c.BackgroundOuter},
	}
	for _, col := range colors {
		v, err := starfield.ParseColor(col.src)
		if err != nil {
			return starfield.Config{}, fmt.Errorf("%s: %w", col.name, err)
		}
		*col.dst = v
	}
	return c, nil
}

// LoadStarfield reads the tuning file at path over the defaults. A missing
// file yields starfield.DefaultConfig.
func LoadStarfield(path string) (starfield.Config, error) {
	def := starfield.DefaultConfig()
	if path == "" {
		return def, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return def, nil
	}

	file := starfieldFile{Starfield: SectionFrom(def)}
	if err := gcfg.ReadFileInto(&file, path); err != nil {
		return starfield.Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := file.Starfield.apply()
	if err != nil {
		return starfield.Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return starfield.Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	return cfg, nil
}

// ParseStarfieldJSON reads a JSON encoded StarfieldSection over the
// defaults, the way LoadStarfield reads the tuning file.
func ParseStarfieldJSON(data []byte) (starfield.Config, error) {
	section := SectionFrom(starfield.DefaultConfig())
	if err := json.Unmarshal(data, &section); err != nil {
		return starfield.Config{}, fmt.Errorf("starfield tuning: %w", err)
	}
	cfg, err := section.apply()
	if err != nil {
		return starfield.Config{}, fmt.Errorf("starfield tuning: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return starfield.Config{}, fmt.Errorf("starfield tuning: %w", err)
	}
	return cfg, nil
}
