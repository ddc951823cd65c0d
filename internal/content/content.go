// Package content loads the static JSON that fills the portfolio sections.
package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

type SocialLinks struct {
	Email     string `json:"email" validate:"required,email"`
	GitHub    string `json:"github" validate:"omitempty,url"`
	LinkedIn  string `json:"linkedin" validate:"omitempty,url"`
	Facebook  string `json:"facebook" validate:"omitempty,url"`
	Telegram  string `json:"telegram" validate:"omitempty,url"`
	Instagram string `json:"instagram" validate:"omitempty,url"`
}

type Profile struct {
	Name         string      `json:"name" validate:"required"`
	Title        string      `json:"title" validate:"required"`
	Location     string      `json:"location"`
	Bio          string      `json:"bio"`
	Tagline      string      `json:"tagline"`
	ProfileImage string      `json:"profileImage"`
	ResumeLink   string      `json:"resumeLink" validate:"omitempty,url"`
	SocialLinks  SocialLinks `json:"socialLinks"`
}

type Education struct {
	Year        string `json:"year" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	Description string `json:"description"`
}

type Achievement struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Timeline struct {
	Education    []Education   `json:"education" validate:"dive"`
	Achievements []Achievement `json:"achievements" validate:"dive"`
}

type Slide struct {
	Src     string `json:"src" validate:"required"`
	Caption string `json:"caption"`
}

type Period struct {
	Title        string   `json:"title" validate:"required"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Gallery      []Slide  `json:"gallery" validate:"dive"`
}

type Journey struct {
	Periods []Period `json:"periods" validate:"dive"`
}

type TechItem struct {
	Name        string `json:"name" validate:"required"`
	Proficiency int    `json:"proficiency" validate:"min=0,max=100"`
	Years       string `json:"years"`
}

type ProjectLinks struct {
	Demo string `json:"demo" validate:"omitempty,url"`
	Repo string `json:"repo" validate:"omitempty,url"`
}

type Project struct {
	Name    string       `json:"name" validate:"required"`
	Summary string       `json:"summary" validate:"required"`
	Image   string       `json:"image"`
	Tech    []string     `json:"tech"`
	Links   ProjectLinks `json:"links"`
}

type Testimonial struct {
	Name  string `json:"name" validate:"required"`
	Title string `json:"title"`
	Quote string `json:"quote" validate:"required"`
	Image string `json:"image"`
}

// Site is everything the page renders.
type Site struct {
	Profile      Profile
	Timeline     Timeline
	Journey      Journey
	TechStack    map[string][]TechItem
	Projects     []Project
	Testimonials []Testimonial
}

var ErrUnknownCategory = errors.New("unknown tech category")

// Tech returns the items for a category key.
func (s *Site) Tech(key string) (Category, []TechItem, error) {
	cat, ok := CategoryByKey(key)
	if !ok {
		return Category{}, nil, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}
	return cat, s.TechStack[key], nil
}

var validate = validator.New()

// Load reads and validates every content file under dir.
func Load(dir string) (*Site, error) {
	site := &Site{}
	files := []struct {
		name string
		dst  any
	}{
		{"profile.json", &site.Profile},
		{"timeline.json", &site.Timeline},
		{"journey.json", &site.Journey},
		{"techstack.json", &site.TechStack},
		{"projects.json", &site.Projects},
		{"testimonials.json", &site.Testimonials},
	}
	for _, f := range files {
		if err := readJSON(filepath.Join(dir, f.name), f.dst); err != nil {
			return nil, err
		}
	}

	if err := validate.Struct(site.Profile); err != nil {
		return nil, fmt.Errorf("profile.json: %w", err)
	}
	if err := validate.Struct(site.Timeline); err != nil {
		return nil, fmt.Errorf("timeline.json: %w", err)
	}
	if err := validate.Struct(site.Journey); err != nil {
		return nil, fmt.Errorf("journey.json: %w", err)
	}
	for key, items := range site.TechStack {
		if _, ok := CategoryByKey(key); !ok {
			return nil, fmt.Errorf("techstack.json: %w: %q", ErrUnknownCategory, key)
		}
		if err := validateEach(items); err != nil {
			return nil, fmt.Errorf("techstack.json: %s: %w", key, err)
		}
	}
	if err := validateEach(site.Projects); err != nil {
		return nil, fmt.Errorf("projects.json: %w", err)
	}
	if err := validateEach(site.Testimonials); err != nil {
		return nil, fmt.Errorf("testimonials.json: %w", err)
	}
	return site, nil
}

func validateEach[T any](items []T) error {
	for i := range items {
		if err := validate.Struct(items[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
