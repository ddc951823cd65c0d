package starfield

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNoSurface = errors.New("starfield: no drawing surface")
	ErrNoContext = errors.New("starfield: drawing context unavailable")
)

// Host is the environment a Renderer mounts into.
type Host interface {
	Viewport
	// Canvas returns the element to draw into, or false when none exists.
	Canvas() (Canvas, bool)
	// OnResize registers fn for viewport resize events and returns a
	// function that unregisters it.
	OnResize(fn func()) (remove func())
}

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Renderer owns one mounted particle field. The particle slice is touched
// only from frame callbacks and Mount/Unmount, all serialized by mu.
type Renderer struct {
	host   Host
	driver FrameDriver
	cfg    Config
	rng    Rand

	mu           sync.Mutex
	state        State
	surface      Surface
	particles    []Particle
	removeResize func()
	frames       uint64
	// mount counts Mount calls; a frame from an earlier mount is dropped.
	mount uint64
}

// NewRenderer returns an Idle renderer. A nil rng seeds from the clock.
func NewRenderer(host Host, driver FrameDriver, cfg Config, rng Rand) *Renderer {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	return &Renderer{
		host:   host,
		driver: driver,
		cfg:    cfg,
		rng:    rng,
	}
}

// Mount sizes the canvas, seeds the particles and starts the frame loop.
// When the host has no canvas or no drawing context the renderer stays Idle
// and the matching sentinel error is returned. Mounting a Running renderer
// does nothing.
func (r *Renderer) Mount() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == Running {
		return nil
	}
	canvas, ok := r.host.Canvas()
	if !ok || canvas == nil {
		return ErrNoSurface
	}
	surface, ok := canvas.Context()
	if !ok || surface == nil {
		return ErrNoContext
	}

	sizer := Sizer{Viewport: r.host, Canvas: canvas}
	sizer.Resize()
	r.removeResize = r.host.OnResize(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.state == Running {
			sizer.Resize()
		}
	})

	r.surface = surface
	r.particles = Initialize(r.cfg.Count, surface.Size(), r.cfg, r.rng)
	r.frames = 0
	r.state = Running
	r.mount++
	mount := r.mount
	r.driver.Start(func() { r.frame(mount) })
	return nil
}

// Unmount cancels the pending frame, detaches the resize listener and drops
// the particles. Unmounting an Idle renderer does nothing.
func (r *Renderer) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Running {
		return
	}
	r.driver.Stop()
	if r.removeResize != nil {
		r.removeResize()
		r.removeResize = nil
	}
	r.particles = nil
	r.surface = nil
	r.state = Idle
}

func (r *Renderer) frame(mount uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Running || mount != r.mount {
		return
	}
	Advance(r.particles, r.surface.Size(), r.cfg)
	RenderFrame(r.particles, r.surface, r.cfg)
	r.frames++
}

func (r *Renderer) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Frames reports how many frames ran since the last Mount.
func (r *Renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Particles returns a snapshot of the current field.
func (r *Renderer) Particles() []Particle {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Particle, len(r.particles))
	copy(out, r.particles)
	return out
}
