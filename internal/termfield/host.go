package termfield

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/nxc/galaxy-portfolio/internal/starfield"
)

// Host adapts a tcell screen to starfield.Host. A terminal has no document
// below the fold, so the document height is the screen height.
type Host struct {
	screen  tcell.Screen
	surface *Surface

	mu        sync.Mutex
	listeners map[int]func()
	nextID    int
}

func NewHost(screen tcell.Screen, cellW, cellH float64) *Host {
	return &Host{
		screen:    screen,
		surface:   NewSurface(screen, cellW, cellH),
		listeners: make(map[int]func()),
	}
}

func (h *Host) ViewportWidth() float64 {
	cols, _ := h.screen.Size()
	return float64(cols) * h.surface.cellW
}

func (h *Host) DocumentHeight() float64 {
	_, rows := h.screen.Size()
	return float64(rows) * h.surface.cellH
}

func (h *Host) Canvas() (starfield.Canvas, bool) {
	return h.surface, true
}

func (h *Host) OnResize(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// Listeners reports how many resize listeners are attached.
func (h *Host) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// HandleEvent reacts to one screen event. It returns false when the user
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.mu.Lock()
		fns := make([]func(), 0, len(h.listeners))
		for _, fn := range h.listeners {
			fns = append(fns, fn)
		}
		h.mu.Unlock()
		for _, fn := range fns {
			fn()
		}
	}
	return true
}
