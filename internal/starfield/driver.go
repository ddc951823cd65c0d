package starfield

import (
	"sync"
	"time"
)

// FrameDriver schedules frame callbacks. A driver runs at most one frame at
// a time and schedules nothing further once Stop has been called. Stop does
// not wait for a frame already in flight, so callers may hold locks the
// frame needs; the frame callback must tolerate running once after Stop.
type FrameDriver interface {
	Start(frame func())
	Stop()
}

const DefaultFrameInterval = 16 * time.Millisecond // ~60 FPS

// TickerDriver runs frames from a time.Ticker on its own goroutine.
type TickerDriver struct {
	Interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

func (d *TickerDriver) Start(frame func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return
	}

	interval := d.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	stop := make(chan struct{})
	d.stop = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				// both may be ready; stop wins
				select {
				case <-stop:
					return
				default:
				}
				frame()
			}
		}
	}()
}

func (d *TickerDriver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		close(d.stop)
		d.stop = nil
	}
}
