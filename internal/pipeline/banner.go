package pipeline

import (
	"sync"
	"time"
)

// ErrorBanner keeps at most one error visible and removes each shown error
// after the timeout unless a newer one replaced it first.
type ErrorBanner struct {
	surface DisplaySurface
	timeout time.Duration

	mu      sync.Mutex
	visible uint64
	seq     uint64
	timer   *time.Timer
}

func NewErrorBanner(surface DisplaySurface, timeout time.Duration) *ErrorBanner {
	return &ErrorBanner{surface: surface, timeout: timeout}
}

func (b *ErrorBanner) Show(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.seq++
	id := b.seq
	b.visible = id
	b.surface.ShowError(message)

	if b.timeout > 0 {
		b.timer = time.AfterFunc(b.timeout, func() { b.expire(id) })
	}
}

func (b *ErrorBanner) expire(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.visible != id {
		return
	}
	b.visible = 0
	b.surface.ClearError()
}

func (b *ErrorBanner) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	if b.visible == 0 {
		return
	}
	b.visible = 0
	b.surface.ClearError()
}

// Visible reports whether an error is currently shown.
func (b *ErrorBanner) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible != 0
}
