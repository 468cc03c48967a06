package pipeline

import (
	"math"
	"sync"
	"time"
)

// Animator drives integer tweens off a frame ticker.
type Animator struct {
	frame time.Duration
}

func NewAnimator(frame time.Duration) *Animator {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	return &Animator{frame: frame}
}

// Animation is a running tween. Cancel stops it; no write happens after
// Cancel returns.
type Animation struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func (a *Animation) Cancel() {
	a.stopOnce.Do(func() { close(a.stop) })
	<-a.done
}

// Done is closed once the final frame was written or the animation was canceled.
func (a *Animation) Done() <-chan struct{} {
	return a.done
}

// Interpolate returns floor(from + progress*(to-from)) with progress clamped to [0,1].
func Interpolate(from, to int, progress float64) int {
	progress = math.Max(0, math.Min(1, progress))
	return int(math.Floor(float64(from) + progress*float64(to-from)))
}

// Start writes from, then one interpolated value per frame until the
// duration has elapsed. A non-positive duration writes to synchronously.
func (an *Animator) Start(from, to int, duration time.Duration, write func(int)) *Animation {
	a := &Animation{stop: make(chan struct{}), done: make(chan struct{})}
	if duration <= 0 {
		write(to)
		close(a.done)
		return a
	}

	go func() {
		defer close(a.done)

		ticker := time.NewTicker(an.frame)
		defer ticker.Stop()

		start := time.Now()
		write(from)
		for {
			select {
			case <-a.stop:
				return
			case now := <-ticker.C:
				progress := float64(now.Sub(start)) / float64(duration)
				select {
				case <-a.stop:
					return
				default:
				}
				write(Interpolate(from, to, progress))
				if progress >= 1 {
					return
				}
			}
		}
	}()
	return a
}
