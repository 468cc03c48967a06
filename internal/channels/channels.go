package channels

import (
	"errors"
	"sync"

	"github.com/AbdulWasayUl/go-weather-widget/models"
)

var (
	ErrClosed    = errors.New("trigger queue is closed")
	ErrQueueFull = errors.New("trigger queue is full")
)

const defaultBufferSize = 100

type Channels struct {
	Triggers chan models.Trigger
	WG       *sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func New(bufferSize int) *Channels {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Channels{
		Triggers: make(chan models.Trigger, bufferSize),
		WG:       &sync.WaitGroup{},
	}
}

// Submit queues t without blocking. The WaitGroup counts t until a worker finishes it.
func (c *Channels) Submit(t models.Trigger) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClosed
	}

	c.WG.Add(1)
	select {
	case c.Triggers <- t:
		return nil
	default:
		c.WG.Done()
		return ErrQueueFull
	}
}

// Close stops accepting triggers; queued ones are still delivered.
func (c *Channels) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Triggers)
}
