// Package status implements ephemeral status messaging: transient success
// messages that auto-clear after a fixed window, sticky error messages, and
// short-lived pulse flags used for one-shot visual emphasis.
package status

import (
	"sync"
	"time"
)

const (
	// DefaultSuccessTTL is how long a success message stays visible.
	DefaultSuccessTTL = 3 * time.Second

	// DefaultPulseTTL is how long a pulse flag stays active.
	DefaultPulseTTL = 800 * time.Millisecond
)

// Board holds the transient messages of one page/screen. All methods are
// safe for concurrent use. Deferred clears are cancelled when the value is
// replaced and when the board is closed, so a late timer never clears a
// newer value.
type Board struct {
	mu     sync.Mutex
	closed bool

	successTTL time.Duration
	pulseTTL   time.Duration

	success      string
	successGen   uint64
	successTimer *time.Timer

	errMsg string

	pulses      map[string]uint64
	pulseGen    uint64
	pulseTimers map[string]*time.Timer
}

type Option func(*Board)

// WithTTLs overrides the clear windows; used by tests.
func WithTTLs(success, pulse time.Duration) Option {
	return func(b *Board) {
		b.successTTL = success
		b.pulseTTL = pulse
	}
}

func NewBoard(opts ...Option) *Board {
	b := &Board{
		successTTL:  DefaultSuccessTTL,
		pulseTTL:    DefaultPulseTTL,
		pulses:      make(map[string]uint64),
		pulseTimers: make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetSuccess shows msg and schedules its clear. A newer SetSuccess replaces
// the message and restarts the window.
func (b *Board) SetSuccess(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	if b.successTimer != nil {
		b.successTimer.Stop()
	}
	b.successGen++
	gen := b.successGen
	b.success = msg
	b.successTimer = time.AfterFunc(b.successTTL, func() { b.expireSuccess(gen) })
}

func (b *Board) expireSuccess(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.successGen != gen {
		return // replaced since this timer was armed
	}
	b.success = ""
}

// Success returns the currently visible success message, or "".
func (b *Board) Success() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.success
}

// ClearSuccess discards the success message immediately.
func (b *Board) ClearSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.successTimer != nil {
		b.successTimer.Stop()
	}
	b.successGen++
	b.success = ""
}

// SetError shows a sticky error message; it stays until replaced or cleared.
func (b *Board) SetError(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.errMsg = msg
}

// Error returns the current error message, or "".
func (b *Board) Error() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errMsg
}

// ClearError discards the error message.
func (b *Board) ClearError() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errMsg = ""
}

// Pulse activates a one-shot flag for key that expires after the pulse
// window. Re-pulsing a key restarts its window.
func (b *Board) Pulse(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	if t, ok := b.pulseTimers[key]; ok {
		t.Stop()
	}
	b.pulseGen++
	gen := b.pulseGen
	b.pulses[key] = gen
	b.pulseTimers[key] = time.AfterFunc(b.pulseTTL, func() { b.expirePulse(key, gen) })
}

func (b *Board) expirePulse(key string, gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pulses[key] != gen {
		return
	}
	delete(b.pulses, key)
	delete(b.pulseTimers, key)
}

// Active reports whether the pulse flag for key is currently set.
func (b *Board) Active(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.pulses[key]
	return ok
}

// Close cancels all pending clears and empties the board. Further Set calls
// are ignored.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	if b.successTimer != nil {
		b.successTimer.Stop()
	}
	for _, t := range b.pulseTimers {
		t.Stop()
	}
	b.success = ""
	b.errMsg = ""
	b.pulses = make(map[string]uint64)
	b.pulseTimers = make(map[string]*time.Timer)
}
