package session

import (
	"context"
	"sync"
	"time"
)

// Loop drives a Session on a timer. At most one driver goroutine runs at a
// time; all methods are safe for concurrent use.
type Loop struct {
	session *Session

	mu       sync.Mutex
	speed    int
	unit     time.Duration
	running  bool
	cancel   context.CancelFunc
	done     chan struct{}
	periodCh chan time.Duration
}

// NewLoop returns a stopped Loop over s with speed 50 and a 1ms unit.
func NewLoop(s *Session, opts ...LoopOption) *Loop {
	l := &Loop{
		session:  s,
		speed:    DefaultSpeed,
		unit:     time.Millisecond,
		periodCh: make(chan time.Duration, 1),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Session returns the driven session.
func (l *Loop) Session() *Session {
	return l.session
}

// Start launches the driver. It returns ErrAlreadyRunning if a driver is
// active. The driver stops on Stop, Reset or ctx cancellation.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.running, l.cancel, l.done = true, cancel, done
	select {
	case <-l.periodCh:
	default:
	}
	go l.run(ctx, done, l.periodLocked())

	return nil
}

func (l *Loop) run(ctx context.Context, done chan struct{}, period time.Duration) {
	ticker := time.NewTicker(period)
	defer func() {
		ticker.Stop()
		l.mu.Lock()
		if l.done == done {
			l.running, l.cancel = false, nil
		}
		l.mu.Unlock()
		close(done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case p := <-l.periodCh:
			ticker.Reset(p)
		case <-ticker.C:
			// A cancellation racing with a tick wins.
			if ctx.Err() != nil {
				return
			}
			l.session.Step()
		}
	}
}

// Stop cancels the driver and waits for it to exit, so no step starts
// after Stop returns. Stopping a stopped loop is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	cancel, done := l.cancel, l.done
	l.mu.Unlock()

	cancel()
	<-done
}

// Wait blocks until the current driver, if any, exits.
func (l *Loop) Wait() {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Running reports whether a driver is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.running
}

// Reset stops the driver, then regenerates the session's data.
func (l *Loop) Reset() error {
	l.Stop()

	return l.session.Reset()
}

// SetSpeed changes the speed, clamped to [MinSpeed, MaxSpeed]. A running
// driver picks up the new period immediately.
func (l *Loop) SetSpeed(speed int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.speed = min(max(speed, MinSpeed), MaxSpeed)
	if !l.running {
		return
	}
	select {
	case <-l.periodCh:
	default:
	}
	l.periodCh <- l.periodLocked()
}

// Speed returns the current speed.
func (l *Loop) Speed() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.speed
}

// Period returns (100 − speed) × unit.
func (l *Loop) Period() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.periodLocked()
}

func (l *Loop) periodLocked() time.Duration {
	return time.Duration(periodBase-l.speed) * l.unit
}
