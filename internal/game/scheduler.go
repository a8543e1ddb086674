package game

import (
	"log/slog"
	"sync"
	"time"

	"tile-robot/internal/system"

	"github.com/gdamore/tcell/v2"
)

// poster is the part of tcell.Screen the scheduler needs.
type poster interface {
	PostEvent(ev tcell.Event) error
}

// Scheduler holds follow-up actions until their delay elapses, then posts
// them to the session's event queue as *tcell.EventInterrupt carrying the
// system.Scheduled value. The event loop dispatches them, so the reducer
// only ever runs on the loop goroutine.
type Scheduler struct {
	post   poster
	logger *slog.Logger

	mu      sync.Mutex
	nextKey uint64
	timers  map[uint64]*time.Timer
	stopped bool
}

// NewScheduler creates a Scheduler that posts fired follow-ups to p.
func NewScheduler(p poster, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		post:   p,
		logger: logger,
		timers: make(map[uint64]*time.Timer),
	}
}

// Schedule arms a timer for f. Scheduling after Stop is ignored.
func (s *Scheduler) Schedule(f system.Scheduled) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	key := s.nextKey
	s.nextKey++
	s.timers[key] = time.AfterFunc(f.Delay, func() { s.fire(key, f) })
}

func (s *Scheduler) fire(key uint64, f system.Scheduled) {
	s.mu.Lock()
	delete(s.timers, key)
	stopped := s.stopped
	s.mu.Unlock()
	if stopped {
		return
	}
	if err := s.post.PostEvent(tcell.NewEventInterrupt(f)); err != nil {
		s.logger.Warn("follow-up dropped", "action", f.Name(), "args", f.Args(), "error", err)
	}
}

// Pending reports how many follow-ups have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels every pending follow-up. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}
