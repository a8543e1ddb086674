package game

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tile-robot/internal/system"

	"github.com/gdamore/tcell/v2"
)

// recorder collects posted events.
type recorder struct {
	mu     sync.Mutex
	events []tcell.Event
	posted chan struct{}
}

func newRecorder() *recorder { return &recorder{posted: make(chan struct{}, 16)} }

func (r *recorder) PostEvent(ev tcell.Event) error {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	r.posted <- struct{}{}
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestSchedulerPostsFollowUp(t *testing.T) {
	rec := newRecorder()
	s := NewScheduler(rec, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer s.Stop()

	want := system.Scheduled{Delay: time.Millisecond, Action: system.SpawnGlitch{DeadID: 3}}
	s.Schedule(want)

	select {
	case <-rec.posted:
	case <-time.After(2 * time.Second):
		t.Fatal("follow-up never posted")
	}
	rec.mu.Lock()
	intr, ok := rec.events[0].(*tcell.EventInterrupt)
	rec.mu.Unlock()
	if !ok {
		t.Fatalf("posted %T; want *tcell.EventInterrupt", rec.events[0])
	}
	if got, _ := intr.Data().(system.Scheduled); got != want {
		t.Errorf("data = %+v; want %+v", intr.Data(), want)
	}
}

func TestSchedulerDuplicatesAreAllowed(t *testing.T) {
	rec := newRecorder()
	s := NewScheduler(rec, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer s.Stop()

	f := system.Scheduled{Delay: time.Millisecond, Action: system.SpawnGlitch{DeadID: 1}}
	s.Schedule(f)
	s.Schedule(f)
	for i := 0; i < 2; i++ {
		select {
		case <-rec.posted:
		case <-time.After(2 * time.Second):
			t.Fatalf("only %d of 2 follow-ups posted", i)
		}
	}
}

func TestSchedulerStopCancelsPending(t *testing.T) {
	rec := newRecorder()
	s := NewScheduler(rec, slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.Schedule(system.Scheduled{Delay: time.Hour, Action: system.SpawnGlitch{DeadID: 1}})
	if s.Pending() != 1 {
		t.Fatalf("pending = %d; want 1", s.Pending())
	}
	s.Stop()
	s.Stop()
	if s.Pending() != 0 {
		t.Fatalf("pending after Stop = %d; want 0", s.Pending())
	}

	s.Schedule(system.Scheduled{Delay: 0, Action: system.SpawnGlitch{DeadID: 2}})
	time.Sleep(20 * time.Millisecond)
	if rec.count() != 0 {
		t.Fatal("nothing may be posted after Stop")
	}
}
