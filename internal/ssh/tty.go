// Package ssh adapts an SSH session to the terminal interface tcell draws on.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of an SSH channel. Keyboard input
// is read from the channel and frames are written back to it; window-change
// requests are forwarded to tcell as resize notifications.
type SessionTty struct {
	rw io.ReadWriteCloser

	mu     sync.Mutex
	window gossh.Window
	onSize func()
}

// NewSessionTty wraps an SSH channel (usually a gossh.Session). pty holds
// the initial window size; winCh delivers later resizes until it is closed.
func NewSessionTty(rw io.ReadWriteCloser, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	t := &SessionTty{rw: rw, window: pty.Window}
	go t.watch(winCh)
	return t
}

func (t *SessionTty) watch(winCh <-chan gossh.Window) {
	for win := range winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onSize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.rw.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.rw.Write(b) }

// Close closes the SSH channel, which ends the client's connection.
func (t *SessionTty) Close() error { return t.rw.Close() }

// The channel is raw from the moment the PTY was granted, so there is no
// terminal mode to switch.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the client's current terminal size.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers the callback tcell wants on every resize.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	t.mu.Unlock()
}
