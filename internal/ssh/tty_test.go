package ssh

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

type fakeChannel struct {
	bytes.Buffer
	closed bool
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

var _ io.ReadWriteCloser = (*fakeChannel)(nil)
var _ tcell.Tty = (*SessionTty)(nil)

func TestWindowSizeFollowsResizes(t *testing.T) {
	winCh := make(chan gossh.Window)
	defer close(winCh)
	tty := NewSessionTty(&fakeChannel{}, gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}, winCh)

	ws, err := tty.WindowSize()
	if err != nil || ws.Width != 80 || ws.Height != 24 {
		t.Fatalf("initial size = %+v, %v; want 80x24", ws, err)
	}

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })
	winCh <- gossh.Window{Width: 120, Height: 40}

	select {
	case <-resized:
	case <-time.After(2 * time.Second):
		t.Fatal("resize callback not invoked")
	}
	ws, _ = tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Fatalf("size after resize = %+v; want 120x40", ws)
	}
}

func TestReadWriteClosePassThrough(t *testing.T) {
	ch := &fakeChannel{}
	ch.WriteString("w")
	winCh := make(chan gossh.Window)
	defer close(winCh)
	tty := NewSessionTty(ch, gossh.Pty{}, winCh)

	buf := make([]byte, 4)
	n, err := tty.Read(buf)
	if err != nil || string(buf[:n]) != "w" {
		t.Fatalf("Read = %q, %v", buf[:n], err)
	}
	if _, err := tty.Write([]byte("frame")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if ch.String() != "frame" {
		t.Errorf("channel holds %q; want frame", ch.String())
	}
	if err := tty.Close(); err != nil || !ch.closed {
		t.Fatal("Close should close the channel")
	}
}
