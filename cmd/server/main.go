// robot-server serves the robot simulation over SSH. Every connection gets
// its own independent session; nothing is shared between players. Build:
//
//	go build -o robot-server ./cmd/server
//
// Usage:
//
//	./robot-server [--port 2222] [--key server_host_key] [--config robot.yaml] [--max-sessions 8]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"tile-robot/internal/config"
	"tile-robot/internal/game"
	internalssh "tile-robot/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes caps the SSH user name recorded in logs.
const maxNameBytes = 16

// defaultTerm is used when the client's TERM is missing or not allowed.
const defaultTerm = "xterm-256color"

// allowedTerms are the TERM values passed through to terminfo lookup.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	configPath := flag.String("config", "", "Path to a YAML settings file applied to every session")
	maxSessions := flag.Int("max-sessions", 8, "Maximum number of concurrent sessions")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Error("load config", "error", err)
			os.Exit(1)
		}
	}

	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "error", err)
		os.Exit(1)
	}

	s := newServer(cfg, *maxSessions, logger)
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: s.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}

// server runs one independent simulation per SSH session.
type server struct {
	cfg    config.Config
	logger *slog.Logger
	slots  chan struct{}
}

func newServer(cfg config.Config, maxSessions int, logger *slog.Logger) *server {
	if maxSessions < 1 {
		maxSessions = 1
	}
	return &server{
		cfg:    cfg,
		logger: logger,
		slots:  make(chan struct{}, maxSessions),
	}
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the game so the SSH session stays open.
func (s *server) handleSession(sess gossh.Session) {
	logger := s.logger.With("user", sanitizeName(sess.User()), "remote", sess.RemoteAddr().String())

	pty, winCh, hasPTY := sess.Pty()
	if !hasPTY {
		fmt.Fprintln(sess, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	select {
	case s.slots <- struct{}{}:
		defer func() { <-s.slots }()
	default:
		fmt.Fprintln(sess, "Server is full, try again later.")
		logger.Warn("session rejected", "reason", "full")
		return
	}

	screen, err := newSessionScreen(sess, pty, winCh)
	if err != nil {
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		logger.Warn("terminal setup", "error", err)
		return
	}

	g, err := game.New(screen, s.cfg, logger)
	if err != nil {
		screen.Fini()
		logger.Error("new game", "error", err)
		return
	}
	logger.Info("session started")
	g.Run()
	logger.Info("session ended")
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// newSessionScreen creates and initializes a tcell screen backed by sess.
func newSessionScreen(sess gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) (tcell.Screen, error) {
	term := pty.Term
	for _, env := range sess.Environ() {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			term = v
			break
		}
	}
	if !allowedTerms[term] {
		term = defaultTerm
	}

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(sess, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a multi-byte rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "robot-server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			logger.Warn("persist host key", "path", path, "error", err)
		}
	}
	return signer, nil
}
