// Package game runs one interactive simulation session on a tcell screen.
package game

import (
	"fmt"
	"log/slog"

	"tile-robot/internal/config"
	"tile-robot/internal/render"
	"tile-robot/internal/system"

	"github.com/gdamore/tcell/v2"
)

// maxMessages bounds the in-memory message log.
const maxMessages = 50

// Game owns one session: its state, rules, key table and timers. All
// dispatch happens on the goroutine running Run.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	rules    system.Rules
	state    system.State
	keys     Bindings
	sched    *Scheduler
	logger   *slog.Logger
	messages []string

	// lastButtons suppresses repeated interacts while a mouse button is held.
	lastButtons tcell.ButtonMask
}

// NewLocal creates a Game on the process terminal.
func NewLocal(cfg config.Config, logger *slog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := New(screen, cfg, logger)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// New creates a Game on an initialized screen.
func New(screen tcell.Screen, cfg config.Config, logger *slog.Logger) (*Game, error) {
	keys, err := NewBindings(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("key table: %w", err)
	}
	screen.EnableMouse()

	rules := cfg.Rules()
	g := &Game{
		screen: screen,
		renderer: render.NewRenderer(screen, render.Viewport{
			TilePixels:  cfg.TilePixels,
			CanvasTiles: cfg.CanvasTiles,
		}),
		rules:  rules,
		state:  rules.NewState(),
		keys:   keys,
		sched:  NewScheduler(screen, logger),
		logger: logger,
	}
	return g, nil
}

// State returns the current simulation state.
func (g *Game) State() system.State { return g.state }

// Run is the main loop. It returns when the player quits or the screen
// closes, and cancels any follow-ups still pending.
func (g *Game) Run() {
	defer g.screen.Fini()
	defer g.sched.Stop()

	g.addMessage("wasd move, r respawn, arrows pan, +/- zoom, click to interact, q quits.")
	for {
		g.draw()
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		if !g.handleEvent(ev) {
			return
		}
	}
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.state)
	g.renderer.DrawHUD(g.state, g.messages)
}

// handleEvent processes one event and reports whether the loop should continue.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if cmd, ok := g.keys.Lookup(ev); ok {
			g.dispatch(cmd.Namespace, cmd.Args...)
		}
	case *tcell.EventMouse:
		g.handleMouse(ev)
	case *tcell.EventInterrupt:
		if f, ok := ev.Data().(system.Scheduled); ok {
			g.fireFollowUp(f)
		}
	}
	return true
}

// handleMouse sends a left click on the canvas as an interact with that tile.
func (g *Game) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && g.lastButtons&tcell.Button1 == 0
	g.lastButtons = buttons
	if !pressed {
		return
	}
	col, row := ev.Position()
	x, y, ok := g.renderer.ScreenToTile(g.state.Camera, col, row)
	if !ok {
		return
	}
	g.dispatch(system.NSRobot, "interact", x, y)
}

// dispatch runs one key or mouse command through the reducer.
// Errors are wiring bugs: they are logged and the state is left as it was.
func (g *Game) dispatch(namespace string, args ...any) {
	step, err := g.rules.Dispatch(g.state, namespace, args...)
	g.commit(step, err, namespace, args)
}

func (g *Game) fireFollowUp(f system.Scheduled) {
	g.logger.Debug("follow-up fired", "action", f.Name(), "args", f.Args())
	step, err := g.rules.Redispatch(g.state, f)
	ns, name, args := f.Action.Descriptor()
	g.commit(step, err, ns, append([]any{name}, args...))
}

// commit adopts a successful step and arms its follow-ups.
func (g *Game) commit(step system.Step, err error, namespace string, args []any) {
	if err != nil {
		g.fail(namespace, args, err)
		return
	}
	g.logger.Debug("dispatch", "namespace", namespace, "args", args, "scheduled", len(step.Scheduled))
	before := g.state
	g.state = step.State
	for _, f := range step.Scheduled {
		g.sched.Schedule(f)
	}
	if msg := describe(before, step.State, step.Action); msg != "" {
		g.logger.Info(msg, "namespace", namespace)
		g.addMessage(msg)
	}
}

func (g *Game) fail(namespace string, args []any, err error) {
	g.logger.Error("dispatch failed", "namespace", namespace, "args", args, "error", err)
	g.addMessage("error: " + err.Error())
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
