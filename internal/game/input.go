package game

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Command is an action descriptor bound to a key: a namespace followed by
// the arguments system.Rules.Dispatch expects.
type Command struct {
	Namespace string
	Args      []any
}

func (c Command) String() string { return fmt.Sprintf("%s%v", c.Namespace, c.Args) }

// keyID identifies a physical key. Rune keys use tcell.KeyRune plus the
// lower-cased rune; named keys leave r zero.
type keyID struct {
	key tcell.Key
	r   rune
}

// namedKeys lists the non-rune keys a key table may bind.
var namedKeys = map[string]tcell.Key{
	"arrowUp":    tcell.KeyUp,
	"arrowDown":  tcell.KeyDown,
	"arrowLeft":  tcell.KeyLeft,
	"arrowRight": tcell.KeyRight,
	"enter":      tcell.KeyEnter,
	"tab":        tcell.KeyTab,
	"pageUp":     tcell.KeyPgUp,
	"pageDown":   tcell.KeyPgDn,
	"home":       tcell.KeyHome,
	"end":        tcell.KeyEnd,
}

// Bindings is the key table of one session.
type Bindings map[keyID]Command

// NewBindings builds a key table from config-style entries such as
// "a": ["robotAction", "move", "left"].
func NewBindings(table map[string][]string) (Bindings, error) {
	b := make(Bindings, len(table))
	for name, desc := range table {
		id, err := parseKeyName(name)
		if err != nil {
			return nil, err
		}
		if len(desc) == 0 {
			return nil, fmt.Errorf("key %q: empty action", name)
		}
		args := make([]any, 0, len(desc)-1)
		for _, a := range desc[1:] {
			args = append(args, a)
		}
		b[id] = Command{Namespace: desc[0], Args: args}
	}
	return b, nil
}

func parseKeyName(name string) (keyID, error) {
	if k, ok := namedKeys[name]; ok {
		return keyID{key: k}, nil
	}
	if name == "space" {
		return keyID{key: tcell.KeyRune, r: ' '}, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return keyID{key: tcell.KeyRune, r: unicode.ToLower(r)}, nil
	}
	return keyID{}, fmt.Errorf("unknown key name %q", name)
}

// Lookup returns the command bound to ev. Letter keys match either case.
func (b Bindings) Lookup(ev *tcell.EventKey) (Command, bool) {
	id := keyID{key: ev.Key()}
	if ev.Key() == tcell.KeyRune {
		id.r = unicode.ToLower(ev.Rune())
	}
	c, ok := b[id]
	return c, ok
}

// isQuit reports whether ev ends the session. Quit keys are not rebindable.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
