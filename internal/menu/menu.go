package menu

import (
	"fmt"

	"github.com/waykey/waykey/internal/keys"
)

// Entry is one menu row: either a command or a sub-menu. An entry is a
// sub-menu exactly when Submenu is non-nil.
type Entry struct {
	Chord    keys.Chord
	Desc     string
	Cmd      string
	KeepOpen bool
	Submenu  Page
}

// IsSubmenu reports whether the entry descends into a nested page.
func (e *Entry) IsSubmenu() bool {
	return e.Submenu != nil
}

// Label returns the description as rendered on screen. Sub-menu
// descriptions carry a leading "+".
func (e *Entry) Label() string {
	if e.IsSubmenu() {
		return "+" + e.Desc
	}
	return e.Desc
}

// Page is an ordered list of entries. Order is significant: resolution
// scans in order and the first matching chord wins.
type Page []*Entry

// Tree is the immutable menu hierarchy. It is built once from validated
// configuration and never mutated afterwards.
type Tree struct {
	root Page
}

// NewTree builds a Tree over the given root page.
func NewTree(root Page) *Tree {
	return &Tree{root: root}
}

// Root returns the top-level page.
func (t *Tree) Root() Page {
	return t.root
}

// Action is the outcome of resolving a key press. Exactly one of the
// concrete types below is returned.
type Action interface {
	isAction()
}

// Quit terminates the session. No entry resolves to it; the session
// produces quits itself, from Escape and from surface closure.
type Quit struct{}

// Exec runs a shell command. When KeepOpen is set the menu stays up
// after the command is spawned.
type Exec struct {
	Cmd      string
	KeepOpen bool
}

// Submenu switches the current page to the entry's children.
type Submenu struct {
	Page Page
}

func (Quit) isAction()    {}
func (Exec) isAction()    {}
func (Submenu) isAction() {}

// Nav is the mutable cursor over a Tree. It only ever repoints to a
// page that exists in the tree; entries are never copied.
type Nav struct {
	page Page
}

// NewNav returns a cursor positioned at the tree's root.
func NewNav(t *Tree) *Nav {
	return &Nav{page: t.root}
}

// Page returns the currently displayed page.
func (n *Nav) Page() Page {
	return n.page
}

// Enter repoints the cursor. This is the only mutation.
func (n *Nav) Enter(page Page) {
	n.page = page
}

// Resolve scans the page in order and returns the first matching
// entry's action, or nil when nothing matches. The observed keysym must
// already be normalized.
func Resolve(page Page, sym keys.Keysym, mods keys.ModifierState) Action {
	for _, entry := range page {
		if !entry.Chord.Matches(sym, mods) {
			continue
		}
		if entry.IsSubmenu() {
			return Submenu{Page: entry.Submenu}
		}
		return Exec{Cmd: entry.Cmd, KeepOpen: entry.KeepOpen}
	}
	return nil
}

// NavigateSequence resolves an ordered token sequence starting at the
// current page. Every intermediate resolution must be a sub-menu. The
// final token's action is returned without entering it, so a trailing
// command fires exactly once and a trailing sub-menu leaves the caller
// free to enter it. The cursor is never moved, so an invalid sequence
// leaves no observable state behind.
func (n *Nav) NavigateSequence(tokens []string) (Action, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("invalid key sequence: empty sequence")
	}

	page := n.page
	for i, tok := range tokens {
		single, err := keys.ParseSingle(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid key sequence: %w", err)
		}

		action := Resolve(page, single.Sym, single.Mods)
		if action == nil {
			return nil, fmt.Errorf("invalid key sequence: no entry for %q", tok)
		}

		if i == len(tokens)-1 {
			return action, nil
		}

		sub, ok := action.(Submenu)
		if !ok {
			return nil, fmt.Errorf("invalid key sequence: %q is not a submenu", tok)
		}
		page = sub.Page
	}

	return nil, nil
}
