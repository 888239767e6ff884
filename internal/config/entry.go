package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/waykey/waykey/internal/keys"
	"github.com/waykey/waykey/internal/menu"
)

// Entry is one configured menu item: a command or a nested sub-menu.
type Entry struct {
	Key      keys.Chord `yaml:"key"`
	Desc     string     `yaml:"desc"`
	Cmd      string     `yaml:"cmd"`
	KeepOpen bool       `yaml:"keep_open"`
	Submenu  Entries    `yaml:"submenu"`
}

// Entries is an ordered list of menu items. It accepts two YAML shapes:
// the current one, a sequence of entries with an explicit "key" field,
// and the legacy one, a mapping from chord token to entry. A legacy
// document sets Legacy so the loader can warn about it.
type Entries struct {
	Items  []Entry
	Legacy bool
}

// UnmarshalYAML decodes either entry shape, preserving insertion order.
func (e *Entries) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var items []Entry
		if err := node.Decode(&items); err != nil {
			return err
		}
		e.Items = items
		return nil

	case yaml.MappingNode:
		return e.unmarshalLegacy(node)

	default:
		return fmt.Errorf("line %d: menu must be a list of entries", node.Line)
	}
}

// unmarshalLegacy walks a legacy mapping node pairwise. yaml.Node keeps
// mapping entries in document order, which is significant for layout.
func (e *Entries) unmarshalLegacy(node *yaml.Node) error {
	e.Legacy = true
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var chord keys.Chord
		if err := keyNode.Decode(&chord); err != nil {
			return err
		}

		var entry legacyEntry
		if err := valNode.Decode(&entry); err != nil {
			return err
		}

		item := Entry{
			Key:      chord,
			Desc:     entry.Desc,
			Cmd:      entry.Cmd,
			KeepOpen: entry.KeepOpen,
			Submenu:  entry.Submenu,
		}
		item.Submenu.Legacy = false
		e.Items = append(e.Items, item)
	}
	return nil
}

// legacyEntry is the value shape of the legacy mapping format.
type legacyEntry struct {
	Desc     string  `yaml:"desc"`
	Cmd      string  `yaml:"cmd"`
	KeepOpen bool    `yaml:"keep_open"`
	Submenu  Entries `yaml:"submenu"`
}

// validate checks structural rules the decoder cannot express: every
// entry has a chord and is exactly one of command or sub-menu.
func (e *Entries) validate() error {
	for i := range e.Items {
		entry := &e.Items[i]
		if entry.Key.IsZero() {
			return fmt.Errorf("menu entry %q has no key", entry.Desc)
		}
		hasCmd := entry.Cmd != ""
		hasSub := len(entry.Submenu.Items) > 0
		switch {
		case hasCmd && hasSub:
			return fmt.Errorf("menu entry %q has both cmd and submenu", entry.Key)
		case !hasCmd && !hasSub:
			return fmt.Errorf("menu entry %q has neither cmd nor submenu", entry.Key)
		}
		if hasSub {
			if err := entry.Submenu.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// page converts validated entries into the immutable menu model.
func (e *Entries) page() menu.Page {
	if len(e.Items) == 0 {
		return nil
	}
	page := make(menu.Page, 0, len(e.Items))
	for i := range e.Items {
		entry := &e.Items[i]
		page = append(page, &menu.Entry{
			Chord:    entry.Key,
			Desc:     entry.Desc,
			Cmd:      entry.Cmd,
			KeepOpen: entry.KeepOpen,
			Submenu:  entry.Submenu.page(),
		})
	}
	return page
}
