// Package i18n holds the translation catalogs served to the UI and the
// dotted-path resolver that reads them.
package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Tree is a nested translation catalog. Every node is exactly one of: a string
// leaf, a branch of named children, or an opaque value (numbers, booleans,
// arrays, null) that lookups treat as missing.
type Tree struct {
	text     string
	leaf     bool
	children map[string]*Tree
	opaque   json.RawMessage
}

func NewTree() *Tree {
	return &Tree{children: make(map[string]*Tree)}
}

// ParseTree decodes a catalog document. The root must be a JSON object.
func ParseTree(data []byte) (*Tree, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("catalog root must be a JSON object")
	}
	t := NewTree()
	if err := json.Unmarshal(trimmed, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) isBranch() bool {
	return t.children != nil
}

// Lookup walks a dotted path. It reports false unless every segment exists and
// the final node is a string leaf. An empty string leaf is found.
func (t *Tree) Lookup(path string) (string, bool) {
	if t == nil || path == "" {
		return "", false
	}
	node := t
	for _, seg := range strings.Split(path, ".") {
		if !node.isBranch() {
			return "", false
		}
		next, ok := node.children[seg]
		if !ok {
			return "", false
		}
		node = next
	}
	if !node.leaf {
		return "", false
	}
	return node.text, true
}

// Set stores text at a dotted path, creating branches as needed. A leaf or
// opaque node in the way is replaced by a branch.
func (t *Tree) Set(path, text string) {
	if path == "" {
		return
	}
	segs := strings.Split(path, ".")
	node := t
	for _, seg := range segs[:len(segs)-1] {
		next, ok := node.children[seg]
		if !ok || !next.isBranch() {
			next = NewTree()
			node.children[seg] = next
		}
		node = next
	}
	node.children[segs[len(segs)-1]] = &Tree{text: text, leaf: true}
}

// Merge copies every node of other into t; other wins on conflicts.
func (t *Tree) Merge(other *Tree) {
	if other == nil || !other.isBranch() {
		return
	}
	for name, child := range other.children {
		existing, ok := t.children[name]
		if ok && existing.isBranch() && child.isBranch() {
			existing.Merge(child)
			continue
		}
		t.children[name] = child.Clone()
	}
}

func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	c := &Tree{text: t.text, leaf: t.leaf}
	if t.opaque != nil {
		c.opaque = append(json.RawMessage(nil), t.opaque...)
	}
	if t.isBranch() {
		c.children = make(map[string]*Tree, len(t.children))
		for name, child := range t.children {
			c.children[name] = child.Clone()
		}
	}
	return c
}

// Len counts string leaves.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	if t.leaf {
		return 1
	}
	n := 0
	for _, child := range t.children {
		n += child.Len()
	}
	return n
}

func (t *Tree) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*t = Tree{}
	if len(data) == 0 {
		return fmt.Errorf("empty catalog value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		t.text = s
		t.leaf = true
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		t.children = make(map[string]*Tree, len(raw))
		for name, value := range raw {
			child := &Tree{}
			if err := child.UnmarshalJSON(value); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			t.children[name] = child
		}
	default:
		t.opaque = append(json.RawMessage(nil), data...)
	}
	return nil
}

func (t *Tree) MarshalJSON() ([]byte, error) {
	switch {
	case t.leaf:
		return json.Marshal(t.text)
	case t.isBranch():
		return json.Marshal(t.children)
	case t.opaque != nil:
		return t.opaque, nil
	}
	return []byte("null"), nil
}
