package dom

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/htmldom/pkg/tag"
)

// noCursor means new nodes attach directly to the root.
const noCursor NodeID = -1

// Tree builds and owns a DOM assembled from tokenizer events. It implements
// the tokenizer's Handler contract; the cursor tracking the most recently
// opened, not-yet-closed element is transient parse state and is not stored
// in the arena.
type Tree struct {
	store  *Store
	cursor NodeID
	err    error
}

// NewTree creates an empty tree holding only the root sentinel.
func NewTree() *Tree {
	return &Tree{store: NewStore(), cursor: noCursor}
}

// HandleStartTag inserts an element node under the open element (or the
// root) and moves the cursor to it.
func (t *Tree) HandleStartTag(tg tag.Tag, attrs []Attribute) {
	if t.err != nil {
		return
	}
	id, err := t.store.NewNode(t.insertionPoint())
	if err != nil {
		t.err = err
		return
	}
	n := t.store.node(id)
	n.kind = KindElement
	n.elem = &Element{Tag: tg, Attrs: attrs}
	t.cursor = id
}

// HandleEndTag moves the cursor to the open element's parent. The closing
// tag's identity is not checked against the open element: a mismatched or
// extraneous closer still pops exactly one level. A closer with no open
// element is ignored.
func (t *Tree) HandleEndTag(tag.Tag) {
	if t.err != nil || t.cursor == noCursor {
		return
	}
	n := t.store.node(t.cursor)
	if p, ok := n.Parent(); ok {
		t.cursor = p
	} else {
		t.cursor = noCursor
	}
}

// HandleData inserts a text leaf under the open element (or the root). The
// bytes must decode as UTF-8; a decode failure is recorded and surfaces
// through Err.
func (t *Tree) HandleData(data []byte) {
	if t.err != nil {
		return
	}
	if !utf8.Valid(data) {
		t.err = fmt.Errorf("text node: %w", ErrInvalidUTF8)
		return
	}
	id, err := t.store.NewNode(t.insertionPoint())
	if err != nil {
		t.err = err
		return
	}
	n := t.store.node(id)
	n.kind = KindData
	n.text = string(data)
}

func (t *Tree) insertionPoint() NodeID {
	if t.cursor == noCursor {
		return RootID
	}
	return t.cursor
}

// Err reports the first failure recorded while handling events. Once set,
// further events are ignored.
func (t *Tree) Err() error { return t.err }

// Len counts live nodes, excluding the root sentinel.
func (t *Tree) Len() int { return t.store.Len() - 1 }

// IsLive reports whether id names a live node.
func (t *Tree) IsLive(id NodeID) bool { return t.store.IsLive(id) }

// Node returns the live node for id, or ErrNodeNotFound. Callers holding
// ids across mutations must check liveness first.
func (t *Tree) Node(id NodeID) (*Node, error) { return t.store.Node(id) }

// Remove tombstones the subtree rooted at id. No-op for dead ids and the
// root.
func (t *Tree) Remove(id NodeID) { t.store.Remove(id) }

// Retain removes every node for which keep returns false, cascading to
// descendants.
func (t *Tree) Retain(keep func(*Node) bool) { t.store.Retain(keep) }

// Recurse visits every node in pre-order, depth counted from 0 at the
// top-level nodes.
func (t *Tree) Recurse(visit func(id NodeID, depth int)) {
	t.store.Recurse(RootID, visit)
}

// HTML serializes the document in original document order with explicit
// closing tags throughout.
func (t *Tree) HTML() string { return t.store.HTML() }

// String renders an indented node outline for debugging.
func (t *Tree) String() string {
	var b strings.Builder
	t.Recurse(func(id NodeID, depth int) {
		n := t.store.node(id)
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.String())
		b.WriteByte('\n')
	})
	return b.String()
}
