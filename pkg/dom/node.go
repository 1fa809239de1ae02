// Package dom provides an arena-backed DOM tree for HTML documents. All
// nodes are owned by a Store and addressed by stable integer ids; parent and
// child relations are stored as ids rather than pointers, so the tree has no
// reference cycles and removed ids are never reused.
package dom

import (
	"strconv"
	"strings"

	"github.com/yaklabco/htmldom/pkg/tag"
)

// NodeID identifies a node for the node's lifetime. Ids are assigned in
// increasing order and never reused, even after removal.
type NodeID int

// RootID is the id of the sentinel root node. The root always exists, has no
// payload, and is never removed.
const RootID NodeID = 0

// noParent marks the root's absent parent link.
const noParent NodeID = -1

// NodeKind classifies a node's payload.
type NodeKind uint8

const (
	// KindRoot is the payload-free sentinel at id 0.
	KindRoot NodeKind = iota
	// KindElement carries a tag and attributes.
	KindElement
	// KindData carries a UTF-8 text string.
	KindData
)

// Element is the payload of an element node.
type Element struct {
	Tag   tag.Tag
	Attrs []Attribute
}

// HTML renders the element's opening-tag text.
func (e *Element) HTML() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.Tag.String())
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.HTML())
	}
	b.WriteByte('>')
	return b.String()
}

// Node is a single node in the tree. Nodes are created and linked only by
// their owning Store.
type Node struct {
	id       NodeID
	parent   NodeID
	children []NodeID
	kind     NodeKind
	elem     *Element
	text     string
}

// ID returns the node's stable id.
func (n *Node) ID() NodeID { return n.id }

// Kind returns the payload classification.
func (n *Node) Kind() NodeKind { return n.kind }

// Parent returns the parent id. ok is false only for the root.
func (n *Node) Parent() (NodeID, bool) {
	if n.parent == noParent {
		return 0, false
	}
	return n.parent, true
}

// Children returns the child ids in document order. The slice is owned by
// the arena and must not be modified.
func (n *Node) Children() []NodeID { return n.children }

// IsElement reports whether the node carries an element payload.
func (n *Node) IsElement() bool { return n.kind == KindElement }

// IsData reports whether the node carries a text payload.
func (n *Node) IsData() bool { return n.kind == KindData }

// Element returns the element payload, or nil for data and root nodes.
func (n *Node) Element() *Element {
	if n.kind != KindElement {
		return nil
	}
	return n.elem
}

// Data returns the text payload, or "" for non-data nodes.
func (n *Node) Data() string { return n.text }

// HTML renders the node's own markup: the opening tag for elements, the
// literal text for data nodes, nothing for the root.
func (n *Node) HTML() string {
	switch n.kind {
	case KindElement:
		return n.elem.HTML()
	case KindData:
		return n.text
	default:
		return ""
	}
}

// String describes the node for outlines and debugging.
func (n *Node) String() string {
	switch n.kind {
	case KindElement:
		return "node(" + strconv.Itoa(int(n.id)) + ") element: " + n.elem.HTML()
	case KindData:
		return "node(" + strconv.Itoa(int(n.id)) + ") data: " + strconv.Quote(n.text)
	default:
		return "node(" + strconv.Itoa(int(n.id)) + ") root"
	}
}
