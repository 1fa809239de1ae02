package dom

import (
	"fmt"
	"strings"
)

// Store is the arena owning every node of one tree. The id-to-slot mapping
// is append-only: removal tombstones a slot (sets it to nil) but never
// shrinks the mapping or reassigns its id.
type Store struct {
	// nodes is indexed by NodeID. A nil slot is a tombstone.
	nodes []*Node
}

// NewStore creates an arena holding only the root sentinel.
func NewStore() *Store {
	return &Store{
		nodes: []*Node{{id: RootID, parent: noParent, kind: KindRoot}},
	}
}

// IsLive reports whether id names a live (non-tombstoned) node.
func (s *Store) IsLive(id NodeID) bool {
	return id >= 0 && int(id) < len(s.nodes) && s.nodes[id] != nil
}

// Node returns the live node for id, or ErrNodeNotFound.
func (s *Store) Node(id NodeID) (*Node, error) {
	if !s.IsLive(id) {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	return s.nodes[id], nil
}

// node is the unchecked lookup for internal callers that have already
// established liveness.
func (s *Store) node(id NodeID) *Node { return s.nodes[id] }

// NewNode allocates the next id, links it under parent, and returns it. The
// payload is unset until populated by the caller. Fails with
// ErrInvalidParent when parent is not a live node.
func (s *Store) NewNode(parent NodeID) (NodeID, error) {
	if !s.IsLive(parent) {
		return 0, fmt.Errorf("insert under %d: %w", parent, ErrInvalidParent)
	}
	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, &Node{id: id, parent: parent})
	p := s.nodes[parent]
	p.children = append(p.children, id)
	return id, nil
}

// Remove tombstones the subtree rooted at id, detaching every removed node
// from its parent's child list. No-op when id is not live or is the root.
func (s *Store) Remove(id NodeID) {
	if id == RootID || !s.IsLive(id) {
		return
	}

	var doomed []NodeID
	s.collect(id, &doomed)

	// Children precede parents in doomed, so each node's parent slot is
	// still populated when the node is detached.
	for _, d := range doomed {
		n := s.nodes[d]
		p := s.nodes[n.parent]
		kept := p.children[:0]
		for _, c := range p.children {
			if c != d {
				kept = append(kept, c)
			}
		}
		p.children = kept
		s.nodes[d] = nil
	}
}

// collect appends the subtree rooted at id, children before self.
func (s *Store) collect(id NodeID, out *[]NodeID) {
	n := s.nodes[id]
	if n == nil {
		return
	}
	for _, c := range n.children {
		s.collect(c, out)
	}
	*out = append(*out, id)
}

// Retain removes every node for which keep returns false. Nodes are
// evaluated once each, in pre-order, and removed afterwards so the traversal
// never observes a partially mutated tree. Removal cascades: a node whose
// ancestor failed the predicate is removed with it even if it passed.
func (s *Store) Retain(keep func(*Node) bool) {
	var doomed []NodeID
	s.Recurse(RootID, func(id NodeID, _ int) {
		if !keep(s.nodes[id]) {
			doomed = append(doomed, id)
		}
	})
	for _, id := range doomed {
		s.Remove(id)
	}
}

// Recurse visits every descendant of id in pre-order, depth counted from 0
// at the immediate children of id. The node id itself is not visited. No-op
// when id is not live.
func (s *Store) Recurse(id NodeID, visit func(id NodeID, depth int)) {
	if !s.IsLive(id) {
		return
	}
	s.recurse(id, 0, visit)
}

func (s *Store) recurse(id NodeID, depth int, visit func(NodeID, int)) {
	n := s.nodes[id]
	if n == nil {
		return
	}
	for _, c := range n.children {
		visit(c, depth)
		s.recurse(c, depth+1, visit)
	}
}

// Len counts live slots, including the root sentinel.
func (s *Store) Len() int {
	count := 0
	for _, n := range s.nodes {
		if n != nil {
			count++
		}
	}
	return count
}

// HTML serializes the tree in document order. Every element is paired with
// an explicit closing tag, even when the source omitted it, so a truncated
// document still serializes as well-formed markup.
func (s *Store) HTML() string {
	var b strings.Builder
	s.render(RootID, &b)
	return b.String()
}

func (s *Store) render(id NodeID, b *strings.Builder) {
	n := s.nodes[id]
	if n == nil {
		return
	}
	for _, c := range n.children {
		child := s.nodes[c]
		b.WriteString(child.HTML())
		s.render(c, b)
		if child.IsElement() {
			b.WriteString("</")
			b.WriteString(child.Element().Tag.String())
			b.WriteByte('>')
		}
	}
}
