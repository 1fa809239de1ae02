package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/htmldom/pkg/tag"
)

func newElement(t *testing.T, s *Store, parent NodeID, tg tag.Tag, attrs ...Attribute) NodeID {
	t.Helper()
	id, err := s.NewNode(parent)
	require.NoError(t, err)
	n := s.node(id)
	n.kind = KindElement
	n.elem = &Element{Tag: tg, Attrs: attrs}
	return id
}

func newText(t *testing.T, s *Store, parent NodeID, text string) NodeID {
	t.Helper()
	id, err := s.NewNode(parent)
	require.NoError(t, err)
	n := s.node(id)
	n.kind = KindData
	n.text = text
	return id
}

// buildDocument assembles <html><body><p>Hello <b>World</b>!</p></body></html>
// and returns the ids in allocation order.
func buildDocument(t *testing.T, s *Store) []NodeID {
	t.Helper()
	html := newElement(t, s, RootID, tag.Html)
	body := newElement(t, s, html, tag.Body)
	p := newElement(t, s, body, tag.P)
	hello := newText(t, s, p, "Hello ")
	b := newElement(t, s, p, tag.B)
	world := newText(t, s, b, "World")
	bang := newText(t, s, p, "!")
	return []NodeID{html, body, p, hello, b, world, bang}
}

func TestNewStore_RootSentinel(t *testing.T) {
	s := NewStore()

	assert.True(t, s.IsLive(RootID))
	assert.Equal(t, 1, s.Len())

	root, err := s.Node(RootID)
	require.NoError(t, err)
	assert.Equal(t, KindRoot, root.Kind())
	_, ok := root.Parent()
	assert.False(t, ok, "root has no parent")
}

func TestNewNode_IDsAreSequential(t *testing.T) {
	s := NewStore()

	ids := buildDocument(t, s)
	for i, id := range ids {
		assert.Equal(t, NodeID(i+1), id)
	}
	assert.Equal(t, 8, s.Len())
}

func TestNewNode_InvalidParent(t *testing.T) {
	s := NewStore()

	_, err := s.NewNode(42)
	assert.ErrorIs(t, err, ErrInvalidParent)

	id := newElement(t, s, RootID, tag.P)
	s.Remove(id)
	_, err = s.NewNode(id)
	assert.ErrorIs(t, err, ErrInvalidParent, "tombstoned parent")
}

func TestNode_NotFound(t *testing.T) {
	s := NewStore()

	_, err := s.Node(7)
	assert.ErrorIs(t, err, ErrNodeNotFound)

	id := newElement(t, s, RootID, tag.P)
	s.Remove(id)
	_, err = s.Node(id)
	assert.ErrorIs(t, err, ErrNodeNotFound, "tombstoned node")
}

func TestRemove_CascadesToSubtree(t *testing.T) {
	s := NewStore()
	ids := buildDocument(t, s)
	p := ids[2]

	s.Remove(p)

	// p plus its four descendants are gone; html and body survive.
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.IsLive(p))
	for _, id := range ids[3:] {
		assert.False(t, s.IsLive(id))
	}
	assert.True(t, s.IsLive(ids[0]))
	assert.True(t, s.IsLive(ids[1]))

	body, err := s.Node(ids[1])
	require.NoError(t, err)
	assert.Empty(t, body.Children())
}

func TestRemove_NeverReusesIDs(t *testing.T) {
	s := NewStore()
	first := newElement(t, s, RootID, tag.P)
	s.Remove(first)

	second := newElement(t, s, RootID, tag.Div)

	assert.Greater(t, second, first, "freed ids stay retired")
	assert.False(t, s.IsLive(first))
	assert.True(t, s.IsLive(second))
}

func TestRemove_RootAndDeadAreNoOps(t *testing.T) {
	s := NewStore()
	buildDocument(t, s)

	s.Remove(RootID)
	assert.Equal(t, 8, s.Len(), "root sentinel is never removable")

	s.Remove(99)
	assert.Equal(t, 8, s.Len())
}

func TestRetain_All(t *testing.T) {
	s := NewStore()
	buildDocument(t, s)

	s.Retain(func(*Node) bool { return true })

	assert.Equal(t, 8, s.Len())
}

func TestRetain_None(t *testing.T) {
	s := NewStore()
	buildDocument(t, s)

	s.Retain(func(*Node) bool { return false })

	assert.Equal(t, 1, s.Len(), "only the root sentinel survives")
	assert.True(t, s.IsLive(RootID))
}

func TestRetain_CascadesThroughKeptDescendants(t *testing.T) {
	s := NewStore()
	ids := buildDocument(t, s)

	// Dropping <p> takes its descendants with it even though they pass.
	s.Retain(func(n *Node) bool {
		return !n.IsElement() || n.Element().Tag != tag.P
	})

	assert.Equal(t, 3, s.Len())
	for _, id := range ids[2:] {
		assert.False(t, s.IsLive(id))
	}
}

func TestRecurse_PreOrderDepths(t *testing.T) {
	s := NewStore()
	ids := buildDocument(t, s)

	var order []NodeID
	var depths []int
	s.Recurse(RootID, func(id NodeID, depth int) {
		order = append(order, id)
		depths = append(depths, depth)
	})

	assert.Equal(t, ids, order, "pre-order matches document order")
	assert.Equal(t, []int{0, 1, 2, 3, 3, 4, 3}, depths)
}

func TestRecurse_DeadRootIsNoOp(t *testing.T) {
	s := NewStore()
	id := newElement(t, s, RootID, tag.P)
	s.Remove(id)

	called := false
	s.Recurse(id, func(NodeID, int) { called = true })
	assert.False(t, called)
}

func TestHTML_DocumentOrder(t *testing.T) {
	s := NewStore()
	buildDocument(t, s)

	want := `<html><body><p>Hello <b>World</b>!</p></body></html>`
	assert.Equal(t, want, s.HTML())
}

func TestHTML_AttributesRendered(t *testing.T) {
	s := NewStore()
	p := newElement(t, s, RootID, tag.P,
		Attribute{Name: "class", Value: "info error"},
		Attribute{Name: "hidden"})
	newText(t, s, p, "x")

	assert.Equal(t, `<p class="info error" hidden>x</p>`, s.HTML())
}
