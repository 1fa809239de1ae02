package html

import (
	"io"
	"strings"

	"github.com/yaklabco/htmldom/pkg/dom"
)

// The tree builder satisfies the tokenizer's event contract.
var _ Handler = (*dom.Tree)(nil)

// Build parses r into a DOM tree, driving Parse with the tree as handler.
// On error the returned tree holds everything built before the failure.
func Build(r io.Reader) (*dom.Tree, error) {
	t := dom.NewTree()
	if _, err := Parse(r, t); err != nil {
		return t, err
	}
	return t, t.Err()
}

// BuildString builds a DOM tree from an inline document.
func BuildString(s string) (*dom.Tree, error) {
	return Build(strings.NewReader(s))
}
