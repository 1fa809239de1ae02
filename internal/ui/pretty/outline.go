package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/htmldom/pkg/dom"
)

// Outline writes an indented node-by-node view of the tree, one line per
// live node in document order.
func Outline(w io.Writer, t *dom.Tree, styles *Styles) {
	t.Recurse(func(id dom.NodeID, depth int) {
		n, err := t.Node(id)
		if err != nil {
			return
		}

		indent := strings.Repeat("  ", depth)
		label := styles.NodeID.Render("node(" + strconv.Itoa(int(id)) + ")")

		switch {
		case n.IsElement():
			fmt.Fprintf(w, "%s%s element: %s\n", indent, label, styles.Element.Render(n.HTML()))
		case n.IsData():
			fmt.Fprintf(w, "%s%s data: %s\n", indent, label, styles.Data.Render(strconv.Quote(n.Data())))
		}
	})
}
