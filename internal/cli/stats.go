package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/htmldom/internal/configloader"
	"github.com/yaklabco/htmldom/internal/logging"
	"github.com/yaklabco/htmldom/internal/ui/pretty"
	"github.com/yaklabco/htmldom/pkg/dom"
)

func newStatsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Print per-tag node statistics for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStats(root, args[0])
		},
	}
}

func runStats(root *rootOptions, path string) error {
	logger := logging.Default()

	cfg, err := configloader.Load(configloader.LoadOptions{ExplicitPath: root.configPath})
	if err != nil {
		return err
	}
	applyConfigLogLevel(root, cfg)

	t, err := buildTree(path)
	if err != nil {
		return err
	}
	logger.Debug("document parsed", logging.FieldPath, path, logging.FieldNodes, t.Len())

	counts := make(map[string]int)
	dataNodes := 0
	t.Recurse(func(id dom.NodeID, _ int) {
		n, err := t.Node(id)
		if err != nil {
			return
		}
		switch {
		case n.IsElement():
			counts[n.Element().Tag.String()]++
		case n.IsData():
			dataNodes++
		}
	})

	rows := make([]pretty.TagCount, 0, len(counts))
	for name, count := range counts {
		rows = append(rows, pretty.TagCount{Name: name, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})

	width := 0
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}

	styles := pretty.NewStyles(colorEnabled(root, cfg))
	formatter := pretty.NewTableFormatter(styles, width)
	fmt.Print(formatter.Format(rows, dataNodes, t.Len()))

	return nil
}
