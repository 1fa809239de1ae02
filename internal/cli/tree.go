package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/htmldom/internal/configloader"
	"github.com/yaklabco/htmldom/internal/logging"
	"github.com/yaklabco/htmldom/internal/ui/pretty"
	"github.com/yaklabco/htmldom/pkg/dom"
	htmlparser "github.com/yaklabco/htmldom/pkg/parser/html"
	"github.com/yaklabco/htmldom/pkg/tag"
)

type treeFlags struct {
	drop    []string
	outline bool
}

func newTreeCommand(root *rootOptions) *cobra.Command {
	flags := &treeFlags{}

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Build a DOM tree and print it as HTML",
		Long: `Build a DOM tree from an HTML file and serialize it back out.

The output always pairs every element with an explicit closing tag, even
when the source omitted it, so a truncated document round-trips to
well-formed markup.

Examples:
  htmldom tree page.html                  # Serialize the rebuilt document
  htmldom tree page.html --drop script    # Prune all script subtrees first
  htmldom tree page.html --outline        # Print the node outline instead`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTree(root, flags, args[0])
		},
	}

	cmd.Flags().StringSliceVar(&flags.drop, "drop", nil,
		"element names whose subtrees are removed before output")
	cmd.Flags().BoolVar(&flags.outline, "outline", false,
		"print an indented node outline instead of HTML")

	return cmd
}

func runTree(root *rootOptions, flags *treeFlags, path string) error {
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

	drop := flags.drop
	if len(drop) == 0 {
		drop = cfg.Drop
	}
	if len(drop) > 0 {
		if err := pruneTags(t, drop, logger); err != nil {
			return err
		}
	}

	if flags.outline {
		styles := pretty.NewStyles(colorEnabled(root, cfg))
		pretty.Outline(os.Stdout, t, styles)
		return nil
	}

	fmt.Println(t.HTML())
	return nil
}

// pruneTags removes every element whose tag is on the drop list, cascading
// to the element's whole subtree.
func pruneTags(t *dom.Tree, drop []string, logger *log.Logger) error {
	doomed := make(map[tag.Tag]bool, len(drop))
	for _, name := range drop {
		id, err := tag.Resolve(name)
		if err != nil {
			return fmt.Errorf("--drop: %w", err)
		}
		doomed[id] = true
	}

	before := t.Len()
	t.Retain(func(n *dom.Node) bool {
		e := n.Element()
		return e == nil || !doomed[e.Tag]
	})
	logger.Debug("pruned elements",
		logging.FieldDropped, drop,
		logging.FieldRemoved, before-t.Len(),
	)
	return nil
}

func buildTree(path string) (*dom.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := htmlparser.Build(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}

// applyConfigLogLevel applies the config file's default log level. The
// --debug flag always wins over the file value.
func applyConfigLogLevel(root *rootOptions, cfg *configloader.Config) {
	if root.debug || cfg.LogLevel == "" {
		return
	}
	logging.SetLevel(cfg.LogLevel)
}

func colorEnabled(root *rootOptions, cfg *configloader.Config) bool {
	mode := root.color
	if mode == "auto" && cfg.Color != "" {
		mode = cfg.Color
	}
	return pretty.IsColorEnabled(mode, os.Stdout)
}
