package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmldom/internal/logging"
	"github.com/yaklabco/htmldom/pkg/dom"
	htmlparser "github.com/yaklabco/htmldom/pkg/parser/html"
	"github.com/yaklabco/htmldom/pkg/tag"
)

func newEventsCommand(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "events <file>",
		Short: "Echo tokenizer events as markup text",
		Long: `Drive the tokenizer over an HTML file and print each start-tag,
end-tag, and data event as it is emitted, without building a tree.

Useful for inspecting exactly what the parser sees, and as a minimal
example of implementing the Handler interface.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runEvents(args[0])
		},
	}
}

// printer echoes tokenizer events as markup text.
type printer struct {
	w io.Writer
}

func (p *printer) HandleStartTag(t tag.Tag, attrs []dom.Attribute) {
	parts := make([]string, 0, len(attrs)+1)
	parts = append(parts, t.String())
	for _, a := range attrs {
		parts = append(parts, a.HTML())
	}
	fmt.Fprintf(p.w, "<%s>", strings.Join(parts, " "))
}

func (p *printer) HandleEndTag(t tag.Tag) {
	fmt.Fprintf(p.w, "</%s>", t)
}

func (p *printer) HandleData(data []byte) {
	p.w.Write(data) //nolint:errcheck // best-effort stdout echo
}

func runEvents(path string) error {
	logger := logging.Default()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	n, err := htmlparser.Parse(f, &printer{w: os.Stdout})
	fmt.Println()
	if err != nil {
		return fmt.Errorf("parse %s after %d bytes: %w", path, n, err)
	}

	logger.Debug("parse complete", logging.FieldPath, path, logging.FieldBytes, n)
	return nil
}
