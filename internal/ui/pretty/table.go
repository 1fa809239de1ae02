package pretty

import (
	"fmt"
	"strings"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minTagWidth      = 8
	heavySeparator   = "="
	defaultTermWidth = 80
)

// TagCount is one row of the statistics table.
type TagCount struct {
	Name  string
	Count int
}

// TableFormatter formats tag statistics as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// Format renders per-tag element counts plus data-node and total rows.
func (f *TableFormatter) Format(rows []TagCount, dataNodes, total int) string {
	tagWidth := minTagWidth
	for _, r := range rows {
		if len(r.Name) > tagWidth {
			tagWidth = len(r.Name)
		}
	}
	tagWidth += tablePadding

	var b strings.Builder

	header := fmt.Sprintf("%-*s%s", tagWidth, "TAG", "COUNT")
	sepWidth := len(header)
	if sepWidth > f.termWidth {
		sepWidth = f.termWidth
	}
	b.WriteString(f.styles.TableHeader.Render(header))
	b.WriteString("\n")
	b.WriteString(f.styles.Dim.Render(strings.Repeat(heavySeparator, sepWidth)))
	b.WriteString("\n")

	for _, r := range rows {
		line := fmt.Sprintf("%-*s%d", tagWidth, r.Name, r.Count)
		b.WriteString(f.styles.TableRow.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(f.styles.TableRow.Render(fmt.Sprintf("%-*s%d", tagWidth, "(text)", dataNodes)))
	b.WriteString("\n")
	b.WriteString(f.styles.TableTotal.Render(fmt.Sprintf("%-*s%d", tagWidth, "total", total)))
	b.WriteString("\n")

	return b.String()
}
