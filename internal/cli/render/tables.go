package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

// TablesRenderer renders derived table names
type TablesRenderer struct {
	out     io.Writer
	verbose bool
	painter
}

// NewTablesRenderer creates a new tables renderer. Without verbose only the
// names are printed, one per line.
func NewTablesRenderer(out io.Writer, color bool, verbose bool) *TablesRenderer {
	return &TablesRenderer{out: out, verbose: verbose, painter: painter(color)}
}

// Render prints the tables of a collection
func (r *TablesRenderer) Render(result *usecase.BuildTablesResult) error {
	if !r.verbose {
		for _, row := range result.Tables {
			fmt.Fprintln(r.out, row.Table)
		}
		return nil
	}

	fmt.Fprintf(r.out, "%s (%d tables)\n\n", r.paint(title.String(result.Name), color.Bold), len(result.Tables))

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{"Table", "ABI", "Signature", "Topic"})
	for _, row := range result.Tables {
		t.AppendRow(table.Row{
			r.paint(row.Table, color.FgCyan),
			row.Label,
			row.Signature,
			row.Topic[:8],
		})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

var _ Renderer[*usecase.BuildTablesResult] = (*TablesRenderer)(nil)
