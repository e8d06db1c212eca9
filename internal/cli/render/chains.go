package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

// ChainsRenderer renders the chain registry
type ChainsRenderer struct {
	out io.Writer
	painter
}

// NewChainsRenderer creates a new chains renderer
func NewChainsRenderer(out io.Writer, color bool) *ChainsRenderer {
	return &ChainsRenderer{out: out, painter: painter(color)}
}

// Render prints the chains as a table
func (r *ChainsRenderer) Render(result *usecase.ListChainsResult) error {
	if len(result.Chains) == 0 {
		fmt.Fprintln(r.out, "No chains match")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{"Chain ID", "Name", "Slug", "RPC"})
	for _, chain := range result.Chains {
		rpc := ""
		if chain.RPCConfigured {
			rpc = r.paint("configured", color.FgGreen)
		}
		t.AppendRow(table.Row{chain.ID, chain.Name, chain.Slug, rpc})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

var _ Renderer[*usecase.ListChainsResult] = (*ChainsRenderer)(nil)
