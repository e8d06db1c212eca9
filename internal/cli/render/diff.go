package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/voteagora/abifsm-go/internal/usecase"
	"github.com/voteagora/abifsm-go/pkg/ndiff"
)

// DiffRenderer renders the result of comparing two interfaces
type DiffRenderer struct {
	out io.Writer
	painter
}

// NewDiffRenderer creates a new diff renderer
func NewDiffRenderer(out io.Writer, color bool) *DiffRenderer {
	return &DiffRenderer{out: out, painter: painter(color)}
}

// Render prints both sides, then each delta under its own heading
func (r *DiffRenderer) Render(result *usecase.CompareABIsResult) error {
	fmt.Fprintf(r.out, "Comparing %s vs %s\n", result.Left.Ref, result.Right.Ref)
	r.renderSide(usecase.LeftLabel, result.Left)
	r.renderSide(usecase.RightLabel, result.Right)

	r.renderSection("signatures", result.Signatures)
	r.renderSection("events", result.Events)
	if result.Tables != nil {
		r.renderSection("tables", result.Tables)
	}

	if !ndiff.Changed(result.Signatures) && !ndiff.Changed(result.Events) && !ndiff.Changed(result.Tables) {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, r.paint("No differences", color.FgGreen))
	}
	return nil
}

func (r *DiffRenderer) renderSide(label string, side usecase.ComparedABI) {
	switch {
	case side.Implementation != "":
		fmt.Fprintf(r.out, "  %s: proxy %s -> implementation %s (%d fragments)\n", label, side.Ref, side.Implementation, side.Fragments)
	case side.Proxy:
		fmt.Fprintf(r.out, "  %s: %s %s (%d fragments)\n", label, side.Ref, r.paint("[proxy, not followed]", color.FgYellow), side.Fragments)
	default:
		fmt.Fprintf(r.out, "  %s: %s (%d fragments)\n", label, side.Ref, side.Fragments)
	}
}

func (r *DiffRenderer) renderSection(name string, delta []string) {
	fmt.Fprintf(r.out, "\n  # %s\n", strings.ToUpper(name))
	for _, line := range delta {
		fmt.Fprintln(r.out, r.line(line))
	}
}

func (r *DiffRenderer) line(line string) string {
	switch {
	case strings.HasPrefix(line, ndiff.TagInsert):
		return r.paint(line, color.FgGreen)
	case strings.HasPrefix(line, ndiff.TagDelete):
		return r.paint(line, color.FgRed)
	case strings.HasPrefix(line, ndiff.TagHint):
		return r.paint(line, color.FgYellow, color.Faint)
	default:
		return line
	}
}

var _ Renderer[*usecase.CompareABIsResult] = (*DiffRenderer)(nil)
