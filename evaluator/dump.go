package evaluator

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/robbyt/go-scalareval/ir"
)

const dumpRule = "--------------------"

// Dump writes every bound node with its value and dtype, every named extent,
// and then the attached cache's own listing. It does not modify e.
func (e *Environment) Dump(w io.Writer) {
	p := newPalette(w)

	fmt.Fprintf(w, "\nEvaluation context\n%s\n", dumpRule)

	vals := make([]*ir.Val, 0, len(e.knownValues))
	for v := range e.knownValues {
		vals = append(vals, v)
	}
	slices.SortFunc(vals, func(a, b *ir.Val) int { return a.ID() - b.ID() })
	for _, v := range vals {
		fmt.Fprintf(w, "%s = %s ; %s\n", p.name(v.String()), p.value(e.knownValues[v].String()), v.DType())
	}

	names := make([]string, 0, len(e.knownNamedScalars))
	for name := range e.knownNamedScalars {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s = %s ;\n", p.name(name), p.value(fmt.Sprint(e.knownNamedScalars[name])))
	}

	fmt.Fprintf(w, "\nPre-computed Values\n")
	if e.precomputed != nil {
		e.precomputed.Dump(w)
	}
	fmt.Fprintf(w, "%s\n\n", dumpRule)
}

// String returns the Dump output.
func (e *Environment) String() string {
	var sb strings.Builder
	e.Dump(&sb)
	return sb.String()
}

type palette struct {
	names  *color.Color
	values *color.Color
}

// newPalette colors output only when w is a terminal.
func newPalette(w io.Writer) palette {
	p := palette{
		names:  color.New(color.FgCyan),
		values: color.New(color.FgGreen, color.Bold),
	}
	if !isTerminal(w) {
		p.names.DisableColor()
		p.values.DisableColor()
	}
	return p
}

func (p palette) name(s string) string {
	return p.names.Sprint(s)
}

func (p palette) value(s string) string {
	return p.values.Sprint(s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
