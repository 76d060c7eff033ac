package rbtree

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/containers/alloc"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// PrintConfig controls the console output of Fprint.
type PrintConfig struct {
	Colorize bool           // render red nodes in red and black nodes in bold
	Indent   int            // columns of indentation per tree level
	Context  *uax11.Context // context for measuring label widths
}

// DefaultPrintConfig is used by Fprint if no configuration is given.
var DefaultPrintConfig = PrintConfig{
	Indent:  2,
	Context: uax11.LatinContext,
}

// ConfigFromTerminal is a simple helper for creating a PrintConfig.
// It checks whether stdout is a terminal, and if so switches on colors and
// reduces indentation for narrow terminals.
func ConfigFromTerminal() PrintConfig {
	config := PrintConfig{
		Indent:  2,
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colorize = true
		if w, _, err := term.GetSize(fd); err == nil {
			if w < 40 {
				config.Indent = 1
			} else if w > 120 {
				config.Indent = 4
			}
		}
	}
	tracer().Debugf("rbtree: print config colorize=%v indent=%d", config.Colorize, config.Indent)
	return config
}

var setupGraphemes sync.Once

func labelWidth(label string, ctx *uax11.Context) int {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	return uax11.StringWidth(grapheme.StringFromString(label), ctx)
}

type printLine struct {
	label string
	depth int
	color Color
	width int
}

// Fprint writes the values of the tree in ascending order, one per line,
// indented by their depth in the tree and followed by the node color.
// Labels are padded to a common display width, so colors line up in a column.
// If cfg is nil, DefaultPrintConfig is used.
func (t *Tree[T]) Fprint(w io.Writer, cfg *PrintConfig) error {
	if cfg == nil {
		cfg = &DefaultPrintConfig
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	indent := max(cfg.Indent, 0)
	var lines []printLine
	var walk func(h alloc.Handle, depth int)
	walk = func(h alloc.Handle, depth int) {
		if h == alloc.Nil {
			return
		}
		x := t.n(h)
		walk(x.left, depth+1)
		label := fmt.Sprint(x.value)
		lines = append(lines, printLine{
			label: label,
			depth: depth,
			color: x.color,
			width: depth*indent + labelWidth(label, ctx),
		})
		walk(x.right, depth+1)
	}
	walk(t.root, 0)
	column := 0
	for _, l := range lines {
		column = max(column, l.width)
	}
	red, black := color.New(color.FgRed), color.New(color.Bold)
	if cfg.Colorize {
		red.EnableColor()
		black.EnableColor()
	} else {
		red.DisableColor()
		black.DisableColor()
	}
	for _, l := range lines {
		painter := black
		if l.color == Red {
			painter = red
		}
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", l.depth*indent))
		b.WriteString(painter.Sprint(l.label))
		b.WriteString(strings.Repeat(" ", column-l.width+2))
		b.WriteString(l.color.String())
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
