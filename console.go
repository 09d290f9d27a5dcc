package segtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ConsolePalette holds the colors used by the console dump of a tree.
type ConsolePalette struct {
	Inner   *color.Color
	Leaf    *color.Color
	Pending *color.Color
}

func makeDefaultPalette() ConsolePalette {
	return ConsolePalette{
		Inner:   color.New(color.FgBlue),
		Leaf:    color.New(color.FgGreen),
		Pending: color.New(color.FgRed),
	}
}

// consoleWidth probes the terminal for its line length, falling back to 80
// for non-interactive output.
func consoleWidth() int {
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// DumpConsole prints the tree level by level to w, one line per level, with
// leaf nodes colored differently from inner nodes (for debugging purposes).
//
// If palette is nil, a default palette is used. Lines longer than the
// terminal width are truncated with an ellipsis.
func DumpConsole[T any](t *Tree[T], w io.Writer, palette *ConsolePalette) {
	dumpLevels(w, palette, t.n, func(node int) (string, bool) {
		return fmt.Sprintf("%v", t.tree[node]), false
	})
}

// DumpConsoleLazy prints a lazy tree level by level to w. Nodes carrying a
// pending value are highlighted and annotated with the deferred value.
func DumpConsoleLazy[T any](t *LazyTree[T], w io.Writer, palette *ConsolePalette) {
	dumpLevels(w, palette, t.n, func(node int) (string, bool) {
		if t.lazy[node].set {
			return fmt.Sprintf("%v*%v", t.tree[node], t.lazy[node].value), true
		}
		return fmt.Sprintf("%v", t.tree[node]), false
	})
}

type consoleCell struct {
	text    string
	isleaf  bool
	pending bool
	span    string
}

func dumpLevels(w io.Writer, palette *ConsolePalette, n int, label func(node int) (string, bool)) {
	if palette == nil {
		p := makeDefaultPalette()
		palette = &p
	}
	levels := [][]consoleCell{}
	var walk func(node, start, end, depth int)
	walk = func(node, start, end, depth int) {
		for len(levels) <= depth {
			levels = append(levels, nil)
		}
		text, pend := label(node)
		cell := consoleCell{
			text:    text,
			isleaf:  start == end,
			pending: pend,
			span:    fmt.Sprintf("[%d,%d]", start, end),
		}
		if start == end {
			cell.span = fmt.Sprintf("@%d", start)
		}
		levels[depth] = append(levels[depth], cell)
		if start == end {
			return
		}
		mid := midpoint(start, end)
		walk(left(node), start, mid, depth+1)
		walk(right(node), mid+1, end, depth+1)
	}
	walk(0, 0, n-1, 0)
	width := consoleWidth()
	for d, cells := range levels {
		var line strings.Builder
		line.WriteString(fmt.Sprintf("%2d | ", d))
		visible := 5 // prefix width; escape sequences do not count
		for i, cell := range cells {
			if i > 0 {
				line.WriteString("  ")
				visible += 2
			}
			c := palette.Inner
			if cell.isleaf {
				c = palette.Leaf
			}
			if cell.pending {
				c = palette.Pending
			}
			plain := fmt.Sprintf("%s %s", cell.span, cell.text)
			if visible+len(plain) > width {
				line.WriteString("…")
				break
			}
			line.WriteString(c.Sprint(plain))
			visible += len(plain)
		}
		fmt.Fprintln(w, line.String())
	}
}
